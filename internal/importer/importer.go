// Package importer turns spreadsheet or CSV files into dossier records.
// Parsing yields a preview that touches no storage; only Commit writes,
// through the dossier service.
package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	tvdomain "github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

var (
	ErrFormatNonSupporte = errors.New("format_fichier_non_supporte")
	ErrFichierVide       = errors.New("fichier_vide")
)

type Service interface {
	// Parse reads the file into preview dossiers with fresh ids. The vehicle
	// type stays a raw label until Commit resolves it against the directory.
	Parse(filename string, data []byte) ([]dossierdomain.Dossier, error)
	// Commit resolves type labels to ids, creating missing directory entries,
	// then stores the rows additively or as a full replacement.
	Commit(ctx context.Context, dossiers []dossierdomain.Dossier, replace bool) (int, error)
}

type service struct {
	dossiers dossierdomain.Service
	types    tvdomain.Service
	log      *zap.Logger
}

func Provide(dossiers dossierdomain.Service, types tvdomain.Service, log *zap.Logger) Service {
	return &service{dossiers: dossiers, types: types, log: log}
}

func (s *service) Parse(filename string, data []byte) ([]dossierdomain.Dossier, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls":
		rows, err = readWorkbook(data)
	case ".csv", ".txt":
		rows, err = readCSV(data)
	default:
		return nil, ErrFormatNonSupporte
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrFichierVide
	}

	columns := resolveColumns(rows[0])
	dossiers := make([]dossierdomain.Dossier, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if empty(row) {
			continue
		}
		cell := func(field string) string {
			i, ok := columns[field]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		dossiers = append(dossiers, dossierdomain.Dossier{
			ID:                uuid.NewString(),
			NumeroCH:          cell("numeroCH"),
			ChassisCH:         cell("chassis"),
			Annee:             cell("annee"),
			ReferenceVehicule: cell("reference"),
			TypeVehicule:      cell("type"),
			NomClient:         cell("nom"),
			PrenomClient:      cell("prenom"),
			TelephoneClient:   cell("telephone"),
			Statut:            MapStatut(cell("statut")),
			Notes:             cell("notes"),
		})
	}
	if len(dossiers) == 0 {
		return nil, ErrFichierVide
	}
	return dossiers, nil
}

func (s *service) Commit(ctx context.Context, dossiers []dossierdomain.Dossier, replace bool) (int, error) {
	for i := range dossiers {
		d := &dossiers[i]
		if d.TypeVehiculeID != "" || d.TypeVehicule == "" {
			continue
		}
		id, err := s.types.ResolveLabel(ctx, d.TypeVehicule)
		if err != nil {
			return 0, err
		}
		d.TypeVehiculeID = id
	}
	return s.dossiers.Import(ctx, dossiers, replace)
}

// readWorkbook reads the first sheet only; extra sheets are ignored.
func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, ErrFormatNonSupporte
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrFichierVide
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ErrFormatNonSupporte
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func empty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

var Module = fx.Module("importer",
	fx.Provide(Provide),
)
