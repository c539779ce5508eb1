// Package exporter produces the Excel workbooks: one per entity type, the
// per-invoice installment schedule, the import template and the combined
// multi-sheet report. Exports are read-only over the data model.
package exporter

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/fx"

	clientdomain "github.com/hscdigital/douanapp/internal/client/domain"
	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
	"github.com/hscdigital/douanapp/internal/format"
	locationdomain "github.com/hscdigital/douanapp/internal/location/domain"
)

type Service interface {
	Clients(ctx context.Context, w io.Writer) error
	Dossiers(ctx context.Context, w io.Writer) error
	Locations(ctx context.Context, w io.Writer) error
	Factures(ctx context.Context, w io.Writer) error
	// Echeancier exports the installment schedule of one invoice.
	Echeancier(ctx context.Context, factureID string, w io.Writer) error
	// Template writes the import template with one sample row.
	Template(w io.Writer) error
	// RapportComplet writes the combined report: Dossiers, Factures,
	// Locations and a Résumé sheet of aggregate indicators.
	RapportComplet(ctx context.Context, w io.Writer) error
}

type service struct {
	dossiers  dossierdomain.Service
	factures  facturedomain.Service
	locations locationdomain.Service
	clients   clientdomain.Service
}

func Provide(
	dossiers dossierdomain.Service,
	factures facturedomain.Service,
	locations locationdomain.Service,
	clients clientdomain.Service,
) Service {
	return &service{dossiers: dossiers, factures: factures, locations: locations, clients: clients}
}

// sheet writes one worksheet: header row, data rows, column widths. The
// default "Sheet1" is renamed on the first call so workbooks never carry an
// empty leftover sheet.
func sheet(f *excelize.File, name string, headers []string, rows [][]any, widths []float64) error {
	if f.SheetCount == 1 && f.GetSheetName(0) == "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return err
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return err
			}
		}
	}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// clientDisplay resolves the directory record when linked, falling back to
// the legacy inline identity captured at import time.
func (s *service) clientDisplay(ctx context.Context, clientID, nom, prenom, telephone string) (string, string) {
	if clientID != "" {
		if c, err := s.clients.GetByID(ctx, clientID); err == nil {
			return c.DisplayName(), c.Telephone
		}
	}
	display := prenom
	if display != "" && nom != "" {
		display += " "
	}
	display += nom
	return display, telephone
}

func (s *service) Clients(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	var rows [][]any
	for _, c := range s.clients.List(ctx) {
		rows = append(rows, []any{c.Nom, c.Prenom, c.Telephone, c.Email, c.Adresse})
	}
	err := sheet(f, "Clients",
		[]string{"Nom", "Prénom", "Téléphone", "Email", "Adresse"},
		rows,
		[]float64{18, 18, 18, 25, 30})
	if err != nil {
		return err
	}
	return f.Write(w)
}

func (s *service) Dossiers(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	var rows [][]any
	for _, d := range s.dossiers.List(ctx) {
		display, tel := s.clientDisplay(ctx, d.ClientID, d.NomClient, d.PrenomClient, d.TelephoneClient)
		rows = append(rows, []any{
			d.NumeroCH, d.ChassisCH, d.Annee, d.ReferenceVehicule, d.TypeVehicule,
			display, tel, d.Statut.Label(), format.DateCourt(d.DateCreation.Format(format.DateISO)), d.Notes,
		})
	}
	err := sheet(f, "Dossiers",
		[]string{"Numéro CH", "Châssis CH", "Année", "Référence Véhicule", "Type Véhicule", "Client", "Téléphone", "Statut", "Date de création", "Notes"},
		rows,
		[]float64{15, 18, 10, 18, 15, 25, 15, 20, 14, 30})
	if err != nil {
		return err
	}
	return f.Write(w)
}

func (s *service) Locations(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	var rows [][]any
	for _, l := range s.locations.List(ctx) {
		display, tel := s.clientDisplay(ctx, l.ClientID, l.NomClient, l.PrenomClient, l.TelephoneClient)
		depenses := locationdomain.DepensesTotal(&l)
		rows = append(rows, []any{
			l.ReferenceCamion, l.TypeCamion, display, tel,
			format.DateCourt(l.DateDebut), format.DateCourt(l.DateFin),
			l.MontantTotal, depenses, locationdomain.Benefice(&l),
			l.Statut.Label(), format.DateCourt(l.DateCreation.Format(format.DateISO)), l.Notes,
		})
	}
	err := sheet(f, "Locations",
		[]string{"Référence", "Type", "Client", "Téléphone", "Date début", "Date fin", "Montant location", "Dépenses", "Bénéfice", "Statut", "Date création", "Notes"},
		rows,
		[]float64{15, 15, 25, 15, 12, 12, 16, 14, 14, 12, 14, 30})
	if err != nil {
		return err
	}
	return f.Write(w)
}

func (s *service) Factures(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	var rows [][]any
	for _, inv := range s.factures.List(ctx) {
		display, tel := s.clientDisplay(ctx, inv.ClientID, inv.NomClient, inv.PrenomClient, inv.Telephone)
		rows = append(rows, []any{
			inv.ID, display, tel, inv.ReferenceVehicule, inv.TypeVehicule, inv.VIN,
			format.DateCourt(inv.DateFacture),
			inv.PrixTotalTTC, inv.PrixAchat, inv.Dedouanement, facturedomain.Benefice(&inv),
			inv.MontantPaye, inv.MontantRestant,
			inv.ModePaiement.Label(), inv.PaysDestination, inv.Statut.Label(),
		})
	}
	err := sheet(f, "Factures",
		[]string{"N° Facture", "Client", "Téléphone", "Véhicule", "Type", "VIN", "Date", "Prix de vente", "Prix achat", "Dédouanement", "Bénéfice", "Payé", "Restant", "Mode paiement", "Pays destination", "Statut"},
		rows,
		[]float64{22, 25, 15, 16, 14, 20, 12, 14, 14, 14, 14, 14, 14, 16, 16, 18})
	if err != nil {
		return err
	}
	return f.Write(w)
}

func (s *service) Echeancier(ctx context.Context, factureID string, w io.Writer) error {
	inv, err := s.factures.GetByID(ctx, factureID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	var rows [][]any
	for _, t := range inv.Tranches {
		datePaiement := "-"
		if t.DatePaiement != nil {
			datePaiement = format.DateCourt(*t.DatePaiement)
		}
		mode := "-"
		if t.ModePaiement != nil {
			mode = t.ModePaiement.Label()
		}
		rows = append(rows, []any{
			t.ID, t.NumeroTranche, t.Montant,
			format.DateCourt(t.DateEcheance), datePaiement,
			t.Statut.Label(), mode,
		})
	}
	err = sheet(f, "Échéancier",
		[]string{"ID Tranche", "Tranche N°", "Montant", "Échéance", "Date paiement", "Statut", "Mode paiement"},
		rows,
		[]float64{26, 11, 14, 12, 14, 12, 16})
	if err != nil {
		return err
	}
	return f.Write(w)
}

func (s *service) Template(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{{
		"CH-001", "ABC123456789", "2024", "REF-001", "Berline",
		"Diallo", "Amadou", "+223 70 00 00 00", "Lancé", "",
	}}
	err := sheet(f, "Template",
		[]string{"Numéro CH", "Châssis CH", "Année", "Référence Véhicule", "Type Véhicule", "Nom Client", "Prénom Client", "Téléphone", "Statut", "Notes"},
		rows,
		[]float64{15, 18, 10, 18, 15, 18, 18, 18, 20, 30})
	if err != nil {
		return err
	}
	return f.Write(w)
}

func (s *service) RapportComplet(ctx context.Context, w io.Writer) error {
	dossiers := s.dossiers.List(ctx)
	factures := s.factures.List(ctx)
	locations := s.locations.List(ctx)

	f := excelize.NewFile()
	defer f.Close()

	var dossierRows [][]any
	for _, d := range dossiers {
		display, _ := s.clientDisplay(ctx, d.ClientID, d.NomClient, d.PrenomClient, d.TelephoneClient)
		dossierRows = append(dossierRows, []any{
			d.NumeroCH, d.ReferenceVehicule, display, d.Statut.Label(),
			format.DateCourt(d.DateCreation.Format(format.DateISO)),
		})
	}
	if err := sheet(f, "Dossiers",
		[]string{"Numéro CH", "Référence Véhicule", "Client", "Statut", "Date"},
		dossierRows,
		[]float64{15, 18, 25, 20, 14}); err != nil {
		return err
	}

	totalVentes, totalEncaisse, totalBenefice := 0.0, 0.0, 0.0
	var factureRows [][]any
	for _, inv := range factures {
		display, _ := s.clientDisplay(ctx, inv.ClientID, inv.NomClient, inv.PrenomClient, inv.Telephone)
		benefice := facturedomain.Benefice(&inv)
		totalVentes += inv.PrixTotalTTC
		totalEncaisse += inv.MontantPaye
		totalBenefice += benefice
		factureRows = append(factureRows, []any{
			inv.ID, display, inv.PrixTotalTTC, inv.PrixAchat, inv.Dedouanement,
			benefice, inv.MontantPaye, inv.MontantRestant, inv.Statut.Label(),
		})
	}
	if err := sheet(f, "Factures",
		[]string{"N° Facture", "Client", "Prix de vente", "Prix achat", "Dédouanement", "Bénéfice", "Payé", "Restant", "Statut"},
		factureRows,
		[]float64{22, 25, 14, 14, 14, 14, 14, 14, 18}); err != nil {
		return err
	}

	if len(locations) > 0 {
		var locationRows [][]any
		for _, l := range locations {
			display, _ := s.clientDisplay(ctx, l.ClientID, l.NomClient, l.PrenomClient, l.TelephoneClient)
			locationRows = append(locationRows, []any{
				l.ReferenceCamion, display, l.MontantTotal, l.Statut.Label(),
			})
		}
		if err := sheet(f, "Locations",
			[]string{"Référence", "Client", "Montant", "Statut"},
			locationRows,
			[]float64{15, 25, 14, 12}); err != nil {
			return err
		}
	}

	summary := [][]any{
		{"Total dossiers", len(dossiers)},
		{"Total factures", len(factures)},
		{"Total locations", len(locations)},
		{"Total ventes (FCFA)", totalVentes},
		{"Total encaissé (FCFA)", totalEncaisse},
		{"Total restant (FCFA)", totalVentes - totalEncaisse},
		{"Total bénéfice (FCFA)", totalBenefice},
	}
	if err := sheet(f, "Résumé",
		[]string{"Indicateur", "Valeur"},
		summary,
		[]float64{24, 18}); err != nil {
		return err
	}

	return f.Write(w)
}

// FilenameEcheancier derives the default download name for a schedule export.
func FilenameEcheancier(factureID string) string {
	return fmt.Sprintf("echeancier_%s.xlsx", factureID)
}

var Module = fx.Module("exporter",
	fx.Provide(Provide),
)
