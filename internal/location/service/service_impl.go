package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	clientdomain "github.com/hscdigital/douanapp/internal/client/domain"
	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/location/domain"
	tvdomain "github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

type service struct {
	repo    domain.Repository
	clients clientdomain.Repository
	types   tvdomain.Repository
	clk     clock.Clock
	log     *zap.Logger
}

func Provide(
	repo domain.Repository,
	clients clientdomain.Repository,
	types tvdomain.Repository,
	clk clock.Clock,
	log *zap.Logger,
) domain.Service {
	return &service{repo: repo, clients: clients, types: types, clk: clk, log: log}
}

// resolveLabels fills the display-only type label from the referenced id.
func (s *service) resolveLabels(ctx context.Context, locations []domain.Location) {
	for i := range locations {
		l := &locations[i]
		if l.TypeCamionID == "" {
			continue
		}
		if t, err := s.types.GetByID(ctx, l.TypeCamionID); err == nil {
			l.TypeCamion = t.Label
		}
	}
}

func (s *service) List(ctx context.Context) []domain.Location {
	locations := s.repo.List(ctx)
	s.resolveLabels(ctx, locations)
	return locations
}

func (s *service) GetByID(ctx context.Context, id string) (domain.Location, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Location{}, err
	}
	one := []domain.Location{*l}
	s.resolveLabels(ctx, one)
	return one[0], nil
}

func validate(req *domain.CreateLocationRequest) error {
	if strings.TrimSpace(req.ReferenceCamion) == "" {
		return domain.ErrReferenceRequise
	}
	if strings.TrimSpace(req.ClientID) == "" {
		return domain.ErrClientRequis
	}
	if req.MontantTotal <= 0 || math.IsNaN(req.MontantTotal) || math.IsInf(req.MontantTotal, 0) {
		return domain.ErrMontantInvalide
	}
	if req.Statut != "" && !req.Statut.Valid() {
		return domain.ErrStatutInvalide
	}
	return nil
}

func buildLignes(inputs []domain.DepenseLigneInput) ([]domain.DepenseLigne, error) {
	lignes := make([]domain.DepenseLigne, 0, len(inputs))
	for _, in := range inputs {
		if in.Montant < 0 || math.IsNaN(in.Montant) || math.IsInf(in.Montant, 0) {
			return nil, domain.ErrMontantInvalide
		}
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		lignes = append(lignes, domain.DepenseLigne{ID: id, Libelle: in.Libelle, Montant: in.Montant})
	}
	return lignes, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateLocationRequest) (domain.Location, error) {
	if err := validate(&req); err != nil {
		return domain.Location{}, err
	}
	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		return domain.Location{}, err
	}
	lignes, err := buildLignes(req.DepensesLignes)
	if err != nil {
		return domain.Location{}, err
	}

	statut := req.Statut
	if statut == "" {
		statut = domain.LocationEnCours
	}
	l := domain.Location{
		ID:              uuid.NewString(),
		ReferenceCamion: strings.TrimSpace(req.ReferenceCamion),
		TypeCamionID:    req.TypeCamionID,
		ClientID:        req.ClientID,
		DateDebut:       req.DateDebut,
		DateFin:         req.DateFin,
		MontantTotal:    req.MontantTotal,
		DepensesLignes:  lignes,
		Statut:          statut,
		Notes:           req.Notes,
	}
	if err := s.repo.Save(ctx, &l); err != nil {
		return domain.Location{}, err
	}
	s.log.Info("location créée",
		zap.String("location_id", l.ID),
		zap.String("reference_camion", l.ReferenceCamion),
		zap.Float64("montant_total", l.MontantTotal))
	return l, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateLocationRequest) (domain.Location, error) {
	createReq := domain.CreateLocationRequest{
		ReferenceCamion: req.ReferenceCamion,
		ClientID:        req.ClientID,
		MontantTotal:    req.MontantTotal,
		Statut:          req.Statut,
	}
	if err := validate(&createReq); err != nil {
		return domain.Location{}, err
	}
	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		return domain.Location{}, err
	}
	lignes, err := buildLignes(req.DepensesLignes)
	if err != nil {
		return domain.Location{}, err
	}

	l, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Location{}, err
	}
	l.ReferenceCamion = strings.TrimSpace(req.ReferenceCamion)
	l.TypeCamionID = req.TypeCamionID
	l.ClientID = req.ClientID
	l.DateDebut = req.DateDebut
	l.DateFin = req.DateFin
	l.MontantTotal = req.MontantTotal
	l.DepensesLignes = lignes
	if len(lignes) > 0 {
		l.Depenses = 0
	}
	if req.Statut != "" {
		l.Statut = req.Statut
	}
	l.Notes = req.Notes

	if err := s.repo.Save(ctx, l); err != nil {
		return domain.Location{}, err
	}
	return *l, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("location supprimée", zap.String("location_id", id))
	return nil
}
