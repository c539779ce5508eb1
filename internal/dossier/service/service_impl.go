package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	clientdomain "github.com/hscdigital/douanapp/internal/client/domain"
	"github.com/hscdigital/douanapp/internal/dossier/domain"
	tvdomain "github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

type service struct {
	repo    domain.Repository
	clients clientdomain.Repository
	types   tvdomain.Repository
	log     *zap.Logger
}

func Provide(
	repo domain.Repository,
	clients clientdomain.Repository,
	types tvdomain.Repository,
	log *zap.Logger,
) domain.Service {
	return &service{repo: repo, clients: clients, types: types, log: log}
}

// resolveLabels fills the display-only vehicle type labels. The id is the
// linkage key; the label always reflects the directory's current spelling.
func (s *service) resolveLabels(ctx context.Context, dossiers []domain.Dossier) {
	cache := make(map[string]string)
	for i := range dossiers {
		d := &dossiers[i]
		if d.TypeVehiculeID == "" {
			continue
		}
		label, ok := cache[d.TypeVehiculeID]
		if !ok {
			if t, err := s.types.GetByID(ctx, d.TypeVehiculeID); err == nil {
				label = t.Label
			}
			cache[d.TypeVehiculeID] = label
		}
		d.TypeVehicule = label
	}
}

func (s *service) List(ctx context.Context) []domain.Dossier {
	dossiers := s.repo.List(ctx)
	s.resolveLabels(ctx, dossiers)
	return dossiers
}

func (s *service) GetByID(ctx context.Context, id string) (domain.Dossier, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Dossier{}, err
	}
	one := []domain.Dossier{*d}
	s.resolveLabels(ctx, one)
	return one[0], nil
}

func (s *service) validate(ctx context.Context, numeroCH, reference, clientID string, statut domain.StatutDossier) error {
	if strings.TrimSpace(numeroCH) == "" {
		return domain.ErrNumeroCHRequis
	}
	if strings.TrimSpace(reference) == "" {
		return domain.ErrReferenceRequise
	}
	if strings.TrimSpace(clientID) == "" {
		return domain.ErrClientRequis
	}
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return err
	}
	if statut != "" && !statut.Valid() {
		return domain.ErrStatutInvalide
	}
	return nil
}

func (s *service) Create(ctx context.Context, req domain.CreateDossierRequest) (domain.Dossier, error) {
	if err := s.validate(ctx, req.NumeroCH, req.ReferenceVehicule, req.ClientID, req.Statut); err != nil {
		return domain.Dossier{}, err
	}

	statut := req.Statut
	if statut == "" {
		statut = domain.StatutLance
	}
	d := domain.Dossier{
		ID:                uuid.NewString(),
		NumeroCH:          strings.TrimSpace(req.NumeroCH),
		ChassisCH:         strings.TrimSpace(req.ChassisCH),
		Annee:             strings.TrimSpace(req.Annee),
		ReferenceVehicule: strings.TrimSpace(req.ReferenceVehicule),
		TypeVehiculeID:    req.TypeVehiculeID,
		ClientID:          req.ClientID,
		Statut:            statut,
		Notes:             req.Notes,
	}
	if err := s.repo.Save(ctx, &d); err != nil {
		return domain.Dossier{}, err
	}
	s.log.Info("dossier créé",
		zap.String("dossier_id", d.ID),
		zap.String("numero_ch", d.NumeroCH),
		zap.String("statut", string(d.Statut)))
	return d, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateDossierRequest) (domain.Dossier, error) {
	if err := s.validate(ctx, req.NumeroCH, req.ReferenceVehicule, req.ClientID, req.Statut); err != nil {
		return domain.Dossier{}, err
	}
	d, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Dossier{}, err
	}
	d.NumeroCH = strings.TrimSpace(req.NumeroCH)
	d.ChassisCH = strings.TrimSpace(req.ChassisCH)
	d.Annee = strings.TrimSpace(req.Annee)
	d.ReferenceVehicule = strings.TrimSpace(req.ReferenceVehicule)
	d.TypeVehiculeID = req.TypeVehiculeID
	d.ClientID = req.ClientID
	if req.Statut != "" {
		d.Statut = req.Statut
	}
	d.Notes = req.Notes
	if err := s.repo.Save(ctx, d); err != nil {
		return domain.Dossier{}, err
	}
	return *d, nil
}

func (s *service) ChangeStatut(ctx context.Context, id string, statut domain.StatutDossier) (domain.Dossier, error) {
	if !statut.Valid() {
		return domain.Dossier{}, domain.ErrStatutInvalide
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Dossier{}, err
	}
	previous := d.Statut
	d.Statut = statut
	if err := s.repo.Save(ctx, d); err != nil {
		return domain.Dossier{}, err
	}
	s.log.Info("statut du dossier modifié",
		zap.String("dossier_id", d.ID),
		zap.String("de", string(previous)),
		zap.String("vers", string(statut)))
	return *d, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("dossier supprimé", zap.String("dossier_id", id))
	return nil
}

func (s *service) Import(ctx context.Context, dossiers []domain.Dossier, replace bool) (int, error) {
	stored, err := s.repo.Import(ctx, dossiers, replace)
	if err != nil {
		return 0, err
	}
	s.log.Info("dossiers importés",
		zap.Int("reçus", len(dossiers)),
		zap.Int("stockés", stored),
		zap.Bool("remplacement", replace))
	return stored, nil
}
