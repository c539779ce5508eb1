package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/integrity"
	"github.com/hscdigital/douanapp/internal/typevehicule/domain"
	"github.com/hscdigital/douanapp/pkg/textutil"
)

type service struct {
	repo  domain.Repository
	guard integrity.Guard
	log   *zap.Logger
}

func Provide(repo domain.Repository, guard integrity.Guard, log *zap.Logger) domain.Service {
	return &service{repo: repo, guard: guard, log: log}
}

func (s *service) List(ctx context.Context) []domain.TypeVehicule {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (domain.TypeVehicule, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.TypeVehicule{}, err
	}
	return *t, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateTypeVehiculeRequest) (domain.TypeVehicule, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return domain.TypeVehicule{}, domain.ErrLabelRequis
	}
	// Silently reuse an existing type with the same normalized label rather
	// than growing the directory with near-duplicates.
	if existing := s.findByLabel(ctx, label); existing != nil {
		return *existing, nil
	}
	t := domain.TypeVehicule{ID: uuid.NewString(), Label: label}
	if err := s.repo.Save(ctx, &t); err != nil {
		return domain.TypeVehicule{}, err
	}
	s.log.Info("type de véhicule créé", zap.String("type_id", t.ID), zap.String("label", t.Label))
	return t, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateTypeVehiculeRequest) (domain.TypeVehicule, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return domain.TypeVehicule{}, domain.ErrLabelRequis
	}
	t, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return domain.TypeVehicule{}, err
	}
	t.Label = label
	if err := s.repo.Save(ctx, t); err != nil {
		return domain.TypeVehicule{}, err
	}
	return *t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if s.guard.TypeVehiculeInUse(ctx, id) {
		return domain.ErrTypeUtilise
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("type de véhicule supprimé", zap.String("type_id", id))
	return nil
}

func (s *service) findByLabel(ctx context.Context, label string) *domain.TypeVehicule {
	want := textutil.Normalize(label)
	if want == "" {
		return nil
	}
	for _, t := range s.repo.List(ctx) {
		if textutil.Normalize(t.Label) == want {
			return &t
		}
	}
	return nil
}

func (s *service) ResolveLabel(ctx context.Context, label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", nil
	}
	if existing := s.findByLabel(ctx, label); existing != nil {
		return existing.ID, nil
	}
	t := domain.TypeVehicule{ID: uuid.NewString(), Label: label}
	if err := s.repo.Save(ctx, &t); err != nil {
		return "", err
	}
	s.log.Info("type de véhicule créé à l'import", zap.String("type_id", t.ID), zap.String("label", t.Label))
	return t.ID, nil
}

func (s *service) LabelOf(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return t.Label
}
