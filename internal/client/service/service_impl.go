package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/client/domain"
	"github.com/hscdigital/douanapp/internal/integrity"
)

type service struct {
	repo  domain.Repository
	guard integrity.Guard
	log   *zap.Logger
}

func Provide(repo domain.Repository, guard integrity.Guard, log *zap.Logger) domain.Service {
	return &service{repo: repo, guard: guard, log: log}
}

func (s *service) List(ctx context.Context) []domain.Client {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (domain.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}
	return *c, nil
}

func validate(nom, telephone string) error {
	if strings.TrimSpace(nom) == "" {
		return domain.ErrNomRequis
	}
	if strings.TrimSpace(telephone) == "" {
		return domain.ErrTelephoneRequis
	}
	if !domain.ValidateTelephone(telephone) {
		return domain.ErrTelephoneInvalide
	}
	return nil
}

func (s *service) Create(ctx context.Context, req domain.CreateClientRequest) (domain.Client, error) {
	if err := validate(req.Nom, req.Telephone); err != nil {
		return domain.Client{}, err
	}
	c := domain.Client{
		ID:        uuid.NewString(),
		Nom:       strings.TrimSpace(req.Nom),
		Prenom:    strings.TrimSpace(req.Prenom),
		Telephone: strings.TrimSpace(req.Telephone),
		Email:     strings.TrimSpace(req.Email),
		Adresse:   strings.TrimSpace(req.Adresse),
	}
	if err := s.repo.Save(ctx, &c); err != nil {
		return domain.Client{}, err
	}
	s.log.Info("client créé", zap.String("client_id", c.ID), zap.String("nom", c.DisplayName()))
	return c, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateClientRequest) (domain.Client, error) {
	if err := validate(req.Nom, req.Telephone); err != nil {
		return domain.Client{}, err
	}
	c, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Client{}, err
	}
	c.Nom = strings.TrimSpace(req.Nom)
	c.Prenom = strings.TrimSpace(req.Prenom)
	c.Telephone = strings.TrimSpace(req.Telephone)
	c.Email = strings.TrimSpace(req.Email)
	c.Adresse = strings.TrimSpace(req.Adresse)
	if err := s.repo.Save(ctx, c); err != nil {
		return domain.Client{}, err
	}
	return *c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if s.guard.ClientInUse(ctx, id) {
		return domain.ErrClientUtilise
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("client supprimé", zap.String("client_id", id))
	return nil
}
