package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/entreprise/domain"
)

type service struct {
	repo domain.Repository
	log  *zap.Logger
}

func Provide(repo domain.Repository, log *zap.Logger) domain.Service {
	return &service{repo: repo, log: log}
}

func (s *service) Get(ctx context.Context) domain.EntrepriseInfo {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, req domain.UpdateEntrepriseRequest) (domain.EntrepriseInfo, error) {
	if strings.TrimSpace(req.Nom) == "" {
		return domain.EntrepriseInfo{}, domain.ErrNomRequis
	}
	info := domain.EntrepriseInfo{
		Nom:       strings.TrimSpace(req.Nom),
		Adresse:   req.Adresse,
		Telephone: req.Telephone,
		Email:     req.Email,
		Logo:      req.Logo,
	}
	if err := s.repo.Save(ctx, info); err != nil {
		return domain.EntrepriseInfo{}, err
	}
	s.log.Info("coordonnées entreprise mises à jour", zap.String("nom", info.Nom))
	return info, nil
}
