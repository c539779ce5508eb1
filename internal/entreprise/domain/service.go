package domain

import (
	"context"
	"errors"
)

type Repository interface {
	// Get returns the stored record, or Default() when absent or corrupt.
	Get(ctx context.Context) EntrepriseInfo
	Save(ctx context.Context, info EntrepriseInfo) error
}

type UpdateEntrepriseRequest struct {
	Nom       string
	Adresse   string
	Telephone string
	Email     string
	Logo      string
}

type Service interface {
	Get(ctx context.Context) EntrepriseInfo
	Update(ctx context.Context, req UpdateEntrepriseRequest) (EntrepriseInfo, error)
}

var ErrNomRequis = errors.New("nom_requis")
