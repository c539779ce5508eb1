package domain

import (
	"context"
	"errors"
)

type CreateClientRequest struct {
	Nom       string
	Prenom    string
	Telephone string
	Email     string
	Adresse   string
}

type UpdateClientRequest struct {
	ID        string
	Nom       string
	Prenom    string
	Telephone string
	Email     string
	Adresse   string
}

type Service interface {
	List(ctx context.Context) []Client
	GetByID(ctx context.Context, id string) (Client, error)
	Create(ctx context.Context, req CreateClientRequest) (Client, error)
	Update(ctx context.Context, req UpdateClientRequest) (Client, error)
	// Delete refuses to remove a client still referenced by a dossier,
	// facture or location.
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound          = errors.New("client_not_found")
	ErrNomRequis         = errors.New("nom_requis")
	ErrTelephoneRequis   = errors.New("telephone_requis")
	ErrTelephoneInvalide = errors.New("telephone_invalide")
	ErrClientUtilise     = errors.New("client_utilise")
)
