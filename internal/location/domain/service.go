package domain

import (
	"context"
	"errors"
)

type DepenseLigneInput struct {
	ID      string
	Libelle string
	Montant float64
}

type CreateLocationRequest struct {
	ReferenceCamion string
	TypeCamionID    string
	ClientID        string
	DateDebut       string
	DateFin         string
	MontantTotal    float64
	Statut          StatutLocation
	Notes           string
	DepensesLignes  []DepenseLigneInput
}

type UpdateLocationRequest struct {
	ID              string
	ReferenceCamion string
	TypeCamionID    string
	ClientID        string
	DateDebut       string
	DateFin         string
	MontantTotal    float64
	Statut          StatutLocation
	Notes           string
	DepensesLignes  []DepenseLigneInput
}

type Service interface {
	List(ctx context.Context) []Location
	GetByID(ctx context.Context, id string) (Location, error)
	Create(ctx context.Context, req CreateLocationRequest) (Location, error)
	Update(ctx context.Context, req UpdateLocationRequest) (Location, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound         = errors.New("location_not_found")
	ErrReferenceRequise = errors.New("reference_camion_requise")
	ErrClientRequis     = errors.New("client_requis")
	ErrMontantInvalide  = errors.New("montant_invalide")
	ErrStatutInvalide   = errors.New("statut_invalide")
)
