package domain

import (
	"context"
	"errors"
)

type CreateDossierRequest struct {
	NumeroCH          string
	ChassisCH         string
	Annee             string
	ReferenceVehicule string
	TypeVehiculeID    string
	ClientID          string
	Statut            StatutDossier
	Notes             string
}

type UpdateDossierRequest struct {
	ID                string
	NumeroCH          string
	ChassisCH         string
	Annee             string
	ReferenceVehicule string
	TypeVehiculeID    string
	ClientID          string
	Statut            StatutDossier
	Notes             string
}

type Service interface {
	List(ctx context.Context) []Dossier
	GetByID(ctx context.Context, id string) (Dossier, error)
	Create(ctx context.Context, req CreateDossierRequest) (Dossier, error)
	Update(ctx context.Context, req UpdateDossierRequest) (Dossier, error)
	// ChangeStatut jumps the dossier to any stage; the workflow order is
	// informational, not enforced.
	ChangeStatut(ctx context.Context, id string, statut StatutDossier) (Dossier, error)
	Delete(ctx context.Context, id string) error
	// Import stores pre-built dossier rows, additive or full-replace.
	Import(ctx context.Context, dossiers []Dossier, replace bool) (int, error)
}

var (
	ErrNotFound           = errors.New("dossier_not_found")
	ErrNumeroCHRequis     = errors.New("numero_ch_requis")
	ErrNumeroCHExiste     = errors.New("numero_ch_existe")
	ErrReferenceRequise   = errors.New("reference_vehicule_requise")
	ErrClientRequis       = errors.New("client_requis")
	ErrStatutInvalide     = errors.New("statut_invalide")
	ErrDossierLieFactures = errors.New("dossier_lie_factures")
)
