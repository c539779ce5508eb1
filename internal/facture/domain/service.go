package domain

import (
	"context"
	"errors"
)

type TrancheInput struct {
	Montant      float64
	DateEcheance string
}

type DepenseLigneInput struct {
	ID      string
	Libelle string
	Montant float64
}

type CreateFactureRequest struct {
	DossierID       string
	ClientID        string
	VIN             string
	DateFacture     string
	PrixTotalTTC    float64
	PrixAchat       float64
	Dedouanement    float64
	ModePaiement    ModePaiement
	PaysDestination string
	Tranches        []TrancheInput
}

type RecordPaiementRequest struct {
	FactureID    string
	TrancheID    string
	Montant      float64
	Date         string
	ModePaiement ModePaiement
}

type UpdateCoutsRequest struct {
	FactureID      string
	PrixAchat      float64
	Dedouanement   float64
	DepensesLignes []DepenseLigneInput
}

type Service interface {
	// List loads every invoice, applying the lazy overdue transition and
	// the legacy expense migration.
	List(ctx context.Context) []Facture
	GetByID(ctx context.Context, id string) (Facture, error)
	GetByDossier(ctx context.Context, dossierID string) []Facture
	Create(ctx context.Context, req CreateFactureRequest) (Facture, error)
	// RecordPaiement appends a payment, optionally settling a tranche, and
	// recomputes the derived totals. The whole invoice persists atomically.
	RecordPaiement(ctx context.Context, req RecordPaiementRequest) (Facture, error)
	// UpdateCouts edits acquisition/clearance costs and expense lines.
	// It never touches montantPaye, montantRestant or statut.
	UpdateCouts(ctx context.Context, req UpdateCoutsRequest) (Facture, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound        = errors.New("facture_not_found")
	ErrDossierRequis   = errors.New("dossier_requis")
	ErrPrixInvalide    = errors.New("prix_invalide")
	ErrMontantInvalide = errors.New("montant_invalide")
	ErrTrancheNotFound = errors.New("tranche_not_found")
	ErrOrdreTranches   = errors.New("ordre_tranches")
	ErrSommeTranches   = errors.New("somme_tranches")
	ErrModeInvalide    = errors.New("mode_paiement_invalide")
)
