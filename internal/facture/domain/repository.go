package domain

import "context"

type Repository interface {
	List(ctx context.Context) []Facture
	GetByID(ctx context.Context, id string) (*Facture, error)
	GetByDossier(ctx context.Context, dossierID string) []Facture
	Save(ctx context.Context, facture *Facture) error
	// Delete removes the invoice together with its embedded tranches and
	// paiements; no orphan cleanup is needed.
	Delete(ctx context.Context, id string) error
}
