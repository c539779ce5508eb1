package domain

import "context"

type Repository interface {
	List(ctx context.Context) []Dossier
	GetByID(ctx context.Context, id string) (*Dossier, error)
	GetByNumeroCH(ctx context.Context, numeroCH string) (*Dossier, error)
	// Save upserts and enforces numeroCH uniqueness across the collection,
	// returning ErrNumeroCHExiste on a duplicate under a different id.
	Save(ctx context.Context, dossier *Dossier) error
	// Delete fails with ErrDossierLieFactures while any facture references
	// the dossier. This guard is enforced at the storage boundary.
	Delete(ctx context.Context, id string) error
	// Import merges dossiers into the collection. In replace mode the
	// prior collection is discarded; in additive mode rows whose numeroCH
	// is already present are skipped. Returns the number of rows stored.
	Import(ctx context.Context, dossiers []Dossier, replace bool) (int, error)
}
