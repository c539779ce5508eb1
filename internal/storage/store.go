package storage

import "context"

// Storage keys. Each collection is serialized as one JSON document under its
// own key; the entreprise record is a single JSON object.
const (
	KeyDossiers      = "douanapp_dossiers"
	KeyFactures      = "douanapp_factures"
	KeyLocations     = "douanapp_locations"
	KeyClients       = "douanapp_clients"
	KeyTypesVehicule = "douanapp_types_vehicule"
	KeyEntreprise    = "douanapp_entreprise"
)

// Store is a key/value document store with whole-document reads and writes.
// Every collection write replaces the full serialized collection; there are
// no partial updates.
type Store interface {
	// Get returns the document stored under key. The second return value
	// reports whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every stored key. Irreversible.
	Clear(ctx context.Context) error
}
