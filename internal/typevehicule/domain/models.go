package domain

import "time"

// TypeVehicule is a reusable vehicle/truck category. Dossiers, factures and
// locations reference it by id; the label is only for display.
type TypeVehicule struct {
	ID               string    `json:"id"`
	Label            string    `json:"label"`
	DateCreation     time.Time `json:"dateCreation,omitzero"`
	DateModification time.Time `json:"dateModification,omitzero"`
}

// DefaultLabels seeds the directory when nothing is stored yet.
var DefaultLabels = []string{
	"Berline",
	"SUV",
	"Pick-up",
	"Porteur",
	"Semi-remorque",
	"Camion-citerne",
}
