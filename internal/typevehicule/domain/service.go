package domain

import (
	"context"
	"errors"
)

type CreateTypeVehiculeRequest struct {
	Label string
}

type UpdateTypeVehiculeRequest struct {
	ID    string
	Label string
}

type Service interface {
	List(ctx context.Context) []TypeVehicule
	GetByID(ctx context.Context, id string) (TypeVehicule, error)
	Create(ctx context.Context, req CreateTypeVehiculeRequest) (TypeVehicule, error)
	Update(ctx context.Context, req UpdateTypeVehiculeRequest) (TypeVehicule, error)
	// Delete refuses to remove a type still referenced by a dossier,
	// facture or location.
	Delete(ctx context.Context, id string) error
	// ResolveLabel returns the id of the type whose label matches after
	// normalization, creating the type when none matches. Empty labels
	// resolve to the empty id.
	ResolveLabel(ctx context.Context, label string) (string, error)
	// LabelOf resolves a type id to its display label, empty when unknown.
	LabelOf(ctx context.Context, id string) string
}

var (
	ErrNotFound    = errors.New("type_vehicule_not_found")
	ErrLabelRequis = errors.New("label_requis")
	ErrTypeUtilise = errors.New("type_vehicule_utilise")
)
