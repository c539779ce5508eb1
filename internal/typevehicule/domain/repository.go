package domain

import "context"

type Repository interface {
	List(ctx context.Context) []TypeVehicule
	GetByID(ctx context.Context, id string) (*TypeVehicule, error)
	Save(ctx context.Context, t *TypeVehicule) error
	Delete(ctx context.Context, id string) error
}
