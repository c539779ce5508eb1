package domain

import "context"

type Repository interface {
	List(ctx context.Context) []Location
	GetByID(ctx context.Context, id string) (*Location, error)
	Save(ctx context.Context, location *Location) error
	Delete(ctx context.Context, id string) error
}
