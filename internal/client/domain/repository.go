package domain

import "context"

type Repository interface {
	List(ctx context.Context) []Client
	GetByID(ctx context.Context, id string) (*Client, error)
	Save(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error
}
