package draftstate

import "context"

type Repository interface {
	Get(ctx context.Context, sportType string, draftYear int) (State, bool, error)
	Upsert(ctx context.Context, item State) error
}
