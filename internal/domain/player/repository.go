package player

import "context"

type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]Player, error)
	UpsertMany(ctx context.Context, items []Player) error
}
