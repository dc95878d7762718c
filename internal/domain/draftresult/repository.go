package draftresult

import "context"

type Repository interface {
	ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]ActualPick, error)
	Upsert(ctx context.Context, item ActualPick) error
}
