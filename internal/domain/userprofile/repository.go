package userprofile

import "context"

type Repository interface {
	GetByID(ctx context.Context, userID string) (Profile, bool, error)
	ListByIDs(ctx context.Context, userIDs []string) ([]Profile, error)
	Upsert(ctx context.Context, item Profile) error
}
