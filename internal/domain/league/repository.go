package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (League, bool, error)
	ListByMember(ctx context.Context, userID string) ([]League, error)
	ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]League, error)
	ListPublic(ctx context.Context, sportType string, draftYear int) ([]League, error)
	Create(ctx context.Context, item League) error
	Update(ctx context.Context, item League) error
	Delete(ctx context.Context, leagueID string) error
}
