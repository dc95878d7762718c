package prediction

import "context"

type Repository interface {
	GetByUserAndLeague(ctx context.Context, userID, leagueID string) (Prediction, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Prediction, error)
	Upsert(ctx context.Context, item Prediction) error
	DeleteByLeague(ctx context.Context, leagueID string) error
}
