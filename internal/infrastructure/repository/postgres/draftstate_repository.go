package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
	qb "github.com/draftpool/confidence-pool/internal/platform/querybuilder"
)

type draftStateTableModel struct {
	SportType   string    `db:"sport_type"`
	DraftYear   int       `db:"draft_year"`
	IsLive      bool      `db:"is_live"`
	IsCompleted bool      `db:"is_completed"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type DraftStateRepository struct {
	db *sqlx.DB
}

func NewDraftStateRepository(db *sqlx.DB) *DraftStateRepository {
	return &DraftStateRepository{db: db}
}

func (r *DraftStateRepository) Get(ctx context.Context, sportType string, draftYear int) (draftstate.State, bool, error) {
	query, args, err := qb.Select("*").From("draft_states").
		Where(
			qb.Eq("sport_type", sportType),
			qb.Eq("draft_year", draftYear),
		).
		ToSQL()
	if err != nil {
		return draftstate.State{}, false, fmt.Errorf("build get draft state query: %w", err)
	}

	var row draftStateTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draftstate.State{}, false, nil
		}
		return draftstate.State{}, false, fmt.Errorf("get draft state: %w", err)
	}

	return draftstate.State{
		SportType:   row.SportType,
		DraftYear:   row.DraftYear,
		IsLive:      row.IsLive,
		IsCompleted: row.IsCompleted,
		UpdatedAt:   row.UpdatedAt,
	}, true, nil
}

func (r *DraftStateRepository) Upsert(ctx context.Context, item draftstate.State) error {
	query, args, err := qb.InsertInto("draft_states").
		Columns("sport_type", "draft_year", "is_live", "is_completed", "updated_at").
		Values(item.SportType, item.DraftYear, item.IsLive, item.IsCompleted, item.UpdatedAt).
		Suffix(`ON CONFLICT (sport_type, draft_year) DO UPDATE SET
			is_live = EXCLUDED.is_live,
			is_completed = EXCLUDED.is_completed,
			updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert draft state query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert draft state: %w", err)
	}

	return nil
}
