package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	qb "github.com/draftpool/confidence-pool/internal/platform/querybuilder"
)

type draftResultTableModel struct {
	SportType  string    `db:"sport_type"`
	DraftYear  int       `db:"draft_year"`
	Position   int       `db:"position"`
	PlayerID   string    `db:"player_id"`
	RecordedAt time.Time `db:"recorded_at"`
}

type DraftResultRepository struct {
	db *sqlx.DB
}

func NewDraftResultRepository(db *sqlx.DB) *DraftResultRepository {
	return &DraftResultRepository{db: db}
}

func (r *DraftResultRepository) ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]draftresult.ActualPick, error) {
	query, args, err := qb.Select("*").From("draft_results").
		Where(
			qb.Eq("sport_type", sportType),
			qb.Eq("draft_year", draftYear),
		).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list draft results query: %w", err)
	}

	var rows []draftResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list draft results: %w", err)
	}

	out := make([]draftresult.ActualPick, 0, len(rows))
	for _, row := range rows {
		out = append(out, draftresult.ActualPick{
			Position:   row.Position,
			PlayerID:   row.PlayerID,
			SportType:  row.SportType,
			DraftYear:  row.DraftYear,
			RecordedAt: row.RecordedAt,
		})
	}

	return out, nil
}

func (r *DraftResultRepository) Upsert(ctx context.Context, item draftresult.ActualPick) error {
	query, args, err := qb.InsertInto("draft_results").
		Columns("sport_type", "draft_year", "position", "player_id", "recorded_at").
		Values(item.SportType, item.DraftYear, item.Position, item.PlayerID, item.RecordedAt).
		Suffix(`ON CONFLICT (sport_type, draft_year, position) DO UPDATE SET
			player_id = EXCLUDED.player_id,
			recorded_at = EXCLUDED.recorded_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert draft result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert draft result: %w", err)
	}

	return nil
}
