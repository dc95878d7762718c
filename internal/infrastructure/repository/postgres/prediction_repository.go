package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	qb "github.com/draftpool/confidence-pool/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("user_id", userID),
		).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction: %w", err)
	}

	out, err := predictionFromTable(row)
	if err != nil {
		return prediction.Prediction{}, false, err
	}

	return out, true, nil
}

func (r *PredictionRepository) ListByLeague(ctx context.Context, leagueID string) ([]prediction.Prediction, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions by league: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		item, err := predictionFromTable(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PredictionRepository) Upsert(ctx context.Context, item prediction.Prediction) error {
	payload := make([]predictionPickPayload, 0, len(item.Picks))
	for _, pick := range item.Picks {
		payload = append(payload, predictionPickPayload{
			Position:   pick.Position,
			PlayerID:   pick.PlayerID,
			Confidence: pick.Confidence,
		})
	}
	picks, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode prediction picks: %w", err)
	}

	query, args, err := qb.InsertInto("predictions").
		Columns("league_id", "user_id", "picks", "is_complete", "updated_at").
		Values(item.LeagueID, item.UserID, string(picks), item.IsComplete, item.UpdatedAt).
		Suffix(`ON CONFLICT (league_id, user_id) DO UPDATE SET
			picks = EXCLUDED.picks,
			is_complete = EXCLUDED.is_complete,
			updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert prediction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}

	return nil
}

func (r *PredictionRepository) DeleteByLeague(ctx context.Context, leagueID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM predictions WHERE league_id = $1`, leagueID); err != nil {
		return fmt.Errorf("delete predictions by league: %w", err)
	}

	return nil
}

func predictionFromTable(row predictionTableModel) (prediction.Prediction, error) {
	var payload []predictionPickPayload
	if row.Picks != "" {
		if err := sonic.Unmarshal([]byte(row.Picks), &payload); err != nil {
			return prediction.Prediction{}, fmt.Errorf("decode prediction picks: %w", err)
		}
	}

	picks := make([]prediction.Pick, 0, len(payload))
	for _, p := range payload {
		picks = append(picks, prediction.Pick{
			Position:   p.Position,
			PlayerID:   p.PlayerID,
			Confidence: p.Confidence,
		})
	}

	return prediction.Prediction{
		UserID:     row.UserID,
		LeagueID:   row.LeagueID,
		Picks:      picks,
		IsComplete: row.IsComplete,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}
