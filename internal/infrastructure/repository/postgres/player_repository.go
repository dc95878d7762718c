package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/draftpool/confidence-pool/internal/domain/player"
	qb "github.com/draftpool/confidence-pool/internal/platform/querybuilder"
)

type playerTableModel struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Position  string `db:"position"`
	Team      string `db:"team"`
	SportType string `db:"sport_type"`
	DraftYear int    `db:"draft_year"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromTable(row), true, nil
}

func (r *PlayerRepository) ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("sport_type", sportType),
			qb.Eq("draft_year", draftYear),
		).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromTable(row))
	}

	return out, nil
}

func (r *PlayerRepository) UpsertMany(ctx context.Context, items []player.Player) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.InsertInto("players").
		Columns("id", "name", "position", "team", "sport_type", "draft_year")
	for _, item := range items {
		builder = builder.Values(item.ID, item.Name, item.Position, item.Team, item.SportType, item.DraftYear)
	}
	query, args, err := builder.
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			position = EXCLUDED.position,
			team = EXCLUDED.team`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert players query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}

	return nil
}

func playerFromTable(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		Name:      row.Name,
		Position:  row.Position,
		Team:      row.Team,
		SportType: row.SportType,
		DraftYear: row.DraftYear,
	}
}
