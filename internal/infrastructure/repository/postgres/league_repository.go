package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	qb "github.com/draftpool/confidence-pool/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	out, err := leagueFromTable(row)
	if err != nil {
		return league.League{}, false, err
	}

	return out, true, nil
}

func (r *LeagueRepository) GetByInviteCode(ctx context.Context, inviteCode string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("invite_code", inviteCode)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by invite code query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by invite code: %w", err)
	}

	out, err := leagueFromTable(row)
	if err != nil {
		return league.League{}, false, err
	}

	return out, true, nil
}

func (r *LeagueRepository) ListByMember(ctx context.Context, userID string) ([]league.League, error) {
	// Members is a jsonb array of user ids.
	query := `SELECT * FROM leagues WHERE members @> $1 ORDER BY created_at, id`
	member, err := sonic.Marshal([]string{userID})
	if err != nil {
		return nil, fmt.Errorf("encode member filter: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, string(member)); err != nil {
		return nil, fmt.Errorf("list leagues by member: %w", err)
	}

	return leaguesFromTable(rows)
}

func (r *LeagueRepository) ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("sport_type", sportType),
			qb.Eq("draft_year", draftYear),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues by sport year query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues by sport year: %w", err)
	}

	return leaguesFromTable(rows)
}

func (r *LeagueRepository) ListPublic(ctx context.Context, sportType string, draftYear int) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("sport_type", sportType),
			qb.Eq("draft_year", draftYear),
			qb.Eq("public_join", true),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list public leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list public leagues: %w", err)
	}

	return leaguesFromTable(rows)
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	members, err := sonic.Marshal(item.Members)
	if err != nil {
		return fmt.Errorf("encode league members: %w", err)
	}

	query, args, err := qb.InsertInto("leagues").
		Columns("id", "name", "sport_type", "draft_year", "owner_user_id", "members",
			"total_picks", "invite_code", "public_join", "created_at", "updated_at").
		Values(item.ID, item.Name, item.SportType, item.DraftYear, item.OwnerUserID, string(members),
			item.Settings.TotalPicks, item.Settings.InviteCode, item.Settings.PublicJoin,
			item.CreatedAt, item.UpdatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) error {
	members, err := sonic.Marshal(item.Members)
	if err != nil {
		return fmt.Errorf("encode league members: %w", err)
	}

	query, args, err := qb.Update("leagues").
		Set("name", item.Name).
		Set("members", string(members)).
		Set("total_picks", item.Settings.TotalPicks).
		Set("invite_code", item.Settings.InviteCode).
		Set("public_join", item.Settings.PublicJoin).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM leagues WHERE id = $1`, leagueID); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}

	return nil
}

func leagueFromTable(row leagueTableModel) (league.League, error) {
	var members []string
	if row.Members != "" {
		if err := sonic.Unmarshal([]byte(row.Members), &members); err != nil {
			return league.League{}, fmt.Errorf("decode league members: %w", err)
		}
	}

	return league.League{
		ID:          row.ID,
		Name:        row.Name,
		SportType:   row.SportType,
		DraftYear:   row.DraftYear,
		OwnerUserID: row.OwnerUserID,
		Members:     members,
		Settings: league.Settings{
			TotalPicks: row.TotalPicks,
			InviteCode: row.InviteCode,
			PublicJoin: row.PublicJoin,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func leaguesFromTable(rows []leagueTableModel) ([]league.League, error) {
	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		item, err := leagueFromTable(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}
