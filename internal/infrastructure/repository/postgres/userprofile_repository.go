package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
	qb "github.com/draftpool/confidence-pool/internal/platform/querybuilder"
)

type userProfileTableModel struct {
	UserID      string `db:"user_id"`
	DisplayName string `db:"display_name"`
	Email       string `db:"email"`
}

type UserProfileRepository struct {
	db *sqlx.DB
}

func NewUserProfileRepository(db *sqlx.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

func (r *UserProfileRepository) GetByID(ctx context.Context, userID string) (userprofile.Profile, bool, error) {
	query, args, err := qb.Select("*").From("user_profiles").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return userprofile.Profile{}, false, fmt.Errorf("build get user profile query: %w", err)
	}

	var row userProfileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return userprofile.Profile{}, false, nil
		}
		return userprofile.Profile{}, false, fmt.Errorf("get user profile: %w", err)
	}

	return userprofile.Profile{UserID: row.UserID, DisplayName: row.DisplayName, Email: row.Email}, true, nil
}

func (r *UserProfileRepository) ListByIDs(ctx context.Context, userIDs []string) ([]userprofile.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, id)
	}
	query, args, err := qb.Select("*").From("user_profiles").
		Where(qb.In("user_id", ids)).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list user profiles query: %w", err)
	}

	var rows []userProfileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list user profiles: %w", err)
	}

	out := make([]userprofile.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, userprofile.Profile{UserID: row.UserID, DisplayName: row.DisplayName, Email: row.Email})
	}

	return out, nil
}

func (r *UserProfileRepository) Upsert(ctx context.Context, item userprofile.Profile) error {
	query, args, err := qb.InsertInto("user_profiles").
		Columns("user_id", "display_name", "email").
		Values(item.UserID, item.DisplayName, item.Email).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert user profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert user profile: %w", err)
	}

	return nil
}
