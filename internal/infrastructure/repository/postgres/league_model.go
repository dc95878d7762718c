package postgres

import "time"

type leagueTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	SportType   string    `db:"sport_type"`
	DraftYear   int       `db:"draft_year"`
	OwnerUserID string    `db:"owner_user_id"`
	Members     string    `db:"members"`
	TotalPicks  int       `db:"total_picks"`
	InviteCode  string    `db:"invite_code"`
	PublicJoin  bool      `db:"public_join"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
