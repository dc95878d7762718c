package postgres

import "time"

type predictionTableModel struct {
	LeagueID   string    `db:"league_id"`
	UserID     string    `db:"user_id"`
	Picks      string    `db:"picks"`
	IsComplete bool      `db:"is_complete"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type predictionPickPayload struct {
	Position   int    `json:"position"`
	PlayerID   string `json:"playerId"`
	Confidence int    `json:"confidence"`
}
