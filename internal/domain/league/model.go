package league

import (
	"fmt"
	"time"
)

// Settings controls how predictions are entered and who may join.
type Settings struct {
	TotalPicks int
	InviteCode string
	PublicJoin bool
}

// League is one confidence pool scoped to a single draft (sport, year).
type League struct {
	ID          string
	Name        string
	SportType   string
	DraftYear   int
	OwnerUserID string
	Members     []string
	Settings    Settings
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.SportType == "" {
		return fmt.Errorf("league sport type is required")
	}
	if l.DraftYear <= 0 {
		return fmt.Errorf("league draft year must be greater than zero")
	}
	if l.OwnerUserID == "" {
		return fmt.Errorf("league owner is required")
	}
	if l.Settings.TotalPicks <= 0 {
		return fmt.Errorf("league total picks must be greater than zero")
	}

	return nil
}

// HasMember reports whether userID belongs to the league roster.
func (l League) HasMember(userID string) bool {
	for _, member := range l.Members {
		if member == userID {
			return true
		}
	}
	return false
}
