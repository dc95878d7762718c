package draftresult

import (
	"fmt"
	"time"
)

// ActualPick is the admin-entered ground truth for one draft slot. It is
// shared by every league of the same (sportType, draftYear); once announced
// it is only ever overwritten, never removed.
type ActualPick struct {
	Position   int
	PlayerID   string
	SportType  string
	DraftYear  int
	RecordedAt time.Time
}

func (p ActualPick) Validate() error {
	if p.Position < 1 {
		return fmt.Errorf("actual pick position must be greater than zero")
	}
	if p.PlayerID == "" {
		return fmt.Errorf("actual pick player id is required")
	}
	if p.SportType == "" {
		return fmt.Errorf("actual pick sport type is required")
	}
	if p.DraftYear <= 0 {
		return fmt.Errorf("actual pick draft year must be greater than zero")
	}

	return nil
}

// ResultMap collapses announced picks into the position -> player lookup the
// scoring engine consumes. Later entries for the same position win.
func ResultMap(picks []ActualPick) map[int]string {
	out := make(map[int]string, len(picks))
	for _, pick := range picks {
		if pick.Position < 1 {
			continue
		}
		out[pick.Position] = pick.PlayerID
	}
	return out
}
