package prediction

import (
	"fmt"
	"time"
)

// Pick is one predicted draft slot with its user-assigned confidence weight.
type Pick struct {
	Position   int
	PlayerID   string
	Confidence int
}

// Prediction is one user's full slate of picks for a league. There is at most
// one prediction per (league, user) pair.
type Prediction struct {
	UserID     string
	LeagueID   string
	Picks      []Pick
	IsComplete bool
	UpdatedAt  time.Time
}

// Key is the storage identity of a prediction.
func Key(leagueID, userID string) string {
	return leagueID + userID
}

// Validate enforces the write-time rules for a submitted prediction:
// positions and confidences stay inside [1, totalPicks], no position is
// predicted twice, and a complete prediction carries every position exactly
// once with a confidence multiset of 1..totalPicks.
func (p Prediction) Validate(totalPicks int) error {
	if p.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}
	if totalPicks <= 0 {
		return fmt.Errorf("total picks must be greater than zero")
	}
	if len(p.Picks) > totalPicks {
		return fmt.Errorf("prediction has %d picks, league allows %d", len(p.Picks), totalPicks)
	}

	seenPositions := make(map[int]struct{}, len(p.Picks))
	seenConfidences := make(map[int]struct{}, len(p.Picks))
	for _, pick := range p.Picks {
		if pick.Position < 1 || pick.Position > totalPicks {
			return fmt.Errorf("pick position %d is outside [1,%d]", pick.Position, totalPicks)
		}
		if pick.PlayerID == "" {
			return fmt.Errorf("pick at position %d has no player", pick.Position)
		}
		if pick.Confidence < 1 || pick.Confidence > totalPicks {
			return fmt.Errorf("pick confidence %d is outside [1,%d]", pick.Confidence, totalPicks)
		}
		if _, ok := seenPositions[pick.Position]; ok {
			return fmt.Errorf("position %d is predicted more than once", pick.Position)
		}
		seenPositions[pick.Position] = struct{}{}
		if _, ok := seenConfidences[pick.Confidence]; ok {
			return fmt.Errorf("confidence %d is assigned more than once", pick.Confidence)
		}
		seenConfidences[pick.Confidence] = struct{}{}
	}

	if p.IsComplete && len(p.Picks) != totalPicks {
		return fmt.Errorf("complete prediction must cover all %d positions, has %d", totalPicks, len(p.Picks))
	}

	return nil
}
