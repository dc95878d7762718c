package scoring

import (
	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
)

// PickResult is the scored outcome of a single predicted slot.
type PickResult struct {
	Position          int
	PredictedPlayerID string
	ActualPlayerID    string
	HasResult         bool
	IsCorrect         bool
	Confidence        int
	Points            int
}

// Breakdown aggregates a full prediction set against the announced results.
// A pick whose slot has no announced result yet scores zero but is reported
// with HasResult=false so callers can render pending and wrong differently.
type Breakdown struct {
	TotalPoints    int
	PossiblePoints int
	CorrectCount   int
	TotalCount     int
	SkippedCount   int
	PerPick        []PickResult
}

// ScoreDeclared scores a user prediction using the confidence values the
// predictor assigned. Picks with a non-positive position or confidence are
// malformed records; they are skipped rather than failing the whole set, and
// contribute to no total.
func ScoreDeclared(picks []prediction.Pick, actual map[int]string) Breakdown {
	out := Breakdown{PerPick: make([]PickResult, 0, len(picks))}
	for _, pick := range picks {
		if pick.Position < 1 || pick.Confidence < 1 {
			out.SkippedCount++
			continue
		}
		out.PerPick = append(out.PerPick, scorePick(pick.Position, pick.PlayerID, pick.Confidence, actual, &out))
	}
	out.TotalCount = len(out.PerPick)
	return out
}

// ScoreDerived scores a mock draft. Confidence is derived from position as
// totalPicks - position + 1, so the earliest slot carries the most weight and
// the derived values form a 1..totalPicks permutation by construction.
func ScoreDerived(picks []mockdraft.Pick, actual map[int]string) Breakdown {
	totalPicks := len(picks)
	out := Breakdown{PerPick: make([]PickResult, 0, totalPicks)}
	for _, pick := range picks {
		if pick.Position < 1 {
			out.SkippedCount++
			continue
		}
		confidence := totalPicks - pick.Position + 1
		if confidence < 1 {
			out.SkippedCount++
			continue
		}
		out.PerPick = append(out.PerPick, scorePick(pick.Position, pick.PlayerID, confidence, actual, &out))
	}
	out.TotalCount = len(out.PerPick)
	return out
}

// scorePick applies the single correctness rule shared by both modes: exact
// playerId identity at the predicted position, no partial credit.
func scorePick(position int, playerID string, confidence int, actual map[int]string, agg *Breakdown) PickResult {
	result := PickResult{
		Position:          position,
		PredictedPlayerID: playerID,
		Confidence:        confidence,
	}
	agg.PossiblePoints += confidence

	actualPlayerID, announced := actual[position]
	if !announced {
		return result
	}

	result.ActualPlayerID = actualPlayerID
	result.HasResult = true
	if actualPlayerID == playerID {
		result.IsCorrect = true
		result.Points = confidence
		agg.TotalPoints += confidence
		agg.CorrectCount++
	}

	return result
}

// Percentage converts a breakdown into an accuracy percentage. An empty pick
// set (possible points of zero) is defined as zero percent.
func Percentage(b Breakdown) float64 {
	if b.PossiblePoints == 0 {
		return 0
	}
	return float64(b.TotalPoints) / float64(b.PossiblePoints) * 100
}

// IsConfidencePermutation reports whether the declared confidence values form
// a true 1..totalPicks permutation. Standings still score predictions that
// fail this check; they are just flagged as unverified.
func IsConfidencePermutation(picks []prediction.Pick, totalPicks int) bool {
	if len(picks) != totalPicks {
		return false
	}
	seen := make(map[int]struct{}, totalPicks)
	for _, pick := range picks {
		if pick.Confidence < 1 || pick.Confidence > totalPicks {
			return false
		}
		if _, dup := seen[pick.Confidence]; dup {
			return false
		}
		seen[pick.Confidence] = struct{}{}
	}
	return true
}
