package scoring

import (
	"reflect"
	"testing"

	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
)

func TestScoreDeclared(t *testing.T) {
	t.Parallel()

	picks := []prediction.Pick{
		{Position: 1, PlayerID: "p1", Confidence: 4},
		{Position: 2, PlayerID: "p2", Confidence: 3},
		{Position: 3, PlayerID: "p3", Confidence: 2},
		{Position: 4, PlayerID: "p4", Confidence: 1},
	}
	actual := map[int]string{1: "p1", 2: "px", 3: "p3", 4: "p4"}

	got := ScoreDeclared(picks, actual)
	if got.TotalPoints != 7 {
		t.Fatalf("unexpected total points: got=%d want=7", got.TotalPoints)
	}
	if got.PossiblePoints != 10 {
		t.Fatalf("unexpected possible points: got=%d want=10", got.PossiblePoints)
	}
	if got.CorrectCount != 3 {
		t.Fatalf("unexpected correct count: got=%d want=3", got.CorrectCount)
	}
	if got.TotalCount != 4 {
		t.Fatalf("unexpected total count: got=%d want=4", got.TotalCount)
	}

	wrong := got.PerPick[1]
	if wrong.IsCorrect || !wrong.HasResult || wrong.Points != 0 {
		t.Fatalf("miss at announced position must be wrong with zero points: %+v", wrong)
	}
}

func TestScoreDeclared_NoResultsYet(t *testing.T) {
	t.Parallel()

	picks := []prediction.Pick{
		{Position: 1, PlayerID: "p1", Confidence: 2},
		{Position: 2, PlayerID: "p2", Confidence: 1},
	}

	got := ScoreDeclared(picks, map[int]string{})
	if got.TotalPoints != 0 || got.CorrectCount != 0 {
		t.Fatalf("unannounced draft must score zero: %+v", got)
	}
	for _, row := range got.PerPick {
		if row.HasResult {
			t.Fatalf("pick at position %d must be pending, not wrong", row.Position)
		}
		if row.Points != 0 {
			t.Fatalf("pending pick must award zero points, got=%d", row.Points)
		}
	}
}

func TestScoreDeclared_Deterministic(t *testing.T) {
	t.Parallel()

	picks := []prediction.Pick{
		{Position: 3, PlayerID: "p3", Confidence: 1},
		{Position: 1, PlayerID: "p1", Confidence: 3},
		{Position: 2, PlayerID: "p9", Confidence: 2},
	}
	actual := map[int]string{1: "p1", 2: "p2", 3: "p3"}

	first := ScoreDeclared(picks, actual)
	for i := 0; i < 50; i++ {
		again := ScoreDeclared(picks, actual)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("score is not deterministic: first=%+v again=%+v", first, again)
		}
	}
}

func TestScoreDeclared_SkipsMalformedPicks(t *testing.T) {
	t.Parallel()

	picks := []prediction.Pick{
		{Position: 1, PlayerID: "p1", Confidence: 2},
		{Position: 0, PlayerID: "p2", Confidence: 1},
		{Position: 2, PlayerID: "p3", Confidence: 0},
	}
	actual := map[int]string{1: "p1", 2: "p3"}

	got := ScoreDeclared(picks, actual)
	if got.SkippedCount != 2 {
		t.Fatalf("unexpected skipped count: got=%d want=2", got.SkippedCount)
	}
	if got.TotalCount != 1 {
		t.Fatalf("malformed picks must not count: got=%d want=1", got.TotalCount)
	}
	if got.PossiblePoints != 2 || got.TotalPoints != 2 {
		t.Fatalf("only the valid pick may contribute: %+v", got)
	}
}

func TestScoreDerived(t *testing.T) {
	t.Parallel()

	picks := []mockdraft.Pick{
		{Position: 1, PlayerID: "p1"},
		{Position: 2, PlayerID: "p2"},
		{Position: 3, PlayerID: "p3"},
	}
	actual := map[int]string{1: "p1", 2: "pX", 3: "p3"}

	got := ScoreDerived(picks, actual)
	if got.TotalPoints != 4 {
		t.Fatalf("unexpected total points: got=%d want=4", got.TotalPoints)
	}
	if got.PossiblePoints != 6 {
		t.Fatalf("unexpected possible points: got=%d want=6", got.PossiblePoints)
	}
	if got.CorrectCount != 2 {
		t.Fatalf("unexpected correct count: got=%d want=2", got.CorrectCount)
	}

	percentage := Percentage(got)
	if percentage < 66.6 || percentage > 66.7 {
		t.Fatalf("unexpected percentage: got=%v", percentage)
	}
	if grade := GradeFor(percentage); grade.Code != "A+" {
		t.Fatalf("unexpected grade: got=%s want=A+", grade.Code)
	}
}

func TestScoreDerived_PossiblePointsIsTriangular(t *testing.T) {
	t.Parallel()

	// Derived possible points must equal N*(N+1)/2 regardless of pick order.
	picks := []mockdraft.Pick{
		{Position: 4, PlayerID: "p4"},
		{Position: 1, PlayerID: "p1"},
		{Position: 3, PlayerID: "p3"},
		{Position: 2, PlayerID: "p2"},
		{Position: 5, PlayerID: "p5"},
	}

	got := ScoreDerived(picks, nil)
	if got.PossiblePoints != 15 {
		t.Fatalf("unexpected possible points: got=%d want=15", got.PossiblePoints)
	}
	if got.TotalPoints > got.PossiblePoints {
		t.Fatalf("total points exceed possible points: %+v", got)
	}
}

func TestPercentage_EmptyBreakdown(t *testing.T) {
	t.Parallel()

	if got := Percentage(Breakdown{}); got != 0 {
		t.Fatalf("empty breakdown percentage must be zero, got=%v", got)
	}
}

func TestGradeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percentage float64
		wantCode   string
	}{
		{100, "S+"},
		{70, "S+"},
		{69.99, "A+"},
		{60, "A+"},
		{50, "A"},
		{40, "B+"},
		{30, "B"},
		{20, "B-"},
		{15, "C+"},
		{10, "C"},
		{9.99, "D"},
		{0, "D"},
	}

	for _, tc := range tests {
		if got := GradeFor(tc.percentage); got.Code != tc.wantCode {
			t.Fatalf("GradeFor(%v): got=%s want=%s", tc.percentage, got.Code, tc.wantCode)
		}
	}
}

func TestIsConfidencePermutation(t *testing.T) {
	t.Parallel()

	valid := []prediction.Pick{
		{Position: 1, PlayerID: "p1", Confidence: 2},
		{Position: 2, PlayerID: "p2", Confidence: 3},
		{Position: 3, PlayerID: "p3", Confidence: 1},
	}
	if !IsConfidencePermutation(valid, 3) {
		t.Fatalf("expected a valid permutation")
	}

	duplicated := []prediction.Pick{
		{Position: 1, PlayerID: "p1", Confidence: 2},
		{Position: 2, PlayerID: "p2", Confidence: 2},
		{Position: 3, PlayerID: "p3", Confidence: 1},
	}
	if IsConfidencePermutation(duplicated, 3) {
		t.Fatalf("duplicate confidence must not pass")
	}

	if IsConfidencePermutation(valid[:2], 3) {
		t.Fatalf("incomplete set must not pass")
	}
}
