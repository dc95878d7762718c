package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
	"github.com/draftpool/confidence-pool/internal/platform/cache"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

func testLeague() league.League {
	return league.League{
		ID:          "lg-1",
		Name:        "War Room",
		SportType:   "nfl",
		DraftYear:   2026,
		OwnerUserID: "alice",
		Members:     []string{"alice", "bob", "carol"},
		Settings:    league.Settings{TotalPicks: 3, InviteCode: "ABCD2345"},
	}
}

func fullBoardPicks(players ...string) []prediction.Pick {
	picks := make([]prediction.Pick, 0, len(players))
	total := len(players)
	for i, id := range players {
		picks = append(picks, prediction.Pick{Position: i + 1, PlayerID: id, Confidence: total - i})
	}
	return picks
}

func TestStandingsServiceRankLeague(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepo{
		getByID: func(_ context.Context, id string) (league.League, bool, error) {
			if id != "lg-1" {
				return league.League{}, false, nil
			}
			return testLeague(), true, nil
		},
	}
	resultRepo := &stubResultRepo{
		listBySportYear: func(context.Context, string, int) ([]draftresult.ActualPick, error) {
			return []draftresult.ActualPick{
				{Position: 1, PlayerID: "qb-prime"},
				{Position: 2, PlayerID: "edge-rush"},
				{Position: 3, PlayerID: "wr-deep"},
			}, nil
		},
	}
	stateRepo := &stubStateRepo{
		get: func(context.Context, string, int) (draftstate.State, bool, error) {
			return draftstate.State{SportType: "nfl", DraftYear: 2026, IsLive: true}, true, nil
		},
	}
	predictionRepo := &stubPredictionRepo{
		listByLeague: func(context.Context, string) ([]prediction.Prediction, error) {
			return []prediction.Prediction{
				// alice: positions 1 and 2 correct for 3+2=5 of 6.
				{UserID: "alice", LeagueID: "lg-1", Picks: fullBoardPicks("qb-prime", "edge-rush", "wr-bust")},
				// bob: positions 1 and 2 correct with mirrored confidence, also 5.
				{UserID: "bob", LeagueID: "lg-1", Picks: []prediction.Pick{
					{Position: 1, PlayerID: "qb-prime", Confidence: 2},
					{Position: 2, PlayerID: "edge-rush", Confidence: 3},
					{Position: 3, PlayerID: "ol-anchor", Confidence: 1},
				}},
				// carol has no prediction on file.
			}, nil
		},
	}
	profileRepo := &stubProfileRepo{
		getByID: func(_ context.Context, userID string) (userprofile.Profile, bool, error) {
			switch userID {
			case "alice":
				return userprofile.Profile{UserID: "alice", DisplayName: "Alice"}, true, nil
			case "bob":
				return userprofile.Profile{}, false, errors.New("profile service down")
			default:
				return userprofile.Profile{}, false, nil
			}
		},
	}

	svc := NewStandingsService(leagueRepo, predictionRepo, resultRepo, stateRepo, profileRepo, nil, logging.NewNop())

	out, err := svc.RankLeague(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("RankLeague: %v", err)
	}
	if len(out.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out.Entries))
	}
	if !out.IsLive || out.IsCompleted {
		t.Fatalf("unexpected draft state flags: live=%v completed=%v", out.IsLive, out.IsCompleted)
	}
	if out.Winners != nil {
		t.Fatalf("winners must be empty before completion, got %d", len(out.Winners))
	}

	// Tied leaders share rank 1; carol takes rank 3 with a zero row.
	first, second, third := out.Entries[0], out.Entries[1], out.Entries[2]
	if first.UserID != "alice" || second.UserID != "bob" {
		t.Fatalf("tied leaders must order by user id: got %s, %s", first.UserID, second.UserID)
	}
	if first.TotalPoints != 5 || second.TotalPoints != 5 {
		t.Fatalf("expected 5 points for both leaders, got %d and %d", first.TotalPoints, second.TotalPoints)
	}
	if first.Rank != 1 || second.Rank != 1 || third.Rank != 3 {
		t.Fatalf("competition ranking broken: got %d, %d, %d", first.Rank, second.Rank, third.Rank)
	}
	if third.UserID != "carol" || third.TotalPoints != 0 || third.HasPrediction {
		t.Fatalf("member without prediction must appear with zero score: %+v", third)
	}
	if first.PossiblePoints != 6 || third.PossiblePoints != 0 {
		t.Fatalf("unexpected possible points: %d, %d", first.PossiblePoints, third.PossiblePoints)
	}

	if first.DisplayName != "Alice" {
		t.Fatalf("expected stored display name, got %q", first.DisplayName)
	}
	if second.DisplayName != "user-bob" {
		t.Fatalf("profile failure must fall back to synthesized name, got %q", second.DisplayName)
	}
	if first.Unverified || second.Unverified {
		t.Fatalf("full confidence boards must not flag unverified")
	}
}

func TestStandingsServiceWinnersOnCompletion(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepo{
		getByID: func(context.Context, string) (league.League, bool, error) {
			return testLeague(), true, nil
		},
	}
	resultRepo := &stubResultRepo{
		listBySportYear: func(context.Context, string, int) ([]draftresult.ActualPick, error) {
			return []draftresult.ActualPick{{Position: 1, PlayerID: "qb-prime"}}, nil
		},
	}
	stateRepo := &stubStateRepo{
		get: func(context.Context, string, int) (draftstate.State, bool, error) {
			return draftstate.State{IsCompleted: true}, true, nil
		},
	}
	predictionRepo := &stubPredictionRepo{
		listByLeague: func(context.Context, string) ([]prediction.Prediction, error) {
			return []prediction.Prediction{
				{UserID: "carol", LeagueID: "lg-1", Picks: fullBoardPicks("qb-prime", "x", "y")},
			}, nil
		},
	}

	svc := NewStandingsService(leagueRepo, predictionRepo, resultRepo, stateRepo, &stubProfileRepo{}, nil, logging.NewNop())

	out, err := svc.RankLeague(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("RankLeague: %v", err)
	}
	if !out.IsCompleted {
		t.Fatalf("expected completed state")
	}
	if len(out.Winners) != 3 {
		t.Fatalf("expected top 3 winners, got %d", len(out.Winners))
	}
	if out.Winners[0].UserID != "carol" || out.Winners[0].TotalPoints != 3 {
		t.Fatalf("unexpected winner: %+v", out.Winners[0])
	}
}

func TestStandingsServiceCachesComputedBoard(t *testing.T) {
	t.Parallel()

	var predictionCalls int
	leagueRepo := &stubLeagueRepo{
		getByID: func(context.Context, string) (league.League, bool, error) {
			return testLeague(), true, nil
		},
	}
	predictionRepo := &stubPredictionRepo{
		listByLeague: func(context.Context, string) ([]prediction.Prediction, error) {
			predictionCalls++
			return nil, nil
		},
	}
	store := cache.NewStore(time.Minute)
	svc := NewStandingsService(leagueRepo, predictionRepo, &stubResultRepo{}, &stubStateRepo{}, &stubProfileRepo{}, store, logging.NewNop())

	ctx := context.Background()
	if _, err := svc.RankLeague(ctx, "lg-1"); err != nil {
		t.Fatalf("RankLeague: %v", err)
	}
	if _, err := svc.RankLeague(ctx, "lg-1"); err != nil {
		t.Fatalf("RankLeague cached: %v", err)
	}
	if predictionCalls != 1 {
		t.Fatalf("second read must come from cache, computed %d times", predictionCalls)
	}

	// Invalidation forces a recompute.
	store.DeletePrefix(ctx, "standings:nfl:2026:")
	if _, err := svc.RankLeague(ctx, "lg-1"); err != nil {
		t.Fatalf("RankLeague after invalidation: %v", err)
	}
	if predictionCalls != 2 {
		t.Fatalf("invalidated board must recompute, computed %d times", predictionCalls)
	}
}

func TestStandingsServiceErrors(t *testing.T) {
	t.Parallel()

	svc := NewStandingsService(&stubLeagueRepo{}, &stubPredictionRepo{}, &stubResultRepo{}, &stubStateRepo{}, &stubProfileRepo{}, nil, logging.NewNop())

	if _, err := svc.RankLeague(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.RankLeague(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
