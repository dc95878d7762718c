package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

func TestDashboardServiceForUser(t *testing.T) {
	t.Parallel()

	first := testLeague()
	second := testLeague()
	second.ID = "lg-2"
	second.Name = "Second Screen"
	broken := testLeague()
	broken.ID = "lg-broken"

	leagueRepo := &stubLeagueRepo{
		listByMember: func(context.Context, string) ([]league.League, error) {
			return []league.League{first, second, broken}, nil
		},
		getByID: func(_ context.Context, id string) (league.League, bool, error) {
			switch id {
			case "lg-1":
				return first, true, nil
			case "lg-2":
				return second, true, nil
			default:
				return league.League{}, false, errors.New("store offline")
			}
		},
	}
	resultRepo := &stubResultRepo{
		listBySportYear: func(context.Context, string, int) ([]draftresult.ActualPick, error) {
			return []draftresult.ActualPick{{Position: 1, PlayerID: "qb-prime"}}, nil
		},
	}
	predictionRepo := &stubPredictionRepo{
		listByLeague: func(_ context.Context, leagueID string) ([]prediction.Prediction, error) {
			if leagueID != "lg-1" {
				return nil, nil
			}
			return []prediction.Prediction{
				{UserID: "bob", LeagueID: leagueID, Picks: fullBoardPicks("qb-prime", "x", "y")},
				{UserID: "alice", LeagueID: leagueID, Picks: fullBoardPicks("wrong", "x", "y")},
			}, nil
		},
	}
	standings := NewStandingsService(leagueRepo, predictionRepo, resultRepo, &stubStateRepo{}, &stubProfileRepo{}, nil, logging.NewNop())
	svc := NewDashboardService(leagueRepo, standings, logging.NewNop())

	out, err := svc.ForUser(context.Background(), "bob")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(out.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out.Entries))
	}

	lead := out.Entries[0]
	if lead.League.ID != "lg-1" || lead.Rank != 1 || lead.TotalPoints != 3 || !lead.HasPrediction {
		t.Fatalf("unexpected first entry: %+v", lead)
	}
	if lead.MemberCount != 3 {
		t.Fatalf("expected member count 3, got %d", lead.MemberCount)
	}

	empty := out.Entries[1]
	if empty.TotalPoints != 0 || empty.HasPrediction {
		t.Fatalf("league without predictions must report a zero row: %+v", empty)
	}

	// lg-broken fails standings but still shows up.
	degraded := out.Entries[2]
	if degraded.League.ID != "lg-broken" || degraded.Rank != 0 {
		t.Fatalf("broken league must degrade, not drop: %+v", degraded)
	}

	if _, err := svc.ForUser(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
