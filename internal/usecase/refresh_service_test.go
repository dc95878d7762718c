package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/platform/cache"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

func TestRefreshServiceWarmStandings(t *testing.T) {
	t.Parallel()

	leagues := make([]league.League, 0, 5)
	for _, id := range []string{"lg-a", "lg-b", "lg-c", "lg-d", "lg-broken"} {
		item := testLeague()
		item.ID = id
		leagues = append(leagues, item)
	}

	leagueRepo := &stubLeagueRepo{
		listBySportYear: func(context.Context, string, int) ([]league.League, error) {
			return leagues, nil
		},
		getByID: func(_ context.Context, id string) (league.League, bool, error) {
			if id == "lg-broken" {
				return league.League{}, false, errors.New("store offline")
			}
			for _, item := range leagues {
				if item.ID == id {
					return item, true, nil
				}
			}
			return league.League{}, false, nil
		},
	}

	store := cache.NewStore(time.Minute)
	standings := NewStandingsService(leagueRepo, &stubPredictionRepo{}, &stubResultRepo{}, &stubStateRepo{}, &stubProfileRepo{}, store, logging.NewNop())
	svc := NewRefreshService(leagueRepo, standings, logging.NewNop())

	out, err := svc.WarmStandings(context.Background(), RefreshInput{SportType: "NFL", DraftYear: 2026, MaxWorkers: 3})
	if err != nil {
		t.Fatalf("WarmStandings: %v", err)
	}
	if out.LeagueCount != 5 || out.SuccessCount != 4 || out.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", out)
	}
	if out.WorkerCount != 3 {
		t.Fatalf("expected 3 workers, got %d", out.WorkerCount)
	}
	if len(out.Leagues) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(out.Leagues))
	}

	// Warm entries are now served from cache.
	ctx := context.Background()
	for _, id := range []string{"lg-a", "lg-b", "lg-c", "lg-d"} {
		if _, ok := store.Get(ctx, StandingsCacheKey("nfl", 2026, id)); !ok {
			t.Fatalf("expected warm cache entry for %s", id)
		}
	}

	if _, err := svc.WarmStandings(context.Background(), RefreshInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRefreshServiceWarmStandingsEmpty(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepo{}
	standings := NewStandingsService(leagueRepo, &stubPredictionRepo{}, &stubResultRepo{}, &stubStateRepo{}, &stubProfileRepo{}, nil, logging.NewNop())
	svc := NewRefreshService(leagueRepo, standings, logging.NewNop())

	out, err := svc.WarmStandings(context.Background(), RefreshInput{SportType: "nfl", DraftYear: 2026})
	if err != nil {
		t.Fatalf("WarmStandings: %v", err)
	}
	if out.LeagueCount != 0 || len(out.Leagues) != 0 {
		t.Fatalf("expected empty sweep, got %+v", out)
	}
}
