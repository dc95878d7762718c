package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/draftpool/confidence-pool/internal/domain/player"
	playermock "github.com/draftpool/confidence-pool/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_ListProspects_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)

	service := NewPlayerService(playerRepo, nil)
	expected := []player.Player{
		{ID: "nfl-2026-qb-01", Name: "Cade Morrison", Position: "QB", Team: "Texas A&M", SportType: "nfl", DraftYear: 2026},
		{ID: "nfl-2026-edge-01", Name: "Dre Calloway", Position: "EDGE", Team: "Clemson", SportType: "nfl", DraftYear: 2026},
	}

	playerRepo.
		On("ListBySportYear", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "nfl", 2026).
		Return(expected, nil).
		Once()

	got, err := service.ListProspects(ctx, "NFL", 2026)
	if err != nil {
		t.Fatalf("list prospects: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected prospect count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID {
		t.Fatalf("unexpected prospect id: got=%s want=%s", got[0].ID, expected[0].ID)
	}
}

func TestPlayerService_GetByID_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)

	service := NewPlayerService(playerRepo, nil)

	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "nfl-2026-missing").
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.GetByID(ctx, "nfl-2026-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
