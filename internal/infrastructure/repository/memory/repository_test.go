package memory

import (
	"context"
	"testing"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
)

func TestLeagueRepositoryLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLeagueRepository(SeedLeagues())

	item, exists, err := repo.GetByID(ctx, LeagueIDWarRoom)
	if err != nil || !exists {
		t.Fatalf("GetByID: exists=%v err=%v", exists, err)
	}

	byCode, exists, err := repo.GetByInviteCode(ctx, item.Settings.InviteCode)
	if err != nil || !exists || byCode.ID != item.ID {
		t.Fatalf("GetByInviteCode: exists=%v err=%v id=%s", exists, err, byCode.ID)
	}

	mine, err := repo.ListByMember(ctx, "user-demo-2")
	if err != nil || len(mine) != 1 {
		t.Fatalf("ListByMember: %v len=%d", err, len(mine))
	}

	public, err := repo.ListPublic(ctx, SeedSportType, SeedDraftYear)
	if err != nil || len(public) != 1 || public[0].ID != LeagueIDOpenPool {
		t.Fatalf("ListPublic: %v %+v", err, public)
	}

	// Mutating a returned copy must not leak into the store.
	item.Members[0] = "mutated"
	fresh, _, _ := repo.GetByID(ctx, LeagueIDWarRoom)
	if fresh.Members[0] == "mutated" {
		t.Fatalf("repository must return defensive copies")
	}

	if err := repo.Delete(ctx, LeagueIDWarRoom); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, exists, _ := repo.GetByID(ctx, LeagueIDWarRoom); exists {
		t.Fatalf("deleted league must be gone")
	}
	all, err := repo.ListBySportYear(ctx, SeedSportType, SeedDraftYear)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListBySportYear after delete: %v len=%d", err, len(all))
	}
}

func TestPredictionRepositoryLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPredictionRepository(SeedPredictions())

	p, exists, err := repo.GetByUserAndLeague(ctx, "user-demo-1", LeagueIDWarRoom)
	if err != nil || !exists {
		t.Fatalf("GetByUserAndLeague: exists=%v err=%v", exists, err)
	}
	if len(p.Picks) != 10 {
		t.Fatalf("expected 10 picks, got %d", len(p.Picks))
	}

	p.UserID = "user-demo-2"
	p.Picks = p.Picks[:3]
	p.IsComplete = false
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	all, err := repo.ListByLeague(ctx, LeagueIDWarRoom)
	if err != nil || len(all) != 2 {
		t.Fatalf("ListByLeague: %v len=%d", err, len(all))
	}

	if err := repo.DeleteByLeague(ctx, LeagueIDWarRoom); err != nil {
		t.Fatalf("DeleteByLeague: %v", err)
	}
	left, _ := repo.ListByLeague(ctx, LeagueIDWarRoom)
	if len(left) != 0 {
		t.Fatalf("expected empty league after cascade, got %d", len(left))
	}
}

func TestDraftResultRepositoryOverwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewDraftResultRepository(nil)

	first := draftresult.ActualPick{Position: 1, PlayerID: "nfl-2026-qb-01", SportType: SeedSportType, DraftYear: SeedDraftYear}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	corrected := first
	corrected.PlayerID = "nfl-2026-edge-01"
	if err := repo.Upsert(ctx, corrected); err != nil {
		t.Fatalf("Upsert corrected: %v", err)
	}

	picks, err := repo.ListBySportYear(ctx, SeedSportType, SeedDraftYear)
	if err != nil || len(picks) != 1 {
		t.Fatalf("ListBySportYear: %v len=%d", err, len(picks))
	}
	if picks[0].PlayerID != "nfl-2026-edge-01" {
		t.Fatalf("re-recorded position must overwrite, got %s", picks[0].PlayerID)
	}
}

func TestSeedDataIsCoherent(t *testing.T) {
	t.Parallel()

	playerIDs := make(map[string]struct{})
	for _, p := range SeedPlayers() {
		playerIDs[p.ID] = struct{}{}
	}
	for _, pred := range SeedPredictions() {
		if err := pred.Validate(10); err != nil {
			t.Fatalf("seed prediction invalid: %v", err)
		}
		for _, pick := range pred.Picks {
			if _, ok := playerIDs[pick.PlayerID]; !ok {
				t.Fatalf("seed prediction references unknown player %s", pick.PlayerID)
			}
		}
	}
	for _, board := range SeedMockDrafts() {
		if err := board.Validate(); err != nil {
			t.Fatalf("seed mock draft invalid: %v", err)
		}
	}
}
