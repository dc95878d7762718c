package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/draftpool/confidence-pool/internal/domain/player"
)

func TestPlayerServiceListProspects(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepo{
		listBySportYear: func(ctx context.Context, sportType string, draftYear int) ([]player.Player, error) {
			if sportType != "nfl" || draftYear != 2026 {
				t.Fatalf("unexpected query: %s %d", sportType, draftYear)
			}
			return []player.Player{{ID: "nfl-2026-qb-01", Name: "Arch Calloway"}}, nil
		},
	}

	svc := NewPlayerService(repo, nil)

	items, err := svc.ListProspects(context.Background(), " NFL ", 2026)
	if err != nil {
		t.Fatalf("ListProspects: %v", err)
	}
	if len(items) != 1 || items[0].ID != "nfl-2026-qb-01" {
		t.Fatalf("unexpected prospects: %+v", items)
	}

	if _, err := svc.ListProspects(context.Background(), "", 2026); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerServiceGetByID(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepo{
		getByID: func(ctx context.Context, id string) (player.Player, bool, error) {
			if id == "nfl-2026-qb-01" {
				return player.Player{ID: id, Name: "Arch Calloway"}, true, nil
			}
			return player.Player{}, false, nil
		},
	}

	svc := NewPlayerService(repo, nil)

	item, err := svc.GetByID(context.Background(), "nfl-2026-qb-01")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if item.Name != "Arch Calloway" {
		t.Fatalf("unexpected player: %+v", item)
	}

	if _, err := svc.GetByID(context.Background(), "nfl-2026-qb-99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
