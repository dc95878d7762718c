package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
)

type DraftResultRepository struct {
	mu    sync.RWMutex
	items map[string]draftresult.ActualPick
}

func NewDraftResultRepository(picks []draftresult.ActualPick) *DraftResultRepository {
	items := make(map[string]draftresult.ActualPick, len(picks))
	for _, p := range picks {
		items[actualPickKey(p.SportType, p.DraftYear, p.Position)] = p
	}

	return &DraftResultRepository{items: items}
}

func (r *DraftResultRepository) ListBySportYear(_ context.Context, sportType string, draftYear int) ([]draftresult.ActualPick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draftresult.ActualPick, 0)
	for _, p := range r.items {
		if p.SportType == sportType && p.DraftYear == draftYear {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })

	return out, nil
}

func (r *DraftResultRepository) Upsert(_ context.Context, item draftresult.ActualPick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[actualPickKey(item.SportType, item.DraftYear, item.Position)] = item

	return nil
}

func actualPickKey(sportType string, draftYear, position int) string {
	return fmt.Sprintf("%s:%d:%d", sportType, draftYear, position)
}
