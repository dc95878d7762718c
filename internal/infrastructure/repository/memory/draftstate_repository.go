package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
)

type DraftStateRepository struct {
	mu    sync.RWMutex
	items map[string]draftstate.State
}

func NewDraftStateRepository(states []draftstate.State) *DraftStateRepository {
	items := make(map[string]draftstate.State, len(states))
	for _, s := range states {
		items[draftKey(s.SportType, s.DraftYear)] = s
	}

	return &DraftStateRepository{items: items}
}

func (r *DraftStateRepository) Get(_ context.Context, sportType string, draftYear int) (draftstate.State, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[draftKey(sportType, draftYear)]
	if !ok {
		return draftstate.State{}, false, nil
	}

	return s, true, nil
}

func (r *DraftStateRepository) Upsert(_ context.Context, item draftstate.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[draftKey(item.SportType, item.DraftYear)] = item

	return nil
}

func draftKey(sportType string, draftYear int) string {
	return fmt.Sprintf("%s:%d", sportType, draftYear)
}
