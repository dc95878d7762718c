package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
)

type MockDraftRepository struct {
	mu    sync.RWMutex
	items map[string]mockdraft.MockDraft
}

func NewMockDraftRepository(boards []mockdraft.MockDraft) *MockDraftRepository {
	items := make(map[string]mockdraft.MockDraft, len(boards))
	for _, b := range boards {
		items[mockDraftKey(b.Sportscaster, b.Version, b.SportType, b.DraftYear)] = cloneMockDraft(b)
	}

	return &MockDraftRepository{items: items}
}

func (r *MockDraftRepository) Get(_ context.Context, sportscaster, version, sportType string, draftYear int) (mockdraft.MockDraft, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[mockDraftKey(sportscaster, version, sportType, draftYear)]
	if !ok {
		return mockdraft.MockDraft{}, false, nil
	}

	return cloneMockDraft(b), true, nil
}

func (r *MockDraftRepository) ListBySportYear(_ context.Context, sportType string, draftYear int) ([]mockdraft.MockDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]mockdraft.MockDraft, 0)
	for _, b := range r.items {
		if b.SportType == sportType && b.DraftYear == draftYear {
			out = append(out, cloneMockDraft(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sportscaster != out[j].Sportscaster {
			return out[i].Sportscaster < out[j].Sportscaster
		}
		return out[i].Version < out[j].Version
	})

	return out, nil
}

func (r *MockDraftRepository) Upsert(_ context.Context, item mockdraft.MockDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[mockDraftKey(item.Sportscaster, item.Version, item.SportType, item.DraftYear)] = cloneMockDraft(item)

	return nil
}

func mockDraftKey(sportscaster, version, sportType string, draftYear int) string {
	return fmt.Sprintf("%s:%s:%s:%d", sportscaster, version, sportType, draftYear)
}

func cloneMockDraft(b mockdraft.MockDraft) mockdraft.MockDraft {
	out := b
	out.Picks = append([]mockdraft.Pick(nil), b.Picks...)
	return out
}
