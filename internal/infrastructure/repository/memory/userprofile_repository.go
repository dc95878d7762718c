package memory

import (
	"context"
	"sync"

	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
)

type UserProfileRepository struct {
	mu    sync.RWMutex
	items map[string]userprofile.Profile
}

func NewUserProfileRepository(profiles []userprofile.Profile) *UserProfileRepository {
	items := make(map[string]userprofile.Profile, len(profiles))
	for _, p := range profiles {
		items[p.UserID] = p
	}

	return &UserProfileRepository{items: items}
}

func (r *UserProfileRepository) GetByID(_ context.Context, userID string) (userprofile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[userID]
	if !ok {
		return userprofile.Profile{}, false, nil
	}

	return p, true, nil
}

func (r *UserProfileRepository) ListByIDs(_ context.Context, userIDs []string) ([]userprofile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]userprofile.Profile, 0, len(userIDs))
	for _, id := range userIDs {
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *UserProfileRepository) Upsert(_ context.Context, item userprofile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.UserID] = item

	return nil
}
