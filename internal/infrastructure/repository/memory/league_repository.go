package memory

import (
	"context"
	"sync"

	"github.com/draftpool/confidence-pool/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = cloneLeague(l)
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return cloneLeague(l), true, nil
}

func (r *LeagueRepository) GetByInviteCode(_ context.Context, inviteCode string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		l := r.items[id]
		if l.Settings.InviteCode == inviteCode {
			return cloneLeague(l), true, nil
		}
	}

	return league.League{}, false, nil
}

func (r *LeagueRepository) ListByMember(_ context.Context, userID string) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0)
	for _, id := range r.orders {
		l := r.items[id]
		if l.HasMember(userID) {
			out = append(out, cloneLeague(l))
		}
	}

	return out, nil
}

func (r *LeagueRepository) ListBySportYear(_ context.Context, sportType string, draftYear int) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0)
	for _, id := range r.orders {
		l := r.items[id]
		if l.SportType == sportType && l.DraftYear == draftYear {
			out = append(out, cloneLeague(l))
		}
	}

	return out, nil
}

func (r *LeagueRepository) ListPublic(_ context.Context, sportType string, draftYear int) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0)
	for _, id := range r.orders {
		l := r.items[id]
		if l.Settings.PublicJoin && l.SportType == sportType && l.DraftYear == draftYear {
			out = append(out, cloneLeague(l))
		}
	}

	return out, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = cloneLeague(item)

	return nil
}

func (r *LeagueRepository) Update(_ context.Context, item league.League) error {
	return r.Create(context.Background(), item)
}

func (r *LeagueRepository) Delete(_ context.Context, leagueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[leagueID]; !ok {
		return nil
	}
	delete(r.items, leagueID)
	for i, id := range r.orders {
		if id == leagueID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func cloneLeague(l league.League) league.League {
	out := l
	out.Members = append([]string(nil), l.Members...)
	return out
}
