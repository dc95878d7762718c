package memory

import (
	"context"
	"sync"

	"github.com/draftpool/confidence-pool/internal/domain/prediction"
)

type PredictionRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.Prediction
}

func NewPredictionRepository(predictions []prediction.Prediction) *PredictionRepository {
	items := make(map[string]prediction.Prediction, len(predictions))
	for _, p := range predictions {
		items[prediction.Key(p.LeagueID, p.UserID)] = clonePrediction(p)
	}

	return &PredictionRepository{items: items}
}

func (r *PredictionRepository) GetByUserAndLeague(_ context.Context, userID, leagueID string) (prediction.Prediction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[prediction.Key(leagueID, userID)]
	if !ok {
		return prediction.Prediction{}, false, nil
	}

	return clonePrediction(p), true, nil
}

func (r *PredictionRepository) ListByLeague(_ context.Context, leagueID string) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, p := range r.items {
		if p.LeagueID == leagueID {
			out = append(out, clonePrediction(p))
		}
	}

	return out, nil
}

func (r *PredictionRepository) Upsert(_ context.Context, item prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[prediction.Key(item.LeagueID, item.UserID)] = clonePrediction(item)

	return nil
}

func (r *PredictionRepository) DeleteByLeague(_ context.Context, leagueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, p := range r.items {
		if p.LeagueID == leagueID {
			delete(r.items, key)
		}
	}

	return nil
}

func clonePrediction(p prediction.Prediction) prediction.Prediction {
	out := p
	out.Picks = append([]prediction.Pick(nil), p.Picks...)
	return out
}
