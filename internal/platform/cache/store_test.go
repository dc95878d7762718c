package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errUnexpectedValue = errors.New("unexpected value")

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	store.Set(ctx, "standings:nfl:2026:league-1", 1)
	store.Set(ctx, "standings:nfl:2026:league-2", 2)
	store.Set(ctx, "standings:nba:2026:league-3", 3)

	store.DeletePrefix(ctx, "standings:nfl:2026:")

	if _, ok := store.Get(ctx, "standings:nfl:2026:league-1"); ok {
		t.Fatalf("expected nfl entry to be dropped")
	}
	if _, ok := store.Get(ctx, "standings:nba:2026:league-3"); !ok {
		t.Fatalf("expected nba entry to survive")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)
	store.Set(ctx, "key", "value")

	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatalf("expected fresh entry to be present")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatalf("expected entry to expire")
	}
}
