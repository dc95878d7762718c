package draftwire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

func newTestClient(baseURL string, maxRetries int) *Client {
	return NewClient(ClientConfig{
		BaseURL:    baseURL,
		Token:      "test-token",
		MaxRetries: maxRetries,
		Logger:     logging.NewNop(),
	})
}

func TestClientFetchProspects(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nfl/2026/prospects" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prospects":[
			{"id":"qb-prime","name":"Cade Morrison","position":"QB","team":"Texas A&M"},
			{"id":"","name":"No ID","position":"WR","team":"Nowhere"},
			{"id":"edge-rush","name":"DeShawn Barker","position":"EDGE","team":"Ohio State"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	prospects, err := client.FetchProspects(context.Background(), "nfl", 2026)
	if err != nil {
		t.Fatalf("FetchProspects: %v", err)
	}
	if len(prospects) != 2 {
		t.Fatalf("rows without an id must be dropped, got %d prospects", len(prospects))
	}
	if prospects[0].ID != "qb-prime" || prospects[0].SportType != "nfl" || prospects[0].DraftYear != 2026 {
		t.Fatalf("unexpected prospect: %+v", prospects[0])
	}
}

func TestClientFetchMockDrafts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/nfl/2026/mock-drafts":
			_, _ = w.Write([]byte(`{"boards":[
				{"sportscaster":"kiper","version":"1.0","updatedAt":"2026-04-01T00:00:00Z"},
				{"sportscaster":"jeremiah","version":"3.0","updatedAt":"2026-04-10T00:00:00Z"}
			]}`))
		case "/nfl/2026/mock-drafts/kiper/1.0":
			_, _ = w.Write([]byte(`{"picks":[{"position":1,"playerId":"qb-prime"}]}`))
		case "/nfl/2026/mock-drafts/jeremiah/3.0":
			_, _ = w.Write([]byte(`{"picks":[{"position":1,"playerId":"edge-rush"},{"position":2,"playerId":"qb-prime"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	boards, err := client.FetchMockDrafts(context.Background(), "nfl", 2026)
	if err != nil {
		t.Fatalf("FetchMockDrafts: %v", err)
	}
	if len(boards) != 2 {
		t.Fatalf("expected 2 boards, got %d", len(boards))
	}

	byCaster := make(map[string]int)
	for _, board := range boards {
		byCaster[board.Sportscaster] = len(board.Picks)
		if board.SportType != "nfl" || board.DraftYear != 2026 {
			t.Fatalf("board missing draft identity: %+v", board)
		}
	}
	if byCaster["kiper"] != 1 || byCaster["jeremiah"] != 2 {
		t.Fatalf("unexpected pick counts: %v", byCaster)
	}
}

func TestClientRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prospects":[{"id":"qb-prime","name":"Cade Morrison","position":"QB","team":"Texas A&M"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)

	prospects, err := client.FetchProspects(context.Background(), "nfl", 2026)
	if err != nil {
		t.Fatalf("FetchProspects after retry: %v", err)
	}
	if len(prospects) != 1 {
		t.Fatalf("expected 1 prospect, got %d", len(prospects))
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls (one retry), got %d", calls.Load())
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)

	if _, err := client.FetchProspects(context.Background(), "nfl", 2026); err == nil {
		t.Fatalf("expected error for 401 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("4xx responses must not be retried, got %d calls", calls.Load())
	}
}
