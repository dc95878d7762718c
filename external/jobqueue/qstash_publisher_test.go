package jobqueue

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

func TestQStashPublisherEnqueueStandingsRefresh(t *testing.T) {
	t.Parallel()

	var captured *http.Request
	var capturedBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		raw, _ := io.ReadAll(r.Body)
		capturedBody = string(raw)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:          server.URL,
		Token:            "qstash-token",
		TargetBaseURL:    "https://pool.example.com",
		Retries:          3,
		InternalJobToken: "job-token",
	}, logging.NewNop())

	err := publisher.EnqueueStandingsRefresh(context.Background(), "nfl", 2026, 30*time.Second)
	if err != nil {
		t.Fatalf("EnqueueStandingsRefresh: %v", err)
	}

	if captured == nil {
		t.Fatalf("no request received")
	}
	wantPath := "/v2/publish/https://pool.example.com/internal/jobs/refresh-standings"
	if captured.URL.Path != wantPath {
		t.Fatalf("unexpected publish path %q", captured.URL.Path)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer qstash-token" {
		t.Fatalf("unexpected authorization %q", got)
	}
	if got := captured.Header.Get("Upstash-Delay"); got != "30s" {
		t.Fatalf("unexpected delay header %q", got)
	}
	if got := captured.Header.Get("Upstash-Retries"); got != "3" {
		t.Fatalf("unexpected retries header %q", got)
	}
	if got := captured.Header.Get("Upstash-Deduplication-Id"); got != "refresh-standings-nfl-2026" {
		t.Fatalf("unexpected deduplication id %q", got)
	}
	if got := captured.Header.Get("Upstash-Forward-X-Internal-Job-Token"); got != "job-token" {
		t.Fatalf("unexpected forwarded job token %q", got)
	}
	if !strings.Contains(capturedBody, `"sportType":"nfl"`) || !strings.Contains(capturedBody, `"draftYear":2026`) {
		t.Fatalf("unexpected body %q", capturedBody)
	}
}

func TestQStashPublisherRejectsBadConfig(t *testing.T) {
	t.Parallel()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       "ftp://queue.example.com",
		TargetBaseURL: "https://pool.example.com",
	}, logging.NewNop())

	if err := publisher.Enqueue(context.Background(), "/internal/jobs/refresh-standings", nil, 0, ""); err == nil {
		t.Fatalf("expected error for non-http base url")
	}

	publisher = NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       "https://queue.example.com",
		TargetBaseURL: "https://pool.example.com",
	}, logging.NewNop())
	if err := publisher.Enqueue(context.Background(), "   ", nil, 0, ""); err == nil {
		t.Fatalf("expected error for empty job path")
	}
}

func TestNormalizeDelay(t *testing.T) {
	t.Parallel()

	if got := normalizeDelay(0); got != "0s" {
		t.Fatalf("expected 0s, got %s", got)
	}
	if got := normalizeDelay(90 * time.Second); got != "90s" {
		t.Fatalf("expected 90s, got %s", got)
	}
	if got := normalizeDelay(-time.Second); got != "0s" {
		t.Fatalf("expected 0s for negative delay, got %s", got)
	}
}
