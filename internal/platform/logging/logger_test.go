package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAttachesTraceIDsFromContext(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.InfoContext(context.Background(), "standings refreshed", "league_id", "league-war-room-2026")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["league_id"] != "league-war-room-2026" {
		t.Fatalf("unexpected league_id field: %v", fields["league_id"])
	}
	// A context without an active span must not produce trace fields.
	if _, ok := fields["trace_id"]; ok {
		t.Fatalf("unexpected trace_id field on plain context: %v", fields)
	}
}

func TestZapFieldsHandlesDanglingKeyAndErrors(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Warn("pick rejected", "position", 3, "reason")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["position"] != int64(3) {
		t.Fatalf("unexpected position field: %v", fields["position"])
	}
	if value, ok := fields["reason"]; !ok || value != nil {
		t.Fatalf("dangling key should map to nil, got %v (present=%v)", value, ok)
	}
}

func TestSetMirrorReceivesEveryRecord(t *testing.T) {
	type record struct {
		level Level
		msg   string
		args  []any
	}

	var got []record
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, record{level: level, msg: msg, args: args})
	})
	defer SetMirror(nil)

	logger := NewNop()
	logger.Info("draft state updated", "sport_type", "nfl", "draft_year", 2026)
	logger.ErrorContext(context.Background(), "standings warm failed", "league_id", "league-open-pool-2026")

	if len(got) != 2 {
		t.Fatalf("unexpected mirrored record count: got=%d want=2", len(got))
	}
	if got[0].level != LevelInfo || got[0].msg != "draft state updated" {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].level != LevelError || got[1].msg != "standings warm failed" {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
	if len(got[1].args) != 2 || got[1].args[1] != "league-open-pool-2026" {
		t.Fatalf("unexpected mirrored args: %v", got[1].args)
	}
}

func TestSetMirrorNilRemovesMirror(t *testing.T) {
	calls := 0
	SetMirror(func(context.Context, Level, string, ...any) { calls++ })
	SetMirror(nil)

	NewNop().Info("after removal")

	if calls != 0 {
		t.Fatalf("mirror fired after removal: calls=%d", calls)
	}
}
