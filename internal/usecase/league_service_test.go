package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
	"github.com/draftpool/confidence-pool/internal/platform/id"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

func newLeagueService(leagueRepo *stubLeagueRepo, predictionRepo *stubPredictionRepo, profileRepo *stubProfileRepo) *LeagueService {
	svc := NewLeagueService(leagueRepo, predictionRepo, profileRepo, id.NewRandomGenerator(), logging.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestLeagueServiceCreate(t *testing.T) {
	t.Parallel()

	var stored league.League
	leagueRepo := &stubLeagueRepo{
		create: func(_ context.Context, item league.League) error {
			stored = item
			return nil
		},
	}
	svc := newLeagueService(leagueRepo, &stubPredictionRepo{}, &stubProfileRepo{})

	out, err := svc.Create(context.Background(), CreateLeagueInput{
		Name:      "War Room",
		SportType: "NFL",
		DraftYear: 2026,
		OwnerID:   "alice",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.ID == "" {
		t.Fatalf("expected generated league id")
	}
	if out.SportType != "nfl" {
		t.Fatalf("sport type must be normalized, got %q", out.SportType)
	}
	if out.Settings.TotalPicks != defaultTotalPicks {
		t.Fatalf("expected default total picks, got %d", out.Settings.TotalPicks)
	}
	if len(out.Settings.InviteCode) != inviteCodeLength {
		t.Fatalf("unexpected invite code %q", out.Settings.InviteCode)
	}
	for _, r := range out.Settings.InviteCode {
		if !strings.ContainsRune(inviteCodeAlphabet, r) {
			t.Fatalf("invite code %q uses character outside alphabet", out.Settings.InviteCode)
		}
	}
	if !out.HasMember("alice") || out.OwnerUserID != "alice" {
		t.Fatalf("owner must be the first member: %+v", out)
	}
	if stored.ID != out.ID {
		t.Fatalf("created league was not persisted")
	}

	if _, err := svc.Create(context.Background(), CreateLeagueInput{SportType: "nfl", DraftYear: 2026, OwnerID: "alice"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
}

func TestLeagueServiceJoin(t *testing.T) {
	t.Parallel()

	stored := testLeague()
	stored.Settings.PublicJoin = false
	leagueRepo := &stubLeagueRepo{
		getByID: func(context.Context, string) (league.League, bool, error) {
			return stored, true, nil
		},
		getByInviteCode: func(_ context.Context, code string) (league.League, bool, error) {
			if code != stored.Settings.InviteCode {
				return league.League{}, false, nil
			}
			return stored, true, nil
		},
		update: func(_ context.Context, item league.League) error {
			stored = item
			return nil
		},
	}
	svc := newLeagueService(leagueRepo, &stubPredictionRepo{}, &stubProfileRepo{})

	out, err := svc.JoinByInviteCode(context.Background(), "dave", " abcd2345 ")
	if err != nil {
		t.Fatalf("JoinByInviteCode: %v", err)
	}
	if !out.HasMember("dave") {
		t.Fatalf("dave must be a member after joining")
	}

	// Joining again keeps the roster unchanged.
	again, err := svc.JoinByInviteCode(context.Background(), "dave", "ABCD2345")
	if err != nil {
		t.Fatalf("repeat join: %v", err)
	}
	if len(again.Members) != len(out.Members) {
		t.Fatalf("repeat join must be a no-op: %v vs %v", again.Members, out.Members)
	}

	if _, err := svc.JoinByInviteCode(context.Background(), "erin", "WRONG111"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for bad code, got %v", err)
	}
	if _, err := svc.JoinPublic(context.Background(), "erin", "lg-1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for private league, got %v", err)
	}

	stored.Settings.PublicJoin = true
	joined, err := svc.JoinPublic(context.Background(), "erin", "lg-1")
	if err != nil {
		t.Fatalf("JoinPublic: %v", err)
	}
	if !joined.HasMember("erin") {
		t.Fatalf("erin must be a member after public join")
	}
}

func TestLeagueServiceMembers(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepo{
		getByID: func(context.Context, string) (league.League, bool, error) {
			return testLeague(), true, nil
		},
	}
	profileRepo := &stubProfileRepo{
		listByIDs: func(context.Context, []string) ([]userprofile.Profile, error) {
			return []userprofile.Profile{{UserID: "alice", DisplayName: "Alice"}}, nil
		},
	}
	svc := newLeagueService(leagueRepo, &stubPredictionRepo{}, profileRepo)

	members, err := svc.Members(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	if members[0].DisplayName != "Alice" || !members[0].IsOwner {
		t.Fatalf("unexpected owner row: %+v", members[0])
	}
	if members[1].DisplayName != "user-bob" {
		t.Fatalf("missing profile must synthesize a name, got %q", members[1].DisplayName)
	}
}

func TestLeagueServiceDelete(t *testing.T) {
	t.Parallel()

	var deletedLeague, deletedPredictions string
	leagueRepo := &stubLeagueRepo{
		getByID: func(context.Context, string) (league.League, bool, error) {
			return testLeague(), true, nil
		},
		deleteFn: func(_ context.Context, id string) error {
			deletedLeague = id
			return nil
		},
	}
	predictionRepo := &stubPredictionRepo{
		deleteByLeague: func(_ context.Context, leagueID string) error {
			deletedPredictions = leagueID
			return nil
		},
	}
	svc := newLeagueService(leagueRepo, predictionRepo, &stubProfileRepo{})

	if err := svc.Delete(context.Background(), "bob", "lg-1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("non-owner delete must fail, got %v", err)
	}
	if err := svc.Delete(context.Background(), "alice", "lg-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deletedLeague != "lg-1" || deletedPredictions != "lg-1" {
		t.Fatalf("delete must cascade to predictions: league=%q predictions=%q", deletedLeague, deletedPredictions)
	}
}
