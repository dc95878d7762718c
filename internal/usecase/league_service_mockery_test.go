package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	leaguemock "github.com/draftpool/confidence-pool/internal/mocks/domain/league"
	"github.com/draftpool/confidence-pool/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_GetByID_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, nil, nil, id.NewRandomGenerator(), nil)
	leagueID := "league-war-room-2026"

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{ID: leagueID, Name: "War Room", SportType: "nfl", DraftYear: 2026}, true, nil).
		Once()

	got, err := service.GetByID(ctx, leagueID)
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	if got.ID != leagueID {
		t.Fatalf("unexpected league id: got=%s want=%s", got.ID, leagueID)
	}
	if got.SportType != "nfl" || got.DraftYear != 2026 {
		t.Fatalf("unexpected draft: got=%s/%d want=nfl/2026", got.SportType, got.DraftYear)
	}
}

func TestLeagueService_GetByID_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, nil, nil, id.NewRandomGenerator(), nil)
	leagueID := "missing-league"

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.GetByID(ctx, leagueID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_JoinByInviteCode_AddsMemberUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, nil, nil, id.NewRandomGenerator(), nil)
	existing := league.League{
		ID:          "league-war-room-2026",
		Name:        "War Room",
		SportType:   "nfl",
		DraftYear:   2026,
		OwnerUserID: "user-owner",
		Members:     []string{"user-owner"},
		Settings:    league.Settings{TotalPicks: 32, InviteCode: "WARROOM6"},
	}

	leagueRepo.
		On("GetByInviteCode", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "WARROOM6").
		Return(existing, true, nil).
		Once()
	leagueRepo.
		On("Update", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(v league.League) bool {
			return v.ID == existing.ID && v.HasMember("user-joiner")
		})).
		Return(nil).
		Once()

	got, err := service.JoinByInviteCode(ctx, "user-joiner", "warroom6")
	if err != nil {
		t.Fatalf("join by invite code: %v", err)
	}
	if !got.HasMember("user-joiner") {
		t.Fatalf("expected user-joiner in members, got %v", got.Members)
	}
}

func TestLeagueService_JoinByInviteCode_AlreadyMemberSkipsUpdateUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, nil, nil, id.NewRandomGenerator(), nil)
	existing := league.League{
		ID:          "league-war-room-2026",
		Name:        "War Room",
		SportType:   "nfl",
		DraftYear:   2026,
		OwnerUserID: "user-owner",
		Members:     []string{"user-owner"},
		Settings:    league.Settings{TotalPicks: 32, InviteCode: "WARROOM6"},
	}

	leagueRepo.
		On("GetByInviteCode", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "WARROOM6").
		Return(existing, true, nil).
		Once()

	got, err := service.JoinByInviteCode(ctx, "user-owner", "WARROOM6")
	if err != nil {
		t.Fatalf("join by invite code: %v", err)
	}
	if len(got.Members) != 1 {
		t.Fatalf("expected membership unchanged, got %v", got.Members)
	}
}
