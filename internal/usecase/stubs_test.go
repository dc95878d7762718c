package usecase

import (
	"context"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/domain/player"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
)

type stubLeagueRepo struct {
	getByID          func(ctx context.Context, id string) (league.League, bool, error)
	getByInviteCode  func(ctx context.Context, code string) (league.League, bool, error)
	listByMember     func(ctx context.Context, userID string) ([]league.League, error)
	listBySportYear  func(ctx context.Context, sportType string, draftYear int) ([]league.League, error)
	listPublic       func(ctx context.Context, sportType string, draftYear int) ([]league.League, error)
	create           func(ctx context.Context, item league.League) error
	update           func(ctx context.Context, item league.League) error
	deleteFn         func(ctx context.Context, id string) error
}

func (s *stubLeagueRepo) GetByID(ctx context.Context, id string) (league.League, bool, error) {
	if s.getByID == nil {
		return league.League{}, false, nil
	}
	return s.getByID(ctx, id)
}

func (s *stubLeagueRepo) GetByInviteCode(ctx context.Context, code string) (league.League, bool, error) {
	if s.getByInviteCode == nil {
		return league.League{}, false, nil
	}
	return s.getByInviteCode(ctx, code)
}

func (s *stubLeagueRepo) ListByMember(ctx context.Context, userID string) ([]league.League, error) {
	if s.listByMember == nil {
		return nil, nil
	}
	return s.listByMember(ctx, userID)
}

func (s *stubLeagueRepo) ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]league.League, error) {
	if s.listBySportYear == nil {
		return nil, nil
	}
	return s.listBySportYear(ctx, sportType, draftYear)
}

func (s *stubLeagueRepo) ListPublic(ctx context.Context, sportType string, draftYear int) ([]league.League, error) {
	if s.listPublic == nil {
		return nil, nil
	}
	return s.listPublic(ctx, sportType, draftYear)
}

func (s *stubLeagueRepo) Create(ctx context.Context, item league.League) error {
	if s.create == nil {
		return nil
	}
	return s.create(ctx, item)
}

func (s *stubLeagueRepo) Update(ctx context.Context, item league.League) error {
	if s.update == nil {
		return nil
	}
	return s.update(ctx, item)
}

func (s *stubLeagueRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubPredictionRepo struct {
	getByUserAndLeague func(ctx context.Context, userID, leagueID string) (prediction.Prediction, bool, error)
	listByLeague       func(ctx context.Context, leagueID string) ([]prediction.Prediction, error)
	upsert             func(ctx context.Context, item prediction.Prediction) error
	deleteByLeague     func(ctx context.Context, leagueID string) error
}

func (s *stubPredictionRepo) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (prediction.Prediction, bool, error) {
	if s.getByUserAndLeague == nil {
		return prediction.Prediction{}, false, nil
	}
	return s.getByUserAndLeague(ctx, userID, leagueID)
}

func (s *stubPredictionRepo) ListByLeague(ctx context.Context, leagueID string) ([]prediction.Prediction, error) {
	if s.listByLeague == nil {
		return nil, nil
	}
	return s.listByLeague(ctx, leagueID)
}

func (s *stubPredictionRepo) Upsert(ctx context.Context, item prediction.Prediction) error {
	if s.upsert == nil {
		return nil
	}
	return s.upsert(ctx, item)
}

func (s *stubPredictionRepo) DeleteByLeague(ctx context.Context, leagueID string) error {
	if s.deleteByLeague == nil {
		return nil
	}
	return s.deleteByLeague(ctx, leagueID)
}

type stubResultRepo struct {
	listBySportYear func(ctx context.Context, sportType string, draftYear int) ([]draftresult.ActualPick, error)
	upsert          func(ctx context.Context, item draftresult.ActualPick) error
}

func (s *stubResultRepo) ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]draftresult.ActualPick, error) {
	if s.listBySportYear == nil {
		return nil, nil
	}
	return s.listBySportYear(ctx, sportType, draftYear)
}

func (s *stubResultRepo) Upsert(ctx context.Context, item draftresult.ActualPick) error {
	if s.upsert == nil {
		return nil
	}
	return s.upsert(ctx, item)
}

type stubStateRepo struct {
	get    func(ctx context.Context, sportType string, draftYear int) (draftstate.State, bool, error)
	upsert func(ctx context.Context, item draftstate.State) error
}

func (s *stubStateRepo) Get(ctx context.Context, sportType string, draftYear int) (draftstate.State, bool, error) {
	if s.get == nil {
		return draftstate.State{}, false, nil
	}
	return s.get(ctx, sportType, draftYear)
}

func (s *stubStateRepo) Upsert(ctx context.Context, item draftstate.State) error {
	if s.upsert == nil {
		return nil
	}
	return s.upsert(ctx, item)
}

type stubProfileRepo struct {
	getByID   func(ctx context.Context, userID string) (userprofile.Profile, bool, error)
	listByIDs func(ctx context.Context, userIDs []string) ([]userprofile.Profile, error)
	upsert    func(ctx context.Context, item userprofile.Profile) error
}

func (s *stubProfileRepo) GetByID(ctx context.Context, userID string) (userprofile.Profile, bool, error) {
	if s.getByID == nil {
		return userprofile.Profile{}, false, nil
	}
	return s.getByID(ctx, userID)
}

func (s *stubProfileRepo) ListByIDs(ctx context.Context, userIDs []string) ([]userprofile.Profile, error) {
	if s.listByIDs == nil {
		return nil, nil
	}
	return s.listByIDs(ctx, userIDs)
}

func (s *stubProfileRepo) Upsert(ctx context.Context, item userprofile.Profile) error {
	if s.upsert == nil {
		return nil
	}
	return s.upsert(ctx, item)
}

type stubMockDraftRepo struct {
	get             func(ctx context.Context, sportscaster, version, sportType string, draftYear int) (mockdraft.MockDraft, bool, error)
	listBySportYear func(ctx context.Context, sportType string, draftYear int) ([]mockdraft.MockDraft, error)
	upsert          func(ctx context.Context, item mockdraft.MockDraft) error
}

func (s *stubMockDraftRepo) Get(ctx context.Context, sportscaster, version, sportType string, draftYear int) (mockdraft.MockDraft, bool, error) {
	if s.get == nil {
		return mockdraft.MockDraft{}, false, nil
	}
	return s.get(ctx, sportscaster, version, sportType, draftYear)
}

func (s *stubMockDraftRepo) ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]mockdraft.MockDraft, error) {
	if s.listBySportYear == nil {
		return nil, nil
	}
	return s.listBySportYear(ctx, sportType, draftYear)
}

func (s *stubMockDraftRepo) Upsert(ctx context.Context, item mockdraft.MockDraft) error {
	if s.upsert == nil {
		return nil
	}
	return s.upsert(ctx, item)
}

type stubPlayerRepo struct {
	getByID         func(ctx context.Context, id string) (player.Player, bool, error)
	listBySportYear func(ctx context.Context, sportType string, draftYear int) ([]player.Player, error)
	upsertMany      func(ctx context.Context, items []player.Player) error
}

func (s *stubPlayerRepo) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	if s.getByID == nil {
		return player.Player{}, false, nil
	}
	return s.getByID(ctx, id)
}

func (s *stubPlayerRepo) ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]player.Player, error) {
	if s.listBySportYear == nil {
		return nil, nil
	}
	return s.listBySportYear(ctx, sportType, draftYear)
}

func (s *stubPlayerRepo) UpsertMany(ctx context.Context, items []player.Player) error {
	if s.upsertMany == nil {
		return nil
	}
	return s.upsertMany(ctx, items)
}
