package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
	"github.com/draftpool/confidence-pool/internal/platform/cache"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

// StandingsCacheKey is the cache entry for one league's leaderboard.
func StandingsCacheKey(sportType string, draftYear int, leagueID string) string {
	return fmt.Sprintf("standings:%s:%d:%s", sportType, draftYear, leagueID)
}

func standingsCachePrefix(sportType string, draftYear int) string {
	return fmt.Sprintf("standings:%s:%d:", sportType, draftYear)
}

// ImportRun summarizes one batch of recorded results.
type ImportRun struct {
	RunID       string
	Recorded    int
	Skipped     int
	SportType   string
	DraftYear   int
	CompletedAt time.Time
}

// RefreshEnqueuer schedules a standings refresh sweep for one draft. The
// queue calls back on the internal refresh endpoint.
type RefreshEnqueuer interface {
	EnqueueStandingsRefresh(ctx context.Context, sportType string, draftYear int, delay time.Duration) error
}

const refreshEnqueueDelay = 15 * time.Second

// OracleService is the admin write path for announced picks and draft state.
// Every write invalidates the cached standings for the affected draft.
type OracleService struct {
	resultRepo   draftresult.Repository
	stateRepo    draftstate.Repository
	cache        *cache.Store
	refreshQueue RefreshEnqueuer
	logger       *logging.Logger
	now          func() time.Time
}

func NewOracleService(
	resultRepo draftresult.Repository,
	stateRepo draftstate.Repository,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *OracleService {
	if logger == nil {
		logger = logging.Default()
	}

	return &OracleService{
		resultRepo: resultRepo,
		stateRepo:  stateRepo,
		cache:      cacheStore,
		logger:     logger,
		now:        time.Now,
	}
}

// SetRefreshQueue installs the queue used to schedule standings sweeps after
// result writes. Without one, writes only invalidate the local cache.
func (s *OracleService) SetRefreshQueue(queue RefreshEnqueuer) {
	s.refreshQueue = queue
}

// RecordActualPick stores one announced pick. Re-recording a position
// overwrites it, which covers trades and announcement corrections.
func (s *OracleService) RecordActualPick(ctx context.Context, pick draftresult.ActualPick) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.OracleService.RecordActualPick")
	defer span.End()

	pick.SportType = strings.ToLower(strings.TrimSpace(pick.SportType))
	pick.PlayerID = strings.TrimSpace(pick.PlayerID)
	if pick.RecordedAt.IsZero() {
		pick.RecordedAt = s.now().UTC()
	}
	if err := pick.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.resultRepo.Upsert(ctx, pick); err != nil {
		return fmt.Errorf("record actual pick: %w", err)
	}

	s.invalidateStandings(ctx, pick.SportType, pick.DraftYear)
	s.logger.InfoContext(ctx, "actual pick recorded",
		"sport_type", pick.SportType,
		"draft_year", pick.DraftYear,
		"position", pick.Position,
		"player_id", pick.PlayerID,
	)

	return nil
}

// ImportResults records a batch of announced picks under one run id.
// Malformed rows are skipped and counted rather than failing the batch.
func (s *OracleService) ImportResults(ctx context.Context, sportType string, draftYear int, picks []draftresult.ActualPick) (ImportRun, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OracleService.ImportResults")
	defer span.End()

	sportType = strings.ToLower(strings.TrimSpace(sportType))
	if sportType == "" || draftYear <= 0 {
		return ImportRun{}, fmt.Errorf("%w: sport type and draft year are required", ErrInvalidInput)
	}

	run := ImportRun{
		RunID:     uuid.NewString(),
		SportType: sportType,
		DraftYear: draftYear,
	}
	recordedAt := s.now().UTC()

	for _, pick := range picks {
		pick.SportType = sportType
		pick.DraftYear = draftYear
		pick.PlayerID = strings.TrimSpace(pick.PlayerID)
		pick.RecordedAt = recordedAt
		if err := pick.Validate(); err != nil {
			run.Skipped++
			s.logger.WarnContext(ctx, "skipping malformed result row",
				"run_id", run.RunID,
				"position", pick.Position,
				"error", err,
			)
			continue
		}
		if err := s.resultRepo.Upsert(ctx, pick); err != nil {
			return run, fmt.Errorf("import result at position %d: %w", pick.Position, err)
		}
		run.Recorded++
	}
	run.CompletedAt = recordedAt

	if run.Recorded > 0 {
		s.invalidateStandings(ctx, sportType, draftYear)
	}
	s.logger.InfoContext(ctx, "result import finished",
		"run_id", run.RunID,
		"sport_type", sportType,
		"draft_year", draftYear,
		"recorded", run.Recorded,
		"skipped", run.Skipped,
	)

	return run, nil
}

// ListResults returns every announced pick for one draft in slot order.
func (s *OracleService) ListResults(ctx context.Context, sportType string, draftYear int) ([]draftresult.ActualPick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OracleService.ListResults")
	defer span.End()

	sportType = strings.ToLower(strings.TrimSpace(sportType))
	if sportType == "" || draftYear <= 0 {
		return nil, fmt.Errorf("%w: sport type and draft year are required", ErrInvalidInput)
	}

	return s.resultRepo.ListBySportYear(ctx, sportType, draftYear)
}

// SetDraftState flips the live and completed flags for one draft.
func (s *OracleService) SetDraftState(ctx context.Context, state draftstate.State) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.OracleService.SetDraftState")
	defer span.End()

	state.SportType = strings.ToLower(strings.TrimSpace(state.SportType))
	if state.SportType == "" || state.DraftYear <= 0 {
		return fmt.Errorf("%w: sport type and draft year are required", ErrInvalidInput)
	}
	if state.IsCompleted {
		// A finished draft is no longer live.
		state.IsLive = false
	}
	state.UpdatedAt = s.now().UTC()

	if err := s.stateRepo.Upsert(ctx, state); err != nil {
		return fmt.Errorf("set draft state: %w", err)
	}

	s.invalidateStandings(ctx, state.SportType, state.DraftYear)
	s.logger.InfoContext(ctx, "draft state updated",
		"sport_type", state.SportType,
		"draft_year", state.DraftYear,
		"is_live", state.IsLive,
		"is_completed", state.IsCompleted,
	)

	return nil
}

func (s *OracleService) invalidateStandings(ctx context.Context, sportType string, draftYear int) {
	if s.cache != nil {
		s.cache.DeletePrefix(ctx, standingsCachePrefix(sportType, draftYear))
	}
	if s.refreshQueue == nil {
		return
	}
	if err := s.refreshQueue.EnqueueStandingsRefresh(ctx, sportType, draftYear, refreshEnqueueDelay); err != nil {
		s.logger.WarnContext(ctx, "enqueue standings refresh failed",
			"sport_type", sportType,
			"draft_year", draftYear,
			"error", err,
		)
	}
}
