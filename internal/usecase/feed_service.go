package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/domain/player"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

// ProspectFeed is the slice of the DraftWire client the sync flow needs.
type ProspectFeed interface {
	FetchProspects(ctx context.Context, sportType string, draftYear int) ([]player.Player, error)
	FetchMockDrafts(ctx context.Context, sportType string, draftYear int) ([]mockdraft.MockDraft, error)
}

// FeedSyncResult summarizes one catalog sync run.
type FeedSyncResult struct {
	RunID         string `json:"run_id"`
	SportType     string `json:"sport_type"`
	DraftYear     int    `json:"draft_year"`
	PlayerCount   int    `json:"player_count"`
	BoardCount    int    `json:"board_count"`
	SkippedBoards int    `json:"skipped_boards"`
}

// FeedService imports the prospect catalog and expert boards from the feed
// provider into local storage.
type FeedService struct {
	feed       ProspectFeed
	playerRepo player.Repository
	mockDrafts *MockDraftService
	logger     *logging.Logger
	now        func() time.Time
}

func NewFeedService(
	feed ProspectFeed,
	playerRepo player.Repository,
	mockDrafts *MockDraftService,
	logger *logging.Logger,
) *FeedService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FeedService{
		feed:       feed,
		playerRepo: playerRepo,
		mockDrafts: mockDrafts,
		logger:     logger,
		now:        time.Now,
	}
}

// SyncCatalog pulls prospects and expert boards for one draft. The player
// catalog import is all-or-nothing; boards that fail validation are skipped
// and counted.
func (s *FeedService) SyncCatalog(ctx context.Context, sportType string, draftYear int) (FeedSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.SyncCatalog")
	defer span.End()

	sportType = strings.ToLower(strings.TrimSpace(sportType))
	if sportType == "" || draftYear <= 0 {
		return FeedSyncResult{}, fmt.Errorf("%w: sport type and draft year are required", ErrInvalidInput)
	}

	result := FeedSyncResult{
		RunID:     uuid.NewString(),
		SportType: sportType,
		DraftYear: draftYear,
	}

	prospects, err := s.feed.FetchProspects(ctx, sportType, draftYear)
	if err != nil {
		return result, fmt.Errorf("%w: fetch prospects: %v", ErrDependencyUnavailable, err)
	}
	if err := s.playerRepo.UpsertMany(ctx, prospects); err != nil {
		return result, fmt.Errorf("store prospects: %w", err)
	}
	result.PlayerCount = len(prospects)

	boards, err := s.feed.FetchMockDrafts(ctx, sportType, draftYear)
	if err != nil {
		return result, fmt.Errorf("%w: fetch mock drafts: %v", ErrDependencyUnavailable, err)
	}
	for _, board := range boards {
		if board.UpdatedAt.IsZero() {
			board.UpdatedAt = s.now().UTC()
		}
		if err := s.mockDrafts.Import(ctx, board); err != nil {
			result.SkippedBoards++
			s.logger.WarnContext(ctx, "skipping feed board",
				"run_id", result.RunID,
				"sportscaster", board.Sportscaster,
				"version", board.Version,
				"error", err,
			)
			continue
		}
		result.BoardCount++
	}

	s.logger.InfoContext(ctx, "feed catalog sync finished",
		"run_id", result.RunID,
		"sport_type", sportType,
		"draft_year", draftYear,
		"player_count", result.PlayerCount,
		"board_count", result.BoardCount,
		"skipped_boards", result.SkippedBoards,
	)

	return result, nil
}
