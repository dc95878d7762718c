package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/domain/scoring"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

// MockDraftEvaluation grades one expert board against announced results.
// HasResults distinguishes a true zero score from a draft with nothing
// announced yet.
type MockDraftEvaluation struct {
	MockDraft  mockdraft.MockDraft
	Breakdown  scoring.Breakdown
	Percentage float64
	Grade      scoring.Grade
	HasResults bool
}

type MockDraftService struct {
	mockDraftRepo mockdraft.Repository
	resultRepo    draftresult.Repository
	logger        *logging.Logger
}

func NewMockDraftService(
	mockDraftRepo mockdraft.Repository,
	resultRepo draftresult.Repository,
	logger *logging.Logger,
) *MockDraftService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MockDraftService{
		mockDraftRepo: mockDraftRepo,
		resultRepo:    resultRepo,
		logger:        logger,
	}
}

// Evaluate scores one sportscaster's board against the actual draft.
func (s *MockDraftService) Evaluate(ctx context.Context, sportscaster, version, sportType string, draftYear int) (MockDraftEvaluation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MockDraftService.Evaluate")
	defer span.End()

	sportscaster = strings.TrimSpace(sportscaster)
	version = strings.TrimSpace(version)
	sportType = strings.ToLower(strings.TrimSpace(sportType))
	if sportscaster == "" || version == "" || sportType == "" || draftYear <= 0 {
		return MockDraftEvaluation{}, fmt.Errorf("%w: sportscaster, version, sport type, and draft year are required", ErrInvalidInput)
	}

	board, exists, err := s.mockDraftRepo.Get(ctx, sportscaster, version, sportType, draftYear)
	if err != nil {
		return MockDraftEvaluation{}, fmt.Errorf("get mock draft: %w", err)
	}
	if !exists {
		return MockDraftEvaluation{}, fmt.Errorf("%w: mock draft %s/%s %s %d", ErrNotFound, sportscaster, version, sportType, draftYear)
	}

	actualPicks, err := s.resultRepo.ListBySportYear(ctx, sportType, draftYear)
	if err != nil {
		return MockDraftEvaluation{}, fmt.Errorf("list actual picks for evaluation: %w", err)
	}

	return evaluateBoard(board, draftresult.ResultMap(actualPicks)), nil
}

// RankExperts evaluates every stored board for one draft and orders them
// best to worst. Ties on accuracy break toward the most recently updated
// board.
func (s *MockDraftService) RankExperts(ctx context.Context, sportType string, draftYear int) ([]MockDraftEvaluation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MockDraftService.RankExperts")
	defer span.End()

	sportType = strings.ToLower(strings.TrimSpace(sportType))
	if sportType == "" || draftYear <= 0 {
		return nil, fmt.Errorf("%w: sport type and draft year are required", ErrInvalidInput)
	}

	boards, err := s.mockDraftRepo.ListBySportYear(ctx, sportType, draftYear)
	if err != nil {
		return nil, fmt.Errorf("list mock drafts: %w", err)
	}

	actualPicks, err := s.resultRepo.ListBySportYear(ctx, sportType, draftYear)
	if err != nil {
		return nil, fmt.Errorf("list actual picks for expert ranking: %w", err)
	}
	actual := draftresult.ResultMap(actualPicks)

	evaluations := make([]MockDraftEvaluation, 0, len(boards))
	for _, board := range boards {
		evaluations = append(evaluations, evaluateBoard(board, actual))
	}

	sort.SliceStable(evaluations, func(i, j int) bool {
		if evaluations[i].Percentage != evaluations[j].Percentage {
			return evaluations[i].Percentage > evaluations[j].Percentage
		}
		return evaluations[i].MockDraft.UpdatedAt.After(evaluations[j].MockDraft.UpdatedAt)
	})

	return evaluations, nil
}

// Import stores or replaces one expert board.
func (s *MockDraftService) Import(ctx context.Context, board mockdraft.MockDraft) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MockDraftService.Import")
	defer span.End()

	board.Sportscaster = strings.TrimSpace(board.Sportscaster)
	board.Version = strings.TrimSpace(board.Version)
	board.SportType = strings.ToLower(strings.TrimSpace(board.SportType))
	if err := board.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.mockDraftRepo.Upsert(ctx, board); err != nil {
		return fmt.Errorf("import mock draft: %w", err)
	}

	s.logger.InfoContext(ctx, "mock draft imported",
		"sportscaster", board.Sportscaster,
		"version", board.Version,
		"sport_type", board.SportType,
		"draft_year", board.DraftYear,
		"pick_count", len(board.Picks),
	)

	return nil
}

func evaluateBoard(board mockdraft.MockDraft, actual map[int]string) MockDraftEvaluation {
	breakdown := scoring.ScoreDerived(board.Picks, actual)
	percentage := scoring.Percentage(breakdown)

	return MockDraftEvaluation{
		MockDraft:  board,
		Breakdown:  breakdown,
		Percentage: percentage,
		Grade:      scoring.GradeFor(percentage),
		HasResults: len(actual) > 0,
	}
}
