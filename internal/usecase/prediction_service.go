package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/domain/scoring"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

// SavePredictionInput is a user's submitted slate for one league. Picks may
// cover a subset of positions until the board is marked complete.
type SavePredictionInput struct {
	UserID   string
	LeagueID string
	Picks    []prediction.Pick
}

// PredictionView is a stored prediction plus the verification flag used by
// leaderboard rendering.
type PredictionView struct {
	Prediction prediction.Prediction
	Verified   bool
}

type PredictionService struct {
	leagueRepo     league.Repository
	predictionRepo prediction.Repository
	stateRepo      draftstate.Repository
	resultRepo     draftresult.Repository
	logger         *logging.Logger
	now            func() time.Time
}

func NewPredictionService(
	leagueRepo league.Repository,
	predictionRepo prediction.Repository,
	stateRepo draftstate.Repository,
	resultRepo draftresult.Repository,
	logger *logging.Logger,
) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PredictionService{
		leagueRepo:     leagueRepo,
		predictionRepo: predictionRepo,
		stateRepo:      stateRepo,
		resultRepo:     resultRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// Save validates and stores the caller's prediction. Writes are refused once
// the draft for the league's sport and year has gone live or finished.
func (s *PredictionService) Save(ctx context.Context, in SavePredictionInput) (PredictionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Save")
	defer span.End()

	in.UserID = strings.TrimSpace(in.UserID)
	in.LeagueID = strings.TrimSpace(in.LeagueID)
	if in.UserID == "" || in.LeagueID == "" {
		return PredictionView{}, fmt.Errorf("%w: user id and league id are required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, in.LeagueID)
	if err != nil {
		return PredictionView{}, fmt.Errorf("get league for prediction save: %w", err)
	}
	if !exists {
		return PredictionView{}, fmt.Errorf("%w: league=%s", ErrNotFound, in.LeagueID)
	}
	if !item.HasMember(in.UserID) {
		return PredictionView{}, fmt.Errorf("%w: user %s is not a member of league %s", ErrUnauthorized, in.UserID, in.LeagueID)
	}

	state, exists, err := s.stateRepo.Get(ctx, item.SportType, item.DraftYear)
	if err != nil {
		return PredictionView{}, fmt.Errorf("get draft state for prediction save: %w", err)
	}
	if exists && (state.IsLive || state.IsCompleted) {
		return PredictionView{}, fmt.Errorf("%w: %s %d draft has started", ErrPredictionLocked, item.SportType, item.DraftYear)
	}

	totalPicks := item.Settings.TotalPicks
	p := prediction.Prediction{
		UserID:     in.UserID,
		LeagueID:   in.LeagueID,
		Picks:      in.Picks,
		IsComplete: len(in.Picks) == totalPicks,
		UpdatedAt:  s.now().UTC(),
	}
	if err := p.Validate(totalPicks); err != nil {
		return PredictionView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.predictionRepo.Upsert(ctx, p); err != nil {
		return PredictionView{}, fmt.Errorf("save prediction: %w", err)
	}

	s.logger.InfoContext(ctx, "prediction saved",
		"league_id", in.LeagueID,
		"user_id", in.UserID,
		"pick_count", len(p.Picks),
		"complete", p.IsComplete,
	)

	return PredictionView{
		Prediction: p,
		Verified:   scoring.IsConfidencePermutation(p.Picks, totalPicks),
	}, nil
}

// Score returns the caller's prediction scored against the current results
// for the league's draft, with per-pick detail.
func (s *PredictionService) Score(ctx context.Context, userID, leagueID string) (scoring.Breakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Score")
	defer span.End()

	view, err := s.Get(ctx, userID, leagueID)
	if err != nil {
		return scoring.Breakdown{}, err
	}

	item, _, err := s.leagueRepo.GetByID(ctx, view.Prediction.LeagueID)
	if err != nil {
		return scoring.Breakdown{}, fmt.Errorf("get league for prediction score: %w", err)
	}

	actualPicks, err := s.resultRepo.ListBySportYear(ctx, item.SportType, item.DraftYear)
	if err != nil {
		return scoring.Breakdown{}, fmt.Errorf("list actual picks for prediction score: %w", err)
	}

	return scoring.ScoreDeclared(view.Prediction.Picks, draftresult.ResultMap(actualPicks)), nil
}

// Get returns the caller's own prediction for a league.
func (s *PredictionService) Get(ctx context.Context, userID, leagueID string) (PredictionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" || leagueID == "" {
		return PredictionView{}, fmt.Errorf("%w: user id and league id are required", ErrInvalidInput)
	}

	item, leagueExists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return PredictionView{}, fmt.Errorf("get league for prediction read: %w", err)
	}
	if !leagueExists {
		return PredictionView{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if !item.HasMember(userID) {
		return PredictionView{}, fmt.Errorf("%w: user %s is not a member of league %s", ErrUnauthorized, userID, leagueID)
	}

	p, exists, err := s.predictionRepo.GetByUserAndLeague(ctx, userID, leagueID)
	if err != nil {
		return PredictionView{}, fmt.Errorf("get prediction: %w", err)
	}
	if !exists {
		return PredictionView{}, fmt.Errorf("%w: no prediction for user %s in league %s", ErrNotFound, userID, leagueID)
	}

	return PredictionView{
		Prediction: p,
		Verified:   scoring.IsConfidencePermutation(p.Picks, item.Settings.TotalPicks),
	}, nil
}
