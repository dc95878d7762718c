package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/domain/scoring"
	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
	"github.com/draftpool/confidence-pool/internal/platform/cache"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

const winnerSlots = 3

// UserScore is one leaderboard row. Rank follows competition ranking: tied
// totals share a rank and the next distinct total takes 1 + the number of
// strictly better entries.
type UserScore struct {
	UserID         string
	DisplayName    string
	TotalPoints    int
	PossiblePoints int
	CorrectCount   int
	TotalCount     int
	Rank           int
	HasPrediction  bool
	Unverified     bool
	PerPick        []scoring.PickResult
}

// LeagueStandings is the computed leaderboard for one league. Winners is
// populated only once the draft is completed.
type LeagueStandings struct {
	LeagueID    string
	LeagueName  string
	SportType   string
	DraftYear   int
	TotalPicks  int
	IsLive      bool
	IsCompleted bool
	Entries     []UserScore
	Winners     []UserScore
}

type StandingsService struct {
	leagueRepo     league.Repository
	predictionRepo prediction.Repository
	resultRepo     draftresult.Repository
	stateRepo      draftstate.Repository
	profileRepo    userprofile.Repository
	cache          *cache.Store
	logger         *logging.Logger
}

func NewStandingsService(
	leagueRepo league.Repository,
	predictionRepo prediction.Repository,
	resultRepo draftresult.Repository,
	stateRepo draftstate.Repository,
	profileRepo userprofile.Repository,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{
		leagueRepo:     leagueRepo,
		predictionRepo: predictionRepo,
		resultRepo:     resultRepo,
		stateRepo:      stateRepo,
		profileRepo:    profileRepo,
		cache:          cacheStore,
		logger:         logger,
	}
}

// RankLeague scores every member of the league against the announced draft
// results and returns the ranked leaderboard. Every member appears, with or
// without a prediction on file. Store fetch failures propagate; a missing
// member profile only degrades to a synthesized display name.
func (s *StandingsService) RankLeague(ctx context.Context, leagueID string) (LeagueStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RankLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return LeagueStandings{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueStandings{}, fmt.Errorf("get league for standings: %w", err)
	}
	if !exists {
		return LeagueStandings{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	if s.cache == nil {
		return s.computeStandings(ctx, item)
	}

	key := StandingsCacheKey(item.SportType, item.DraftYear, item.ID)
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		computed, err := s.computeStandings(ctx, item)
		if err != nil {
			return nil, err
		}
		return computed, nil
	})
	if err != nil {
		return LeagueStandings{}, err
	}
	out, ok := value.(LeagueStandings)
	if !ok {
		return s.computeStandings(ctx, item)
	}

	return out, nil
}

func (s *StandingsService) computeStandings(ctx context.Context, item league.League) (LeagueStandings, error) {
	actualPicks, err := s.resultRepo.ListBySportYear(ctx, item.SportType, item.DraftYear)
	if err != nil {
		return LeagueStandings{}, fmt.Errorf("list actual picks for standings: %w", err)
	}
	actual := draftresult.ResultMap(actualPicks)

	state, stateExists, err := s.stateRepo.Get(ctx, item.SportType, item.DraftYear)
	if err != nil {
		return LeagueStandings{}, fmt.Errorf("get draft state for standings: %w", err)
	}
	if !stateExists {
		state = draftstate.State{SportType: item.SportType, DraftYear: item.DraftYear}
	}

	predictions, err := s.predictionRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return LeagueStandings{}, fmt.Errorf("list predictions for standings: %w", err)
	}
	predictionByUser := make(map[string]prediction.Prediction, len(predictions))
	for _, p := range predictions {
		predictionByUser[p.UserID] = p
	}

	entries := make([]UserScore, 0, len(item.Members))
	for _, memberID := range item.Members {
		entry := UserScore{
			UserID:      memberID,
			DisplayName: s.resolveDisplayName(ctx, memberID),
		}
		if p, ok := predictionByUser[memberID]; ok {
			breakdown := scoring.ScoreDeclared(p.Picks, actual)
			entry.HasPrediction = true
			entry.TotalPoints = breakdown.TotalPoints
			entry.PossiblePoints = breakdown.PossiblePoints
			entry.CorrectCount = breakdown.CorrectCount
			entry.TotalCount = breakdown.TotalCount
			entry.Unverified = !scoring.IsConfidencePermutation(p.Picks, item.Settings.TotalPicks)
			entry.PerPick = breakdown.PerPick
		}
		entries = append(entries, entry)
	}

	// Secondary key keeps output deterministic; it never affects rank, which
	// is derived from points alone.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].UserID < entries[j].UserID
	})

	for idx := range entries {
		if idx == 0 || entries[idx].TotalPoints != entries[idx-1].TotalPoints {
			entries[idx].Rank = idx + 1
			continue
		}
		entries[idx].Rank = entries[idx-1].Rank
	}

	out := LeagueStandings{
		LeagueID:    item.ID,
		LeagueName:  item.Name,
		SportType:   item.SportType,
		DraftYear:   item.DraftYear,
		TotalPicks:  item.Settings.TotalPicks,
		IsLive:      state.IsLive,
		IsCompleted: state.IsCompleted,
		Entries:     entries,
	}

	if state.IsCompleted {
		top := winnerSlots
		if top > len(entries) {
			top = len(entries)
		}
		out.Winners = append([]UserScore(nil), entries[:top]...)
	}

	return out, nil
}

func (s *StandingsService) resolveDisplayName(ctx context.Context, userID string) string {
	if s.profileRepo == nil {
		return fallbackDisplayName(userID)
	}

	profile, exists, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "profile lookup failed, using fallback name", "user_id", userID, "error", err)
		return fallbackDisplayName(userID)
	}
	if !exists || strings.TrimSpace(profile.DisplayName) == "" {
		return fallbackDisplayName(userID)
	}
	return profile.DisplayName
}

func fallbackDisplayName(userID string) string {
	trimmed := strings.TrimSpace(userID)
	if len(trimmed) > 8 {
		trimmed = trimmed[:8]
	}
	return "user-" + trimmed
}
