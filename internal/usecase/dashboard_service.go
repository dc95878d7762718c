package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

// DashboardEntry is one league row on a user's home screen.
type DashboardEntry struct {
	League        league.League
	Rank          int
	TotalPoints   int
	MemberCount   int
	HasPrediction bool
	IsLive        bool
	IsCompleted   bool
}

// Dashboard is everything the home screen needs for one user.
type Dashboard struct {
	UserID  string
	Entries []DashboardEntry
}

type DashboardService struct {
	leagueRepo league.Repository
	standings  *StandingsService
	logger     *logging.Logger
}

func NewDashboardService(leagueRepo league.Repository, standings *StandingsService, logger *logging.Logger) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DashboardService{
		leagueRepo: leagueRepo,
		standings:  standings,
		logger:     logger,
	}
}

// ForUser assembles the caller's leagues with their current rank in each. A
// league whose standings cannot be computed is reported with a zero rank
// rather than failing the whole dashboard.
func (s *DashboardService) ForUser(ctx context.Context, userID string) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.ForUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Dashboard{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListByMember(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list leagues for dashboard: %w", err)
	}

	out := Dashboard{UserID: userID, Entries: make([]DashboardEntry, 0, len(leagues))}
	for _, item := range leagues {
		entry := DashboardEntry{League: item, MemberCount: len(item.Members)}

		board, err := s.standings.RankLeague(ctx, item.ID)
		if err != nil {
			s.logger.WarnContext(ctx, "standings unavailable for dashboard league",
				"league_id", item.ID,
				"user_id", userID,
				"error", err,
			)
			out.Entries = append(out.Entries, entry)
			continue
		}

		entry.IsLive = board.IsLive
		entry.IsCompleted = board.IsCompleted
		for _, row := range board.Entries {
			if row.UserID != userID {
				continue
			}
			entry.Rank = row.Rank
			entry.TotalPoints = row.TotalPoints
			entry.HasPrediction = row.HasPrediction
			break
		}
		out.Entries = append(out.Entries, entry)
	}

	return out, nil
}
