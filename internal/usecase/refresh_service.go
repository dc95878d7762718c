package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"

	defaultRefreshWorkers = 8
	maxRefreshWorkers     = 64
)

type RefreshInput struct {
	SportType  string
	DraftYear  int
	MaxWorkers int
}

type RefreshResult struct {
	LeagueCount  int                `json:"league_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Leagues      []RefreshLeagueRow `json:"leagues"`
}

type RefreshLeagueRow struct {
	LeagueID   string `json:"league_id"`
	Status     string `json:"status"`
	Members    int    `json:"members"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// RefreshService recomputes league standings across one draft so reads
// during the live window hit warm cache entries. It is driven by the
// internal refresh job endpoint.
type RefreshService struct {
	leagueRepo league.Repository
	standings  *StandingsService
	logger     *logging.Logger
}

func NewRefreshService(leagueRepo league.Repository, standings *StandingsService, logger *logging.Logger) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RefreshService{
		leagueRepo: leagueRepo,
		standings:  standings,
		logger:     logger,
	}
}

// WarmStandings recomputes every league of one draft over a bounded worker
// pool. One league failing does not stop the sweep.
func (s *RefreshService) WarmStandings(ctx context.Context, input RefreshInput) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.WarmStandings")
	defer span.End()

	input.SportType = strings.ToLower(strings.TrimSpace(input.SportType))
	if input.SportType == "" || input.DraftYear <= 0 {
		return RefreshResult{}, fmt.Errorf("%w: sport type and draft year are required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListBySportYear(ctx, input.SportType, input.DraftYear)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("list leagues for refresh: %w", err)
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = defaultRefreshWorkers
	}
	if workerCount > maxRefreshWorkers {
		workerCount = maxRefreshWorkers
	}
	if workerCount > len(leagues) && len(leagues) > 0 {
		workerCount = len(leagues)
	}

	out := RefreshResult{LeagueCount: len(leagues), WorkerCount: workerCount}
	if len(leagues) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("create refresh worker pool: %w", err)
	}
	defer pool.Release()

	var successCount, failedCount atomic.Int64
	rows := make(chan RefreshLeagueRow, len(leagues))

	var workers sync.WaitGroup
	for _, item := range leagues {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RefreshLeagueRow{LeagueID: item.ID, Members: len(item.Members)}

			if _, err := s.standings.RankLeague(ctx, item.ID); err != nil {
				row.Status = refreshStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = refreshStatusSuccess
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			rows <- row
		}); err != nil {
			workers.Done()
			return RefreshResult{}, fmt.Errorf("submit league to refresh pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		out.Leagues = append(out.Leagues, row)
	}
	sort.Slice(out.Leagues, func(i, j int) bool {
		return out.Leagues[i].LeagueID < out.Leagues[j].LeagueID
	})

	out.SuccessCount = int(successCount.Load())
	out.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "standings refresh finished",
		"sport_type", input.SportType,
		"draft_year", input.DraftYear,
		"league_count", out.LeagueCount,
		"success_count", out.SuccessCount,
		"failed_count", out.FailedCount,
		"worker_count", out.WorkerCount,
	)

	return out, nil
}
