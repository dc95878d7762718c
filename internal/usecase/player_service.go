package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftpool/confidence-pool/internal/domain/player"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

// PlayerService serves the prospect catalog backing pick entry screens.
type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (s *PlayerService) ListProspects(ctx context.Context, sportType string, draftYear int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListProspects")
	defer span.End()

	sportType = strings.ToLower(strings.TrimSpace(sportType))
	if sportType == "" || draftYear <= 0 {
		return nil, fmt.Errorf("%w: sport type and draft year are required", ErrInvalidInput)
	}

	return s.playerRepo.ListBySportYear(ctx, sportType, draftYear)
}

func (s *PlayerService) GetByID(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	return item, nil
}
