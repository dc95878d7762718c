package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/scoring"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
	"github.com/draftpool/confidence-pool/internal/usecase"
)

type Handler struct {
	leagueService     *usecase.LeagueService
	predictionService *usecase.PredictionService
	standingsService  *usecase.StandingsService
	mockDraftService  *usecase.MockDraftService
	oracleService     *usecase.OracleService
	dashboardService  *usecase.DashboardService
	playerService     *usecase.PlayerService
	refreshService    *usecase.RefreshService
	feedService       *usecase.FeedService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	predictionService *usecase.PredictionService,
	standingsService *usecase.StandingsService,
	mockDraftService *usecase.MockDraftService,
	oracleService *usecase.OracleService,
	dashboardService *usecase.DashboardService,
	playerService *usecase.PlayerService,
	refreshService *usecase.RefreshService,
	feedService *usecase.FeedService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:     leagueService,
		predictionService: predictionService,
		standingsService:  standingsService,
		mockDraftService:  mockDraftService,
		oracleService:     oracleService,
		dashboardService:  dashboardService,
		playerService:     playerService,
		refreshService:    refreshService,
		feedService:       feedService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	dashboard, err := h.dashboardService.ForUser(ctx, principal.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	entries := make([]dashboardEntryDTO, 0, len(dashboard.Entries))
	for _, entry := range dashboard.Entries {
		entries = append(entries, dashboardEntryDTO{
			League:        leagueToDTO(entry.League),
			Rank:          entry.Rank,
			TotalPoints:   entry.TotalPoints,
			MemberCount:   entry.MemberCount,
			HasPrediction: entry.HasPrediction,
			IsLive:        entry.IsLive,
			IsCompleted:   entry.IsCompleted,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{
		UserID:  dashboard.UserID,
		Entries: entries,
	})
}

func (h *Handler) decodeBody(ctx context.Context, r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type dashboardDTO struct {
	UserID  string              `json:"userId"`
	Entries []dashboardEntryDTO `json:"entries"`
}

type dashboardEntryDTO struct {
	League        leagueDTO `json:"league"`
	Rank          int       `json:"rank"`
	TotalPoints   int       `json:"totalPoints"`
	MemberCount   int       `json:"memberCount"`
	HasPrediction bool      `json:"hasPrediction"`
	IsLive        bool      `json:"isLive"`
	IsCompleted   bool      `json:"isCompleted"`
}

type leagueDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SportType   string `json:"sportType"`
	DraftYear   int    `json:"draftYear"`
	OwnerUserID string `json:"ownerUserId"`
	MemberCount int    `json:"memberCount"`
	TotalPicks  int    `json:"totalPicks"`
	InviteCode  string `json:"inviteCode,omitempty"`
	PublicJoin  bool   `json:"publicJoin"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type pickResultDTO struct {
	Position          int    `json:"position"`
	PredictedPlayerID string `json:"predictedPlayerId"`
	ActualPlayerID    string `json:"actualPlayerId,omitempty"`
	HasResult         bool   `json:"hasResult"`
	IsCorrect         bool   `json:"isCorrect"`
	Confidence        int    `json:"confidence"`
	Points            int    `json:"points"`
}

type breakdownDTO struct {
	TotalPoints    int             `json:"totalPoints"`
	PossiblePoints int             `json:"possiblePoints"`
	CorrectCount   int             `json:"correctCount"`
	TotalCount     int             `json:"totalCount"`
	SkippedCount   int             `json:"skippedCount,omitempty"`
	PerPick        []pickResultDTO `json:"perPick"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:          v.ID,
		Name:        v.Name,
		SportType:   v.SportType,
		DraftYear:   v.DraftYear,
		OwnerUserID: v.OwnerUserID,
		MemberCount: len(v.Members),
		TotalPicks:  v.Settings.TotalPicks,
		InviteCode:  v.Settings.InviteCode,
		PublicJoin:  v.Settings.PublicJoin,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// leagueToPublicDTO strips the invite code for listings visible to
// non-members.
func leagueToPublicDTO(v league.League) leagueDTO {
	out := leagueToDTO(v)
	out.InviteCode = ""
	return out
}

func breakdownToDTO(b scoring.Breakdown) breakdownDTO {
	perPick := make([]pickResultDTO, 0, len(b.PerPick))
	for _, pick := range b.PerPick {
		perPick = append(perPick, pickResultDTO{
			Position:          pick.Position,
			PredictedPlayerID: pick.PredictedPlayerID,
			ActualPlayerID:    pick.ActualPlayerID,
			HasResult:         pick.HasResult,
			IsCorrect:         pick.IsCorrect,
			Confidence:        pick.Confidence,
			Points:            pick.Points,
		})
	}

	return breakdownDTO{
		TotalPoints:    b.TotalPoints,
		PossiblePoints: b.PossiblePoints,
		CorrectCount:   b.CorrectCount,
		TotalCount:     b.TotalCount,
		SkippedCount:   b.SkippedCount,
		PerPick:        perPick,
	}
}
