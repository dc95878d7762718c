package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/usecase"
)

type predictionPickRequest struct {
	Position   int    `json:"position" validate:"required,min=1"`
	PlayerID   string `json:"playerId" validate:"required"`
	Confidence int    `json:"confidence" validate:"min=0"`
}

type savePredictionRequest struct {
	Picks []predictionPickRequest `json:"picks" validate:"required,min=1,dive"`
}

type predictionPickDTO struct {
	Position   int    `json:"position"`
	PlayerID   string `json:"playerId"`
	Confidence int    `json:"confidence"`
}

type predictionDTO struct {
	UserID     string              `json:"userId"`
	LeagueID   string              `json:"leagueId"`
	Picks      []predictionPickDTO `json:"picks"`
	IsComplete bool                `json:"isComplete"`
	Verified   bool                `json:"verified"`
	UpdatedAt  string              `json:"updatedAt"`
}

func (h *Handler) SavePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req savePredictionRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	picks := make([]prediction.Pick, 0, len(req.Picks))
	for _, pick := range req.Picks {
		picks = append(picks, prediction.Pick{
			Position:   pick.Position,
			PlayerID:   pick.PlayerID,
			Confidence: pick.Confidence,
		})
	}

	saved, err := h.predictionService.Save(ctx, usecase.SavePredictionInput{
		UserID:   principal.UserID,
		LeagueID: leagueID,
		Picks:    picks,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save prediction failed", "user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(saved))
}

func (h *Handler) GetMyPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyPrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	view, err := h.predictionService.Get(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get prediction failed", "user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(view))
}

func (h *Handler) GetMyPredictionScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyPredictionScore")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	breakdown, err := h.predictionService.Score(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "score prediction failed", "user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, breakdownToDTO(breakdown))
}

func predictionToDTO(view usecase.PredictionView) predictionDTO {
	picks := make([]predictionPickDTO, 0, len(view.Prediction.Picks))
	for _, pick := range view.Prediction.Picks {
		picks = append(picks, predictionPickDTO{
			Position:   pick.Position,
			PlayerID:   pick.PlayerID,
			Confidence: pick.Confidence,
		})
	}

	return predictionDTO{
		UserID:     view.Prediction.UserID,
		LeagueID:   view.Prediction.LeagueID,
		Picks:      picks,
		IsComplete: view.Prediction.IsComplete,
		Verified:   view.Verified,
		UpdatedAt:  view.Prediction.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
