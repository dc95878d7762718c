package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
)

type recordActualPickRequest struct {
	SportType  string `json:"sportType" validate:"required,max=16"`
	DraftYear  int    `json:"draftYear" validate:"required,min=2000,max=2100"`
	Position   int    `json:"position" validate:"required,min=1"`
	PlayerID   string `json:"playerId" validate:"required"`
	RecordedAt string `json:"recordedAt"`
}

type importResultsRequest struct {
	SportType string                    `json:"sportType" validate:"required,max=16"`
	DraftYear int                       `json:"draftYear" validate:"required,min=2000,max=2100"`
	Picks     []recordActualPickRequest `json:"picks" validate:"required,min=1"`
}

type setDraftStateRequest struct {
	SportType   string `json:"sportType" validate:"required,max=16"`
	DraftYear   int    `json:"draftYear" validate:"required,min=2000,max=2100"`
	IsLive      bool   `json:"isLive"`
	IsCompleted bool   `json:"isCompleted"`
}

type importRunDTO struct {
	RunID       string `json:"runId"`
	Recorded    int    `json:"recorded"`
	Skipped     int    `json:"skipped"`
	SportType   string `json:"sportType"`
	DraftYear   int    `json:"draftYear"`
	CompletedAt string `json:"completedAt"`
}

type actualPickDTO struct {
	Position   int    `json:"position"`
	PlayerID   string `json:"playerId"`
	SportType  string `json:"sportType"`
	DraftYear  int    `json:"draftYear"`
	RecordedAt string `json:"recordedAt"`
}

func (h *Handler) RecordActualPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordActualPick")
	defer span.End()

	var req recordActualPickRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pick := draftresult.ActualPick{
		Position:   req.Position,
		PlayerID:   req.PlayerID,
		SportType:  req.SportType,
		DraftYear:  req.DraftYear,
		RecordedAt: parseBoardTimestamp(req.RecordedAt),
	}
	if err := h.oracleService.RecordActualPick(ctx, pick); err != nil {
		h.logger.WarnContext(ctx, "record actual pick failed",
			"sport_type", req.SportType,
			"draft_year", req.DraftYear,
			"position", req.Position,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"sportType": req.SportType,
		"draftYear": req.DraftYear,
		"position":  req.Position,
		"status":    "recorded",
	})
}

func (h *Handler) ImportResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportResults")
	defer span.End()

	var req importResultsRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	picks := make([]draftresult.ActualPick, 0, len(req.Picks))
	for _, pick := range req.Picks {
		picks = append(picks, draftresult.ActualPick{
			Position:   pick.Position,
			PlayerID:   pick.PlayerID,
			SportType:  pick.SportType,
			DraftYear:  pick.DraftYear,
			RecordedAt: parseBoardTimestamp(pick.RecordedAt),
		})
	}

	run, err := h.oracleService.ImportResults(ctx, req.SportType, req.DraftYear, picks)
	if err != nil {
		h.logger.WarnContext(ctx, "import results failed", "sport_type", req.SportType, "draft_year", req.DraftYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importRunDTO{
		RunID:       run.RunID,
		Recorded:    run.Recorded,
		Skipped:     run.Skipped,
		SportType:   run.SportType,
		DraftYear:   run.DraftYear,
		CompletedAt: run.CompletedAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	sportType := strings.TrimSpace(r.URL.Query().Get("sport"))
	draftYear, err := parseDraftYear(r.URL.Query().Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	picks, err := h.oracleService.ListResults(ctx, sportType, draftYear)
	if err != nil {
		h.logger.WarnContext(ctx, "list results failed", "sport_type", sportType, "draft_year", draftYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]actualPickDTO, 0, len(picks))
	for _, pick := range picks {
		items = append(items, actualPickDTO{
			Position:   pick.Position,
			PlayerID:   pick.PlayerID,
			SportType:  pick.SportType,
			DraftYear:  pick.DraftYear,
			RecordedAt: pick.RecordedAt.UTC().Format(time.RFC3339),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SetDraftState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetDraftState")
	defer span.End()

	var req setDraftStateRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state := draftstate.State{
		SportType:   req.SportType,
		DraftYear:   req.DraftYear,
		IsLive:      req.IsLive,
		IsCompleted: req.IsCompleted,
	}
	if err := h.oracleService.SetDraftState(ctx, state); err != nil {
		h.logger.WarnContext(ctx, "set draft state failed", "sport_type", req.SportType, "draft_year", req.DraftYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"sportType":   req.SportType,
		"draftYear":   req.DraftYear,
		"isLive":      req.IsLive && !req.IsCompleted,
		"isCompleted": req.IsCompleted,
	})
}
