package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/usecase"
)

type importMockDraftRequest struct {
	Sportscaster string                 `json:"sportscaster" validate:"required,max=100"`
	Version      string                 `json:"version" validate:"required,max=40"`
	SportType    string                 `json:"sportType" validate:"required,max=16"`
	DraftYear    int                    `json:"draftYear" validate:"required,min=2000,max=2100"`
	Picks        []mockDraftPickRequest `json:"picks" validate:"required,min=1,dive"`
	UpdatedAt    string                 `json:"updatedAt"`
}

type mockDraftPickRequest struct {
	Position int    `json:"position" validate:"required,min=1"`
	PlayerID string `json:"playerId" validate:"required"`
}

type mockDraftEvaluationDTO struct {
	Sportscaster string       `json:"sportscaster"`
	Version      string       `json:"version"`
	SportType    string       `json:"sportType"`
	DraftYear    int          `json:"draftYear"`
	UpdatedAt    string       `json:"updatedAt"`
	Breakdown    breakdownDTO `json:"breakdown"`
	Percentage   float64      `json:"percentage"`
	GradeCode    string       `json:"gradeCode"`
	GradeLabel   string       `json:"gradeLabel"`
	HasResults   bool         `json:"hasResults"`
}

func (h *Handler) EvaluateMockDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EvaluateMockDraft")
	defer span.End()

	sportType := strings.TrimSpace(r.URL.Query().Get("sport"))
	draftYear, err := parseDraftYear(r.URL.Query().Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sportscaster := strings.TrimSpace(r.PathValue("sportscaster"))
	version := strings.TrimSpace(r.PathValue("version"))

	evaluation, err := h.mockDraftService.Evaluate(ctx, sportscaster, version, sportType, draftYear)
	if err != nil {
		h.logger.WarnContext(ctx, "evaluate mock draft failed",
			"sportscaster", sportscaster,
			"version", version,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mockDraftEvaluationToDTO(evaluation))
}

func (h *Handler) RankMockDraftExperts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RankMockDraftExperts")
	defer span.End()

	sportType := strings.TrimSpace(r.URL.Query().Get("sport"))
	draftYear, err := parseDraftYear(r.URL.Query().Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	evaluations, err := h.mockDraftService.RankExperts(ctx, sportType, draftYear)
	if err != nil {
		h.logger.WarnContext(ctx, "rank mock draft experts failed", "sport_type", sportType, "draft_year", draftYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]mockDraftEvaluationDTO, 0, len(evaluations))
	for _, evaluation := range evaluations {
		items = append(items, mockDraftEvaluationToDTO(evaluation))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ImportMockDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportMockDraft")
	defer span.End()

	var req importMockDraftRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	picks := make([]mockdraft.Pick, 0, len(req.Picks))
	for _, pick := range req.Picks {
		picks = append(picks, mockdraft.Pick{
			Position: pick.Position,
			PlayerID: pick.PlayerID,
		})
	}

	board := mockdraft.MockDraft{
		Sportscaster: req.Sportscaster,
		Version:      req.Version,
		SportType:    req.SportType,
		DraftYear:    req.DraftYear,
		Picks:        picks,
		UpdatedAt:    parseBoardTimestamp(req.UpdatedAt),
	}
	if err := h.mockDraftService.Import(ctx, board); err != nil {
		h.logger.WarnContext(ctx, "import mock draft failed",
			"sportscaster", req.Sportscaster,
			"version", req.Version,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{
		"sportscaster": req.Sportscaster,
		"version":      req.Version,
		"status":       "imported",
	})
}

func mockDraftEvaluationToDTO(v usecase.MockDraftEvaluation) mockDraftEvaluationDTO {
	return mockDraftEvaluationDTO{
		Sportscaster: v.MockDraft.Sportscaster,
		Version:      v.MockDraft.Version,
		SportType:    v.MockDraft.SportType,
		DraftYear:    v.MockDraft.DraftYear,
		UpdatedAt:    v.MockDraft.UpdatedAt.UTC().Format(time.RFC3339),
		Breakdown:    breakdownToDTO(v.Breakdown),
		Percentage:   v.Percentage,
		GradeCode:    v.Grade.Code,
		GradeLabel:   v.Grade.Label,
		HasResults:   v.HasResults,
	}
}

func parseBoardTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
