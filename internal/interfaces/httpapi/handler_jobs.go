package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/draftpool/confidence-pool/internal/usecase"
)

type refreshStandingsRequest struct {
	SportType  string `json:"sportType" validate:"required,max=16"`
	DraftYear  int    `json:"draftYear" validate:"required,min=2000,max=2100"`
	MaxWorkers int    `json:"maxWorkers" validate:"min=0,max=64"`
}

type syncCatalogRequest struct {
	SportType string `json:"sportType" validate:"required,max=16"`
	DraftYear int    `json:"draftYear" validate:"required,min=2000,max=2100"`
}

func (h *Handler) RunRefreshStandingsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshStandingsJob")
	defer span.End()

	if h.refreshService == nil {
		writeError(ctx, w, fmt.Errorf("%w: refresh service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req refreshStandingsRequest
	if err := h.decodeJobBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.refreshService.WarmStandings(ctx, usecase.RefreshInput{
		SportType:  req.SportType,
		DraftYear:  req.DraftYear,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "refresh standings job failed", "sport_type", req.SportType, "draft_year", req.DraftYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunSyncCatalogJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncCatalogJob")
	defer span.End()

	if h.feedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: feed service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req syncCatalogRequest
	if err := h.decodeJobBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.feedService.SyncCatalog(ctx, req.SportType, req.DraftYear)
	if err != nil {
		h.logger.WarnContext(ctx, "sync catalog job failed", "sport_type", req.SportType, "draft_year", req.DraftYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// decodeJobBody tolerates an empty body so scheduled callers can omit it and
// rely on validation to report the missing fields.
func (h *Handler) decodeJobBody(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
