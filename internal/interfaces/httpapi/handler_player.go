package httpapi

import (
	"net/http"
	"strings"

	"github.com/draftpool/confidence-pool/internal/domain/player"
)

type playerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Team      string `json:"team,omitempty"`
	SportType string `json:"sportType"`
	DraftYear int    `json:"draftYear"`
}

func (h *Handler) ListProspects(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListProspects")
	defer span.End()

	sportType := strings.TrimSpace(r.URL.Query().Get("sport"))
	draftYear, err := parseDraftYear(r.URL.Query().Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.ListProspects(ctx, sportType, draftYear)
	if err != nil {
		h.logger.WarnContext(ctx, "list prospects failed", "sport_type", sportType, "draft_year", draftYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetProspect(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProspect")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.GetByID(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get prospect failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		Position:  v.Position,
		Team:      v.Team,
		SportType: v.SportType,
		DraftYear: v.DraftYear,
	}
}
