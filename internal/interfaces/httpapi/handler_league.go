package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/draftpool/confidence-pool/internal/usecase"
)

type createLeagueRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	SportType  string `json:"sportType" validate:"required,max=16"`
	DraftYear  int    `json:"draftYear" validate:"required,min=2000,max=2100"`
	TotalPicks int    `json:"totalPicks" validate:"min=0,max=300"`
	PublicJoin bool   `json:"publicJoin"`
}

type joinLeagueRequest struct {
	InviteCode string `json:"inviteCode" validate:"required,len=8"`
}

type leagueMemberDTO struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	IsOwner     bool   `json:"isOwner"`
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createLeagueRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.Create(ctx, usecase.CreateLeagueInput{
		Name:       req.Name,
		SportType:  req.SportType,
		DraftYear:  req.DraftYear,
		TotalPicks: req.TotalPicks,
		PublicJoin: req.PublicJoin,
		OwnerID:    principal.UserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	item, err := h.leagueService.GetByID(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	if item.HasMember(principal.UserID) {
		writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToPublicDTO(item))
}

func (h *Handler) ListMyLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyLeagues")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagues, err := h.leagueService.ListMine(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list my leagues failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPublicLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPublicLeagues")
	defer span.End()

	sportType := strings.TrimSpace(r.URL.Query().Get("sport"))
	draftYear, err := parseDraftYear(r.URL.Query().Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagues, err := h.leagueService.ListPublic(ctx, sportType, draftYear)
	if err != nil {
		h.logger.WarnContext(ctx, "list public leagues failed", "sport_type", sportType, "draft_year", draftYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToPublicDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) JoinLeagueByInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeagueByInvite")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req joinLeagueRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	joined, err := h.leagueService.JoinByInviteCode(ctx, principal.UserID, req.InviteCode)
	if err != nil {
		h.logger.WarnContext(ctx, "join league by invite failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(joined))
}

func (h *Handler) JoinPublicLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinPublicLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	joined, err := h.leagueService.JoinPublic(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "join public league failed", "user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(joined))
}

func (h *Handler) ListLeagueMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMembers")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	members, err := h.leagueService.Members(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league members failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueMemberDTO, 0, len(members))
	for _, member := range members {
		items = append(items, leagueMemberDTO{
			UserID:      member.UserID,
			DisplayName: member.DisplayName,
			IsOwner:     member.IsOwner,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	if err := h.leagueService.Delete(ctx, principal.UserID, leagueID); err != nil {
		h.logger.WarnContext(ctx, "delete league failed", "user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"leagueId": leagueID, "status": "deleted"})
}

func parseDraftYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: year query parameter is required", usecase.ErrInvalidInput)
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("%w: invalid year %q", usecase.ErrInvalidInput, raw)
	}

	return year, nil
}
