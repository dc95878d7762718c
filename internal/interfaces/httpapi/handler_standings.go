package httpapi

import (
	"net/http"
	"strings"

	"github.com/draftpool/confidence-pool/internal/usecase"
)

type standingsDTO struct {
	LeagueID    string         `json:"leagueId"`
	LeagueName  string         `json:"leagueName"`
	SportType   string         `json:"sportType"`
	DraftYear   int            `json:"draftYear"`
	TotalPicks  int            `json:"totalPicks"`
	IsLive      bool           `json:"isLive"`
	IsCompleted bool           `json:"isCompleted"`
	Entries     []userScoreDTO `json:"entries"`
	Winners     []userScoreDTO `json:"winners,omitempty"`
}

type userScoreDTO struct {
	UserID         string          `json:"userId"`
	DisplayName    string          `json:"displayName"`
	TotalPoints    int             `json:"totalPoints"`
	PossiblePoints int             `json:"possiblePoints"`
	CorrectCount   int             `json:"correctCount"`
	TotalCount     int             `json:"totalCount"`
	Rank           int             `json:"rank"`
	HasPrediction  bool            `json:"hasPrediction"`
	Unverified     bool            `json:"unverified,omitempty"`
	PerPick        []pickResultDTO `json:"perPick,omitempty"`
}

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	includePicks := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("includePicks")), "true")

	standings, err := h.standingsService.RankLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "rank league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(standings, includePicks))
}

func standingsToDTO(v usecase.LeagueStandings, includePicks bool) standingsDTO {
	entries := make([]userScoreDTO, 0, len(v.Entries))
	for _, entry := range v.Entries {
		entries = append(entries, userScoreToDTO(entry, includePicks))
	}

	var winners []userScoreDTO
	if len(v.Winners) > 0 {
		winners = make([]userScoreDTO, 0, len(v.Winners))
		for _, winner := range v.Winners {
			winners = append(winners, userScoreToDTO(winner, false))
		}
	}

	return standingsDTO{
		LeagueID:    v.LeagueID,
		LeagueName:  v.LeagueName,
		SportType:   v.SportType,
		DraftYear:   v.DraftYear,
		TotalPicks:  v.TotalPicks,
		IsLive:      v.IsLive,
		IsCompleted: v.IsCompleted,
		Entries:     entries,
		Winners:     winners,
	}
}

func userScoreToDTO(v usecase.UserScore, includePicks bool) userScoreDTO {
	out := userScoreDTO{
		UserID:         v.UserID,
		DisplayName:    v.DisplayName,
		TotalPoints:    v.TotalPoints,
		PossiblePoints: v.PossiblePoints,
		CorrectCount:   v.CorrectCount,
		TotalCount:     v.TotalCount,
		Rank:           v.Rank,
		HasPrediction:  v.HasPrediction,
		Unverified:     v.Unverified,
	}
	if !includePicks {
		return out
	}

	out.PerPick = make([]pickResultDTO, 0, len(v.PerPick))
	for _, pick := range v.PerPick {
		out.PerPick = append(out.PerPick, pickResultDTO{
			Position:          pick.Position,
			PredictedPlayerID: pick.PredictedPlayerID,
			ActualPlayerID:    pick.ActualPlayerID,
			HasResult:         pick.HasResult,
			IsCorrect:         pick.IsCorrect,
			Confidence:        pick.Confidence,
			Points:            pick.Points,
		})
	}

	return out
}
