package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListPublicLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.GetLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/members", handler.ListLeagueMembers)
	mux.HandleFunc("GET /v1/prospects", handler.ListProspects)
	mux.HandleFunc("GET /v1/prospects/{playerID}", handler.GetProspect)
	mux.HandleFunc("GET /v1/results", handler.ListResults)
	mux.HandleFunc("GET /v1/mock-drafts", handler.RankMockDraftExperts)
	mux.HandleFunc("GET /v1/mock-drafts/{sportscaster}/{version}", handler.EvaluateMockDraft)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))

	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("GET /v1/leagues/me", RequireAuth(verifier, http.HandlerFunc(handler.ListMyLeagues)))
	mux.Handle("GET /v1/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.GetLeague)))
	mux.Handle("DELETE /v1/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteLeague)))
	mux.Handle("POST /v1/leagues/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeagueByInvite)))
	mux.Handle("POST /v1/leagues/{leagueID}/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinPublicLeague)))

	mux.Handle("PUT /v1/leagues/{leagueID}/prediction", RequireAuth(verifier, http.HandlerFunc(handler.SavePrediction)))
	mux.Handle("GET /v1/leagues/{leagueID}/prediction", RequireAuth(verifier, http.HandlerFunc(handler.GetMyPrediction)))
	mux.Handle("GET /v1/leagues/{leagueID}/prediction/score", RequireAuth(verifier, http.HandlerFunc(handler.GetMyPredictionScore)))
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /internal/results/picks", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RecordActualPick)))
	mux.Handle("POST /internal/results/import", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ImportResults)))
	mux.Handle("PUT /internal/draft-state", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SetDraftState)))
	mux.Handle("POST /internal/mock-drafts", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ImportMockDraft)))
	mux.Handle("POST /internal/jobs/refresh-standings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshStandingsJob)))
	mux.Handle("POST /internal/jobs/sync-catalog", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncCatalogJob)))
}
