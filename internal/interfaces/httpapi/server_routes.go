package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /healthz", handler.Health)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /league/{leagueId}", handler.GetLeague)
	mux.HandleFunc("GET /team/{entryId}", handler.GetTeam)
}

func registerSnapshotRoutes(mux *http.ServeMux, handler *Handler, autosnapshotToken string) {
	mux.Handle("POST /autosnapshot/{leagueId}", RequireInternalJobToken(autosnapshotToken, http.HandlerFunc(handler.Autosnapshot)))
	mux.HandleFunc("GET /history/{leagueId}", handler.ListHistory)
	mux.HandleFunc("GET /history/{leagueId}/{gw}", handler.GetHistorySnapshot)
}
