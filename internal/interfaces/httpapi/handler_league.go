package httpapi

import (
	"encoding/json"
	"net/http"
)

type currentTeamDTO struct {
	EntryID  int64           `json:"entry_id"`
	Gameweek int             `json:"gw"`
	Picks    json.RawMessage `json:"picks"`
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	req, err := h.parseLeaguePath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	combined, err := h.standingsService.GetLeague(ctx, req.LeagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, combined)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	entryID, err := pathInt64(r, "entryId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := entryPathRequest{EntryID: entryID}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.teamService.GetCurrentTeam(ctx, req.EntryID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "entry_id", req.EntryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, currentTeamDTO{
		EntryID:  team.EntryID,
		Gameweek: team.Gameweek,
		Picks:    team.Picks,
	})
}
