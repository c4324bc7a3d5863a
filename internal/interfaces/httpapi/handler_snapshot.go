package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/fpl-league-api/internal/usecase"
)

type autosnapshotDoneDTO struct {
	OK          bool `json:"ok"`
	Snapshotted bool `json:"snapshotted"`
	Gameweek    int  `json:"gw"`
}

type autosnapshotNotReadyDTO struct {
	OK                  bool   `json:"ok"`
	Gameweek            int    `json:"gw"`
	BonusAdded          bool   `json:"bonus_added"`
	FixturesAllFinished bool   `json:"fixtures_all_finished"`
	GameweekFinished    bool   `json:"gw_finished_flag"`
	Reason              string `json:"reason"`
}

type snapshotSummaryDTO struct {
	Gameweek int    `json:"gw"`
	TakenAt  string `json:"takenAt"`
}

func (h *Handler) Autosnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Autosnapshot")
	defer span.End()

	req, err := h.parseLeaguePath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome, err := h.autosnapshotService.Autosnapshot(ctx, req.LeagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	switch outcome.Kind {
	case usecase.OutcomeSnapshotted:
		writeJSON(ctx, w, http.StatusOK, autosnapshotDoneDTO{OK: true, Snapshotted: true, Gameweek: outcome.Gameweek})
	case usecase.OutcomeNotReady:
		writeJSON(ctx, w, http.StatusOK, autosnapshotNotReadyDTO{
			OK:                  false,
			Gameweek:            outcome.Gameweek,
			BonusAdded:          outcome.Completion.BonusAdded,
			FixturesAllFinished: outcome.Completion.FixturesAllFinished,
			GameweekFinished:    outcome.Completion.GameweekFinishedFlag,
			Reason:              outcome.Reason,
		})
	case usecase.OutcomeUnavailable:
		writeFailure(ctx, w, http.StatusServiceUnavailable, outcome.Message)
	case usecase.OutcomeTimedOut:
		writeFailure(ctx, w, http.StatusGatewayTimeout, outcome.Message)
	case usecase.OutcomeUpstreamError:
		writeFailure(ctx, w, outcome.StatusCode, outcome.Message)
	default:
		writeFailure(ctx, w, http.StatusInternalServerError, outcome.Message)
	}
}

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHistory")
	defer span.End()

	req, err := h.parseLeaguePath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.historyService.ListSnapshots(ctx, req.LeagueID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list history failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]snapshotSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, snapshotSummaryDTO{
			Gameweek: item.Gameweek,
			TakenAt:  item.TakenAt.UTC().Format(time.RFC3339Nano),
		})
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetHistorySnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHistorySnapshot")
	defer span.End()

	leagueID, err := pathInt64(r, "leagueId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gw, err := pathInt64(r, "gw")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := snapshotPathRequest{LeagueID: leagueID, Gameweek: int(gw)}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.historyService.GetSnapshot(ctx, req.LeagueID, req.Gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "get history snapshot failed", "league_id", req.LeagueID, "gw", req.Gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRawJSON(w, http.StatusOK, item.Data)
}
