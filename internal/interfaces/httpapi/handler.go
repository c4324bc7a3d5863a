package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-league-api/internal/platform/logging"
	"github.com/riskibarqy/fpl-league-api/internal/usecase"
)

type Handler struct {
	standingsService    *usecase.StandingsService
	autosnapshotService *usecase.AutosnapshotService
	historyService      *usecase.HistoryService
	teamService         *usecase.TeamService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	autosnapshotService *usecase.AutosnapshotService,
	historyService *usecase.HistoryService,
	teamService *usecase.TeamService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService:    standingsService,
		autosnapshotService: autosnapshotService,
		historyService:      historyService,
		teamService:         teamService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]bool{"ok": true})
}

type leaguePathRequest struct {
	LeagueID int64 `validate:"gt=0"`
}

type snapshotPathRequest struct {
	LeagueID int64 `validate:"gt=0"`
	Gameweek int   `validate:"gt=0"`
}

type entryPathRequest struct {
	EntryID int64 `validate:"gt=0"`
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func (h *Handler) parseLeaguePath(ctx context.Context, r *http.Request) (leaguePathRequest, error) {
	leagueID, err := pathInt64(r, "leagueId")
	if err != nil {
		return leaguePathRequest{}, err
	}
	req := leaguePathRequest{LeagueID: leagueID}
	if err := h.validateRequest(ctx, req); err != nil {
		return leaguePathRequest{}, err
	}
	return req, nil
}
