package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fpl-league-api/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	AutosnapshotToken  string
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerLeagueRoutes(mux, handler)
	registerSnapshotRoutes(mux, handler, cfg.AutosnapshotToken)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}
