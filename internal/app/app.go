package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fpl-league-api/external/fpl"
	"github.com/riskibarqy/fpl-league-api/internal/config"
	"github.com/riskibarqy/fpl-league-api/internal/domain/snapshot"
	cachedrepo "github.com/riskibarqy/fpl-league-api/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fpl-league-api/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/fpl-league-api/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-league-api/internal/platform/cache"
	"github.com/riskibarqy/fpl-league-api/internal/platform/logging"
	"github.com/riskibarqy/fpl-league-api/internal/platform/resilience"
	"github.com/riskibarqy/fpl-league-api/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
)

// NewHTTPServer wires the service. The returned cleanup closes the database
// pool and must run after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	if cfg.DBAutoMigrate {
		if err := sqlstore.MigrateUp(cfg.DBDriver, DatabaseURL(cfg)); err != nil {
			return nil, nil, fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("database migrations applied", "driver", cfg.DBDriver)
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	fplClient := fpl.NewClient(fpl.ClientConfig{
		BaseURL:        cfg.FPLBaseURL,
		UserAgent:      cfg.FPLUserAgent,
		Headers:        cfg.FPLStaticHeaders,
		MaxAttempts:    cfg.FPLMaxAttempts,
		ConnectTimeout: cfg.FPLConnectTimeout,
		ReadTimeout:    cfg.FPLReadTimeout,
		WriteTimeout:   cfg.FPLWriteTimeout,
		Logger:         logger.With("component", "fpl_client"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		},
	})

	var snapshotRepo snapshot.Repository = sqlstore.NewSnapshotRepository(db)
	if store != nil {
		snapshotRepo = cachedrepo.NewSnapshotRepository(snapshotRepo, store)
	}
	standingsSvc := usecase.NewStandingsService(fplClient, store, cfg.FPLMaxStandingsPages, logger)
	completionSvc := usecase.NewCompletionService(fplClient, logger)
	autosnapshotSvc := usecase.NewAutosnapshotService(completionSvc, standingsSvc, snapshotRepo, cfg.AutosnapshotTimeout, logger)
	historySvc := usecase.NewHistoryService(snapshotRepo)
	teamSvc := usecase.NewTeamService(fplClient, fplClient, store)

	handler := httpapi.NewHandler(standingsSvc, autosnapshotSvc, historySvc, teamSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AutosnapshotToken:  cfg.AutosnapshotToken,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, db.Close, nil
}

// DatabaseURL is cfg.DBURL with driver specific query flags applied.
func DatabaseURL(cfg config.Config) string {
	if cfg.DBDriver != config.DBDriverPostgres {
		return cfg.DBURL
	}
	return normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
}

// OpenDB opens a traced pool for the configured snapshot database.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := DatabaseURL(cfg)
	opts := []otelsql.Option{
		otelsql.WithDBSystem(cfg.DBDriver),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dsn); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := sqlstore.Open(cfg.DBDriver, dsn, opts...)
	if err != nil {
		return nil, err
	}
	return db, nil
}
