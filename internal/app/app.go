// Package app assembles the service from configuration: repositories,
// use case services, external clients, and the HTTP server.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/draftpool/confidence-pool/external/draftwire"
	"github.com/draftpool/confidence-pool/external/jobqueue"
	"github.com/draftpool/confidence-pool/internal/config"
	"github.com/draftpool/confidence-pool/internal/domain/draftresult"
	"github.com/draftpool/confidence-pool/internal/domain/draftstate"
	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/domain/player"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
	"github.com/draftpool/confidence-pool/internal/infrastructure/account/authgate"
	"github.com/draftpool/confidence-pool/internal/infrastructure/repository/memory"
	"github.com/draftpool/confidence-pool/internal/infrastructure/repository/postgres"
	"github.com/draftpool/confidence-pool/internal/interfaces/httpapi"
	"github.com/draftpool/confidence-pool/internal/platform/cache"
	idgen "github.com/draftpool/confidence-pool/internal/platform/id"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
	"github.com/draftpool/confidence-pool/internal/platform/resilience"
	"github.com/draftpool/confidence-pool/internal/usecase"
)

type repositories struct {
	leagues     league.Repository
	predictions prediction.Repository
	profiles    userprofile.Repository
	players     player.Repository
	results     draftresult.Repository
	states      draftstate.Repository
	mockDrafts  mockdraft.Repository
}

// NewHTTPServer wires the full service and returns the server plus a cleanup
// function that releases pooled resources.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.predictions, repos.profiles, idgen.NewRandomGenerator(), logger)
	predictionSvc := usecase.NewPredictionService(repos.leagues, repos.predictions, repos.states, repos.results, logger)
	standingsSvc := usecase.NewStandingsService(repos.leagues, repos.predictions, repos.results, repos.states, repos.profiles, cacheStore, logger)
	mockDraftSvc := usecase.NewMockDraftService(repos.mockDrafts, repos.results, logger)
	oracleSvc := usecase.NewOracleService(repos.results, repos.states, cacheStore, logger)
	dashboardSvc := usecase.NewDashboardService(repos.leagues, standingsSvc, logger)
	playerSvc := usecase.NewPlayerService(repos.players, logger)
	refreshSvc := usecase.NewRefreshService(repos.leagues, standingsSvc, logger)

	var feedSvc *usecase.FeedService
	if cfg.DraftWireEnabled {
		feedClient := draftwire.NewClient(draftwire.ClientConfig{
			BaseURL:       cfg.DraftWireBaseURL,
			Token:         cfg.DraftWireToken,
			Timeout:       cfg.DraftWireTimeout,
			MaxRetries:    cfg.DraftWireMaxRetries,
			BoardFetchers: cfg.DraftWireBoardFetchers,
			Logger:        logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.DraftWireCircuitEnabled,
				FailureThreshold: cfg.DraftWireCircuitFailureCount,
				OpenTimeout:      cfg.DraftWireCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.DraftWireCircuitHalfOpenMaxReq,
			},
		})
		feedSvc = usecase.NewFeedService(feedClient, repos.players, mockDraftSvc, logger)
	}

	if cfg.QStashEnabled {
		publisher := jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
		oracleSvc.SetRefreshQueue(publisher)
	}

	verifier := authgate.NewClient(authgate.ClientConfig{
		BaseURL:        cfg.AuthGateBaseURL,
		IntrospectPath: cfg.AuthGateIntrospectPath,
		Timeout:        cfg.AuthGateTimeout,
		TokenCacheTTL:  cfg.AuthGateTokenCacheTTL,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AuthGateCircuitEnabled,
			FailureThreshold: cfg.AuthGateCircuitFailureCount,
			OpenTimeout:      cfg.AuthGateCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AuthGateCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(
		leagueSvc,
		predictionSvc,
		standingsSvc,
		mockDraftSvc,
		oracleSvc,
		dashboardSvc,
		playerSvc,
		refreshSvc,
		feedSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanupErr := cleanup(context.Background())
		if cleanupErr != nil {
			logger.Warn("cleanup after failed wiring", "error", cleanupErr)
		}
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// newRepositories opens the postgres-backed stores when DB_URL is set and
// falls back to the seeded in-memory stores otherwise.
func newRepositories(cfg config.Config, logger *logging.Logger) (repositories, func(context.Context) error, error) {
	if cfg.DBURL == "" {
		logger.Info("database not configured, using seeded in-memory repositories")
		return repositories{
			leagues:     memory.NewLeagueRepository(memory.SeedLeagues()),
			predictions: memory.NewPredictionRepository(memory.SeedPredictions()),
			profiles:    memory.NewUserProfileRepository(memory.SeedProfiles()),
			players:     memory.NewPlayerRepository(memory.SeedPlayers()),
			results:     memory.NewDraftResultRepository(nil),
			states:      memory.NewDraftStateRepository(nil),
			mockDrafts:  memory.NewMockDraftRepository(memory.SeedMockDrafts()),
		}, func(context.Context) error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
			leagues:     postgres.NewLeagueRepository(db),
			predictions: postgres.NewPredictionRepository(db),
			profiles:    postgres.NewUserProfileRepository(db),
			players:     postgres.NewPlayerRepository(db),
			results:     postgres.NewDraftResultRepository(db),
			states:      postgres.NewDraftStateRepository(db),
			mockDrafts:  postgres.NewMockDraftRepository(db),
		}, func(context.Context) error {
			return db.Close()
		}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
