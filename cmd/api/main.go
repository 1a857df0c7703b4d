package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aid-distribution-ledger/config"
	"aid-distribution-ledger/internal/adapter/gateway"
	httpHandler "aid-distribution-ledger/internal/adapter/http/handler"
	pgStorage "aid-distribution-ledger/internal/adapter/storage/postgres"
	redisStorage "aid-distribution-ledger/internal/adapter/storage/redis"
	"aid-distribution-ledger/internal/core/ports"
	"aid-distribution-ledger/internal/service"
	"aid-distribution-ledger/pkg/logger"

	migrate "github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Aid Distribution Ledger")

	adminAccount, err := uuid.Parse(cfg.Governance.AdminAccount)
	if err != nil {
		log.Fatal().Err(err).Msg("governance.admin_account must be a UUID")
	}
	principal, err := uuid.Parse(cfg.Governance.Principal)
	if err != nil {
		log.Fatal().Err(err).Msg("governance.principal must be a UUID")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Apply pending schema migrations before serving traffic.
	if err := runMigrations(cfg.Database.DSN(), log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	roleRepo := pgStorage.NewRoleRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	itemRepo := pgStorage.NewItemRepo(pool)
	redemptionRepo := pgStorage.NewRedemptionRepo(pool)
	settlementRepo := pgStorage.NewSettlementRepo(pool)
	proposalRepo := pgStorage.NewProposalRepo(pool)
	paramsRepo := pgStorage.NewParamsRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// External collaborators
	httpClient := &http.Client{Timeout: cfg.Gateway.Timeout}
	settlementGateway := gateway.NewSettlementGateway(cfg.Gateway.SettlementURL, httpClient, log)
	membershipChecker := gateway.NewMembershipChecker(cfg.Gateway.MembershipURL, httpClient, log)

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	oracle := service.NewHashCredibilityOracle()

	// Business services
	roleSvc := service.NewRoleService(roleRepo, paramsRepo, transactor, adminAccount, log)
	ledgerSvc := service.NewLedgerService(balanceRepo, roleRepo, itemRepo, settlementGateway, transactor, log)
	catalogSvc := service.NewCatalogService(itemRepo, roleRepo, transactor, log)
	redemptionSvc := service.NewRedemptionService(
		balanceRepo,
		roleRepo,
		itemRepo,
		redemptionRepo,
		settlementRepo,
		settlementGateway,
		transactor,
		log,
	)
	governanceSvc := service.NewGovernanceService(
		proposalRepo,
		roleRepo,
		paramsRepo,
		membershipChecker,
		oracle,
		transactor,
		principal,
		cfg.Governance.VotingPeriod,
		log,
	)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RoleSvc:        roleSvc,
		LedgerSvc:      ledgerSvc,
		CatalogSvc:     catalogSvc,
		RedemptionSvc:  redemptionSvc,
		GovernanceSvc:  governanceSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// runMigrations applies all pending up migrations from the migrations
// directory over a temporary database/sql connection (pgx stdlib driver,
// compatible with the main pool).
func runMigrations(dsn string, log zerolog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close() //nolint:errcheck

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info().Msg("Database migrations applied")
	return nil
}
