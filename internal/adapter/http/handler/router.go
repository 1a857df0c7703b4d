package handler

import (
	"aid-distribution-ledger/internal/adapter/http/middleware"
	redisStore "aid-distribution-ledger/internal/adapter/storage/redis"
	"aid-distribution-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RoleSvc        ports.RoleService
	LedgerSvc      ports.LedgerService
	CatalogSvc     ports.CatalogService
	RedemptionSvc  ports.RedemptionService
	GovernanceSvc  ports.GovernanceService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Token bootstrap (no auth; front with deployment-level auth) ---
	authHandler := NewAuthHandler(deps.TokenSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/token", authHandler.IssueToken)
	}

	// All remaining routes carry a bearer token. The token fixes the
	// caller's identity only; each service re-resolves the caller's role
	// per call.
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	adminHandler := NewAdminHandler(deps.RoleSvc)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/roles", rl("admin"), adminHandler.SetRole)
		admin.POST("/governance-authority", rl("admin"), adminHandler.SetGovernanceAuthority)
	}

	accounts := v1.Group("/accounts", jwtAuth)
	{
		accounts.GET("/:id", adminHandler.GetAccount)
	}

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	ledger := v1.Group("/ledger", jwtAuth)
	{
		ledger.POST("/deposits", rl("ledger"), ledgerHandler.Deposit)
		ledger.POST("/withdrawals", rl("ledger"), ledgerHandler.Withdraw)
		ledger.POST("/allocations", rl("ledger"), ledgerHandler.Allocate)
		ledger.POST("/conversions", rl("ledger"), ledgerHandler.Convert)
		ledger.POST("/grants", rl("ledger"), ledgerHandler.Grant)
		ledger.GET("/balance", ledgerHandler.Balance)
		ledger.GET("/supply/:asset", ledgerHandler.Supply)
	}

	catalogHandler := NewCatalogHandler(deps.CatalogSvc)
	items := v1.Group("/items", jwtAuth)
	{
		items.POST("", rl("catalog"), catalogHandler.CreateItem)
		items.GET("/:id", catalogHandler.GetItem)
	}

	redemptionHandler := NewRedemptionHandler(deps.RedemptionSvc)
	redemptions := v1.Group("/redemptions", jwtAuth)
	{
		redemptions.POST("", rl("redemptions"), redemptionHandler.Redeem)
	}

	settlements := v1.Group("/settlements", jwtAuth)
	{
		settlements.POST("/withdrawals", rl("settlements"), redemptionHandler.StoreWithdraw)
		settlements.GET("/pending", redemptionHandler.Pending)
	}

	governanceHandler := NewGovernanceHandler(deps.GovernanceSvc)
	governance := v1.Group("/governance", jwtAuth)
	{
		governance.POST("/proposals", rl("governance"), governanceHandler.Propose)
		governance.POST("/proposals/:id/votes", rl("governance"), governanceHandler.CastVote)
		governance.POST("/proposals/:id/execute", rl("governance"), governanceHandler.Execute)
		governance.GET("/proposals/:id", governanceHandler.GetProposal)
	}

	return r
}
