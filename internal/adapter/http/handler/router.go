package handler

import (
	"virtual-payment-gateway/internal/adapter/http/middleware"
	redisStore "virtual-payment-gateway/internal/adapter/storage/redis"
	"virtual-payment-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	AccountSvc     ports.AccountResolver
	PaymentSvc     ports.PaymentOrchestrator
	WalletLedger   ports.WalletLedger
	WalletSvc      ports.WalletLifecycle
	PinSvc         ports.PinAuthorizer
	TransactionSvc ports.TransactionLedger
	BankSvc        ports.BankDirectory
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
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check verifying PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

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

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/token", rl("auth_token"), authHandler.IssueToken)
	}

	// --- JWT-authenticated operator routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	accountHandler := NewAccountHandler(deps.AccountSvc)
	accounts := v1.Group("/accounts", jwtAuth)
	{
		accounts.POST("/verify", rl("verify"), accountHandler.Verify)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := v1.Group("/payments", jwtAuth)
	{
		payments.POST("", rl("payments"), paymentHandler.MakePayment)
	}

	walletHandler := NewWalletHandler(deps.WalletLedger, deps.WalletSvc)
	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.GET("/balance", walletHandler.GetBalance)
		wallets.POST("", rl("wallets"), walletHandler.Create)
		wallets.DELETE("/:id", rl("wallets"), walletHandler.Delete)
		wallets.POST("/inflow", rl("wallets"), walletHandler.Inflow)
	}

	pinHandler := NewPinHandler(deps.PinSvc)
	pins := v1.Group("/pins", jwtAuth)
	{
		pins.POST("/verify", pinHandler.Verify)
		pins.POST("/change", pinHandler.Change)
	}

	transactionHandler := NewTransactionHandler(deps.TransactionSvc)
	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("", transactionHandler.List)
		transactions.GET("/:reference", transactionHandler.Get)
		transactions.GET("/:reference/status", transactionHandler.GetStatus)
	}

	bankHandler := NewBankHandler(deps.BankSvc)
	banks := v1.Group("/banks", jwtAuth)
	{
		banks.POST("", bankHandler.Upsert)
		banks.POST("/sync", bankHandler.Sync)
	}

	return r
}
