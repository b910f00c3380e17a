package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"virtual-payment-gateway/config"
	"virtual-payment-gateway/internal/adapter/gateway"
	httpHandler "virtual-payment-gateway/internal/adapter/http/handler"
	"virtual-payment-gateway/internal/adapter/notify"
	pgStorage "virtual-payment-gateway/internal/adapter/storage/postgres"
	redisStorage "virtual-payment-gateway/internal/adapter/storage/redis"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/internal/service"
	"virtual-payment-gateway/pkg/logger"
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
		Msg("Starting Virtual Payment Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	bankRepo := pgStorage.NewBankRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	pinRepo := pgStorage.NewPinRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	recordCache := redisStorage.NewRecordCache(rdb)
	realtime := redisStorage.NewRealtimePublisher(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.JWTIssuer)

	// Gateway credentials are resolved in layers: primary env var, fallback
	// env var, static config token, then the encrypted settings row.
	creds := service.NewChainCredentialResolver(log,
		service.NewEnvCredentialProvider(cfg.Credential.EnvVar),
		service.NewEnvCredentialProvider(cfg.Credential.FallbackEnvVar),
		service.NewConfigCredentialProvider(cfg.Credential.Token),
		service.NewSettingsCredentialProvider(settingsRepo, encSvc, cfg.Credential.SettingsKey),
	)

	// Outbound adapters
	gatewayClient := gateway.NewClient(cfg.Gateway, log)
	notifier := notify.NewAdminNotifier(cfg.Admin, log)

	// Initialize business services
	authSvc := service.NewAuthService(cfg.Auth, hashSvc, tokenSvc, log)
	bankSvc := service.NewBankDirectory(bankRepo, gatewayClient, creds, log)
	accountSvc := service.NewAccountService(bankSvc, gatewayClient, creds, realtime, log)
	walletSvc := service.NewWalletService(walletRepo, txRepo, pinRepo, transactor, gatewayClient, creds, notifier, cfg.Gateway, log)
	pinSvc := service.NewPinService(pinRepo, walletRepo, encSvc, log)
	transactionSvc := service.NewTransactionService(txRepo, recordCache, gatewayClient, creds, realtime, log)
	paymentSvc := service.NewPaymentService(walletSvc, pinSvc, bankSvc, gatewayClient, creds, realtime, cfg.Gateway, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AccountSvc:     accountSvc,
		PaymentSvc:     paymentSvc,
		WalletLedger:   walletSvc,
		WalletSvc:      walletSvc,
		PinSvc:         pinSvc,
		TransactionSvc: transactionSvc,
		BankSvc:        bankSvc,
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
