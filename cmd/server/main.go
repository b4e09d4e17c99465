package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/adwell/backend/internal/config"
	"github.com/adwell/backend/internal/handler"
	appMiddleware "github.com/adwell/backend/internal/middleware"
	"github.com/adwell/backend/internal/repository"
	"github.com/adwell/backend/internal/service"
	"github.com/adwell/backend/pkg/payment"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if present (for local development)
	loadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log.Logger = config.NewLogger(cfg)

	ctx := context.Background()

	// Initialize database
	db, err := repository.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database error")
	}
	defer db.Close()

	if err := repository.RunMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migration error")
	}
	log.Info().Msg("database connected & migrated")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	adRepo := repository.NewAdRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	sessionRepo := repository.NewCheckoutSessionRepository(db)

	// Payment gateway: real sessions only when both Stripe keys are set.
	var gateway payment.Gateway
	simulated := cfg.SimulatedCheckout()
	if simulated {
		gateway = payment.NewMockGateway()
		log.Warn().Msg("stripe keys missing, checkout runs in simulated mode")
	} else {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	}

	// Services
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPassword, userRepo)
	if err := authSvc.SeedAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin seed error")
	}

	couponSvc := service.NewCouponService(couponRepo)
	pricingSvc := service.NewPricingService(couponSvc)
	adSvc := service.NewAdService(adRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	checkoutSvc := service.NewCheckoutService(pricingSvc, adSvc, sessionRepo, gateway, cfg.SiteURL, simulated)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	adHandler := handler.NewAdHandler(adSvc)
	categoryHandler := handler.NewCategoryHandler(categorySvc)
	couponHandler := handler.NewCouponHandler(couponSvc)
	priceHandler := handler.NewPriceHandler(pricingSvc)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc)
	userHandler := handler.NewUserHandler(authSvc)
	adminHandler := handler.NewAdminHandler(db)
	healthHandler := handler.NewHealthHandler(db)

	// Build router
	r := chi.NewRouter()

	// Global middleware
	r.Use(appMiddleware.Recovery)
	r.Use(appMiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Webhook-Signature"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Global rate limiter (20 req/sec per IP, burst of 40)
	globalRL := appMiddleware.NewRateLimiter(20, 40)
	r.Use(globalRL.Middleware())

	// Public routes (no auth)
	r.Get("/health", healthHandler.Check)
	r.Get("/api/plans", priceHandler.Plans)
	r.Get("/api/price", priceHandler.Quote)
	r.Get("/api/categories", categoryHandler.List)
	r.Get("/api/ads", adHandler.List)
	r.Get("/api/ads/{id}", adHandler.GetByID)
	r.Post("/api/stripe/checkout", checkoutHandler.Create)
	r.Post("/api/stripe/webhook", checkoutHandler.Webhook)

	// Auth routes
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.StrictRateLimiter())
		r.Post("/api/auth/register", authHandler.Register)
		r.Post("/api/auth/login", authHandler.Login)
	})

	// Protected API routes
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.Auth(authSvc))

		r.Post("/api/auth/logout", authHandler.Logout)
		r.Get("/api/auth/me", authHandler.Me)

		r.Post("/api/ads", adHandler.Create)
		r.Put("/api/ads/{id}", adHandler.Update)
		r.Delete("/api/ads/{id}", adHandler.Delete)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.AdminOnly)

			r.Get("/api/coupons", couponHandler.List)
			r.Post("/api/coupons", couponHandler.Create)
			r.Patch("/api/coupons/{code}", couponHandler.SetActive)

			r.Post("/api/categories", categoryHandler.Create)
			r.Patch("/api/categories/{slug}/color", categoryHandler.UpdateColor)

			r.Get("/api/admin/stats", adminHandler.GetStats)
			r.Get("/api/admin/users", userHandler.List)
			r.Patch("/api/admin/users/{id}", userHandler.Update)
			r.Delete("/api/admin/users/{id}", userHandler.Delete)
		})
	})

	// Start server
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info().Str("addr", addr).Msg("adwell backend listening")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

// loadDotEnv reads KEY=VALUE pairs from a .env file if one exists. Existing
// environment variables are never overridden.
func loadDotEnv() {
	f, err := os.Open(".env")
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
