package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/expensify-app/expensify-backend/internal/config"
	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/gemini"
	"github.com/expensify-app/expensify-backend/internal/handler"
	"github.com/expensify-app/expensify-backend/internal/middleware"
	"github.com/expensify-app/expensify-backend/internal/repository/kv"
	"github.com/expensify-app/expensify-backend/internal/repository/postgres"
	"github.com/expensify-app/expensify-backend/internal/service"
	"github.com/expensify-app/expensify-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize storage
	store, err := postgres.NewKVStore(context.Background(), pool)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key-value store")
	}

	// Initialize repositories
	budgetRepo := kv.NewBudgetRepository(store)
	expenseRepo := kv.NewExpenseRepository(store)
	userRepo := kv.NewUserRepository(store)

	// Initialize the Gemini generator; the app runs without one, with
	// insight generation reporting the missing key instead
	var generator domain.Generator
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		generator = client
		log.Info().Str("model", cfg.GeminiModel).Msg("Gemini client configured")
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, insight generation is disabled")
	}

	// WebSocket hub for the data-change event feed
	hub := websocket.NewHub()

	// Initialize services
	aggregator := service.NewAggregationService()
	budgetService := service.NewBudgetService(budgetRepo, expenseRepo, hub)
	expenseService := service.NewExpenseService(expenseRepo, budgetRepo, hub)
	userService := service.NewUserService(userRepo, store, hub)
	dashboardService := service.NewDashboardService(budgetRepo, expenseRepo, aggregator)
	analyticsService := service.NewAnalyticsService(budgetRepo, expenseRepo, aggregator)
	insightService := service.NewInsightService(generator, aggregator)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(userService)
	budgetHandler := handler.NewBudgetHandler(budgetService, expenseService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	insightHandler := handler.NewInsightHandler(insightService, budgetService, expenseService, hub)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Rate limiter for the insight route
	insightLimiter := middleware.NewRateLimiter()
	defer insightLimiter.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, insightLimiter, profileHandler, budgetHandler, expenseHandler, dashboardHandler, analyticsHandler, insightHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
