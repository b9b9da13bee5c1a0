package http

import (
	"os"
	"strconv"
	"time"

	"todo_webapp/internal/config"
	"todo_webapp/internal/http/handlers"
	"todo_webapp/internal/http/middleware"
	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	h := handlers.NewHandler(db, tokens)
	healthHandler := handlers.NewHealthHandler(db, version)

	// limits come from env with safe defaults
	apiRateLimit := envInt("API_RATE_LIMIT", 60)
	apiRateWindow := envWindow("API_RATE_WINDOW_SECONDS", time.Minute)
	authRateLimit := envInt("AUTH_RATE_LIMIT", 5)
	authRateWindow := envWindow("AUTH_RATE_WINDOW_SECONDS", time.Minute)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, tokens, authRateLimit, authRateWindow)

	// Legacy unversioned /api routes kept for older clients
	api := r.Group("/api")
	api.Use(middleware.RateLimit(apiRateLimit, apiRateWindow))
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h, tokens, authRateLimit, authRateWindow)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, tokens *service.TokenService, authRateLimit int, authRateWindow time.Duration) {
	// Registration and login are the only routes outside the auth
	// gate; they carry a stricter rate limit instead.
	authRL := middleware.RateLimit(authRateLimit, authRateWindow)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authRL, h.Register)
		auth.POST("/login", authRL, h.Login)
	}

	api.GET("/me", middleware.JWT(tokens), h.Me)

	todos := api.Group("/todos")
	todos.Use(middleware.JWT(tokens))
	{
		todos.GET("", h.ListTasks)
		todos.POST("", h.CreateTask)
		todos.PUT("/:id", h.UpdateTask)
		todos.DELETE("/:id", h.DeleteTask)
	}
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envWindow(name string, def time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
