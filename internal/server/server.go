package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"levoja-backoffice/internal/config"
	custommiddleware "levoja-backoffice/internal/middleware"
	"levoja-backoffice/internal/service"
	"levoja-backoffice/internal/store"
	"levoja-backoffice/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "backoffice:ratelimit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize stores; everything lives in memory and resets on restart
	customerStore := store.NewCustomerStore(store.SeedCustomers())
	productStore := store.NewProductStore(store.SeedProducts())
	orderStore := store.NewOrderStore(store.SeedOrders())
	userStore := store.NewUserStore()
	refreshTokenStore := store.NewRefreshTokenStore()

	// Initialize services
	userService := service.NewUserService(
		userStore,
		refreshTokenStore,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessExpiry)*time.Minute,
		time.Duration(cfg.Auth.RefreshExpiry)*24*time.Hour,
	)
	orderService := service.NewOrderService(orderStore, customerStore, productStore)
	productService := service.NewProductService(productStore)
	customerService := service.NewCustomerService(customerStore)

	// Provision the operator account from configuration
	if err := userService.SeedAdmin(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminName, cfg.Auth.AdminPasswordHash); err != nil {
		return nil, fmt.Errorf("failed to provision admin account: %w", err)
	}

	// Initialize handlers
	userHandler := transport.NewUserHandler(userService, logger)
	orderHandler := transport.NewOrderHandler(orderService, logger)
	productHandler := transport.NewProductHandler(productService, logger)
	customerHandler := transport.NewCustomerHandler(customerService, logger)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.Auth.JWTSecret, logger)
	adminMiddleware := custommiddleware.RequireAdmin(logger)

	// Register routes
	userHandler.RegisterRoutes(router, authMiddleware)
	orderHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)
	productHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)
	customerHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  redisClient,
	}

	return server, nil
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
