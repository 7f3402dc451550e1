package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"brewhouse/internal/config"
	"brewhouse/internal/database"
	custommiddleware "brewhouse/internal/middleware"
	"brewhouse/internal/repository"
	"brewhouse/internal/service"
	"brewhouse/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env != "production"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Optional Redis-backed rate limiting
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
			KeyPrefix:         "brewhouse_rate_limit",
		}, logger))
	}

	// Health endpoint stays open; everything under /api/v3 requires a token
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, db.Health(r.Context()))
	})

	// Initialize repositories
	beerRepo := repository.NewBeerRepository(db.Database())
	customerRepo := repository.NewCustomerRepository(db.Database())

	// Initialize services
	beerService := service.NewBeerService(beerRepo)
	customerService := service.NewCustomerService(customerRepo)

	// Initialize handlers
	beerHandler := transport.NewBeerHandler(beerService, logger)
	customerHandler := transport.NewCustomerHandler(customerService, logger)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)

	// Register routes
	beerHandler.RegisterRoutes(router, authMiddleware)
	customerHandler.RegisterRoutes(router, authMiddleware)

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
		db:     db,
	}

	return server
}

// Close releases server resources, including the store client
func (s *Server) Close(ctx context.Context) error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(ctx); err != nil {
			s.logger.Error("Failed to close store connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
