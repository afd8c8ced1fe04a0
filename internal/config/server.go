package config

import (
	"YogaPoseAPI/database/postgres"
	scoringHandler "YogaPoseAPI/internal/api/scoring/handler"
	scoringRepository "YogaPoseAPI/internal/api/scoring/repository"
	scoringService "YogaPoseAPI/internal/api/scoring/service"
	"YogaPoseAPI/internal/config/settings"
	"YogaPoseAPI/internal/middleware"
	"YogaPoseAPI/internal/poseconfig"
	"YogaPoseAPI/pkg/detector"
	"YogaPoseAPI/pkg/redis"
	"YogaPoseAPI/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine          *fiber.App
	db              *sqlx.DB
	log             *logrus.Logger
	middleware      middleware.Middleware
	validator       *validator.Validate
	utils           utils.IUtils
	handlers        []handler
	redisServer     redis.IRedis
	detectorClient  detector.IDetector
	poseRegistry    *poseconfig.Registry
	scoringSettings settings.ScoringSettings
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.poseRegistry == nil {
		return nil, fmt.Errorf("pose registry is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithDetectorClient(client detector.IDetector) ServerOption {
	return func(s *Server) error {
		s.detectorClient = client
		return nil
	}
}

// WithPoseRegistry builds the static pose table and validates every entry.
// A malformed entry aborts startup.
func WithPoseRegistry() ServerOption {
	return func(s *Server) error {
		registry, err := poseconfig.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to build pose registry: %v", err)
			}
			return fmt.Errorf("failed to build pose registry: %w", err)
		}
		s.poseRegistry = registry
		return nil
	}
}

func WithScoringSettings() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before scoring settings")
		}
		s.scoringSettings = settings.NewScoringSettings(s.log)
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Scoring Domain
	scoringRepo := scoringRepository.New(s.db, s.log)
	scoringServices := scoringService.New(s.log, s.poseRegistry, s.scoringSettings, scoringRepo, s.redisServer, s.detectorClient, s.utils)
	scoringHandlers := scoringHandler.New(s.log, s.validator, s.middleware, scoringServices, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, scoringHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.detectorClient != nil {
			s.detectorClient.CloseConnection()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
