package config

import (
	blogHandler "BlogGolang/internal/api/blog/handler"
	blogRepository "BlogGolang/internal/api/blog/repository"
	blogService "BlogGolang/internal/api/blog/service"
	userHandler "BlogGolang/internal/api/user/handler"
	userRepository "BlogGolang/internal/api/user/repository"
	userService "BlogGolang/internal/api/user/service"
	"BlogGolang/internal/metrics"
	"BlogGolang/internal/middleware"
	"BlogGolang/pkg/bcrypt"
	"BlogGolang/pkg/response"
	"BlogGolang/pkg/utils"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const WelcomeMessage = "Welcome to the blog API"

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	metrics     *metrics.Collector
	handlers    []handler
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
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.bcryptUtils == nil {
		server.bcryptUtils = bcrypt.New()
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

// WithDatabase injects the connection pool. The server never closes it; the
// owner does, after Shutdown.
func WithDatabase(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		if db == nil {
			return fmt.Errorf("database pool is nil")
		}
		s.db = db
		return nil
	}
}

func WithMiddleware(opts ...middleware.Option) ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, opts...)
		return nil
	}
}

func WithMetrics(collector *metrics.Collector) ServerOption {
	return func(s *Server) error {
		s.metrics = collector
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils(b bcrypt.IBcrypt) ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = b
		return nil
	}
}

// RegisterHandler installs the middleware chain and every route. It must be
// called once, before Run or App.
func (s *Server) RegisterHandler() {
	s.engine.Use(recover.New())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	if s.metrics != nil {
		s.engine.Use(s.metrics.Middleware())
		s.engine.Get("/metrics", s.metrics.Handler())
	}
	s.engine.Use(s.middleware.NewRateLimiter)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogsService(s.log, blogRepo)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices, s.utils)

	// User Domain
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.NewUserService(s.log, userRepo, s.bcryptUtils)
	userHandlers := userHandler.New(s.log, userServices, s.validator, s.middleware, s.utils)

	s.setupWelcome()
	s.setupHealthCheck()
	s.handlers = append(s.handlers, blogHandlers, userHandlers)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

// App exposes the configured fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.engine.ShutdownWithTimeout(timeout)
}

func (s *Server) setupWelcome() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(response.Message{
			Data: WelcomeMessage,
		})
	})
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/healthz", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(c); err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Health check failed")
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}

		return ctx.JSON(fiber.Map{
			"status": "ok",
		})
	})
}
