package main

import (
	"BlogGolang/database/postgres"
	"BlogGolang/database/schema"
	"BlogGolang/internal/config"
	"BlogGolang/internal/metrics"
	"BlogGolang/internal/middleware"
	"BlogGolang/pkg/bcrypt"
	"BlogGolang/pkg/log"
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.NewLogger().Warnf("Error loading .env file: %v", err)
	}
	logger := log.NewLogger()

	ctx := context.Background()

	db, err := postgres.New(ctx, postgres.ConfigFromEnv())
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := schema.CreateTables(ctx, db); err != nil {
		db.Close()
		logger.Fatalf("Failed to create tables: %v", err)
	}

	server, err := config.NewServer(
		config.WithFiber(config.NewFiber(logger)),
		config.WithLogger(logger),
		config.WithValidator(config.NewValidator()),
		config.WithDatabase(db),
		config.WithMiddleware(middleware.WithRateLimit(
			rate.Limit(envInt("RATE_LIMIT_RPS", 50)),
			envInt("RATE_LIMIT_BURST", 100),
		)),
		config.WithMetrics(metrics.NewCollector()),
		config.WithBcryptUtils(bcrypt.New()),
		config.WithUtils(),
	)
	if err != nil {
		db.Close()
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(logger, server, db.Close, sigChan); err != nil {
		logger.Fatalf("Error starting server: %v", err)
	}

	logger.Info("Server stopped")
}

type runner interface {
	Run() error
	Shutdown(timeout time.Duration) error
}

// serve runs srv until it fails or a signal arrives, then shuts it down and
// calls closeDB. A Run failure is returned after cleanup.
func serve(logger *logrus.Logger, srv runner, closeDB func() error, sigChan <-chan os.Signal) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	logger.Info("Server started successfully")

	var runErr error
	select {
	case <-sigChan:
		logger.Info("Shutting down server...")
		if err := srv.Shutdown(shutdownTimeout); err != nil {
			logger.Errorf("Error shutting down server: %v", err)
		}
	case runErr = <-errChan:
	}

	if err := closeDB(); err != nil {
		logger.Errorf("Error closing database: %v", err)
	}

	return runErr
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
