package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/correagss/personal-control-finance/internal/config"
	"github.com/correagss/personal-control-finance/internal/handler"
	"github.com/correagss/personal-control-finance/internal/repository"
	"github.com/correagss/personal-control-finance/internal/security"
	"github.com/correagss/personal-control-finance/internal/service"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// A local .env file supplies defaults for everything below
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	repo, err := repository.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	// Initialize layers
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	svc := service.NewService(repo, tokens, logger)
	h := handler.NewHandler(svc, logger)
	r := handler.NewRouter(h, svc)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
