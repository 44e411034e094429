package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/remotefake"
	"weatherdash.app/pkg/logger"
)

type settings struct {
	Addr string `envconfig:"MOCK_REMOTE_ADDR" default:":8081"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}
	logger.New().WithField("component", "mock-remote").SetDefault()

	var cfg settings
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	fake := remotefake.New(
		weather.NewCityParams{Name: "London", CountryCode: "GB"},
		weather.NewCityParams{Name: "Paris", CountryCode: "FR"},
		weather.NewCityParams{Name: "Berlin", CountryCode: "DE"},
	)

	slog.Info("Mock remote weather API starting", "addr", cfg.Addr)
	if err := fake.Router().Run(cfg.Addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
