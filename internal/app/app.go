package app

import (
	"log/slog"

	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	VerifyUpgrade *usecase.VerifyUpgrade
	ListNetworks  *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	verifyUpgrade *usecase.VerifyUpgrade,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:        cfg,
		Logger:        logger,
		VerifyUpgrade: verifyUpgrade,
		ListNetworks:  listNetworks,
	}, nil
}
