//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/upgrade-audit/internal/adapters"
	"github.com/trebuchet-org/upgrade-audit/internal/config"
	"github.com/trebuchet-org/upgrade-audit/internal/logging"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		config.ProvideNetworkResolver,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewVerifyUpgrade,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
