package bootstrap

import (
	"producer-market/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies a config loaded before the container is built, so the
// storage driver can decide which persistence module is installed.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
