package bootstrap

import (
	"producer-market/cmd/bootstrap/components"
	"producer-market/internal/pkg/config"

	"go.uber.org/fx"
)

// Module wires the whole application for cfg. The postgres pool and its
// migrations are only part of the graph when the postgres driver is selected.
func Module(cfg config.Config) fx.Option {
	persistence := components.MemoryModule
	if cfg.UsesPostgres() {
		persistence = fx.Options(DBModule, components.PostgresModule)
	}
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		persistence,
		components.UseCaseModule,
		components.HandlerModule,
	)
}
