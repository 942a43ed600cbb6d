package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"producer-market/cmd/bootstrap"
	"producer-market/internal/infra/db"
	"producer-market/internal/pkg/config"
	"producer-market/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug output because of a missing setting.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "producer-market",
		Short:         "Marketplace API for producers, buyers and price negotiations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

// @title           producer-market
// @version         1.0
// @description     Offers, orders and buyer/producer price negotiations.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode(), "storage", cfg.Storage.Driver)
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}

func serve(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	app := fx.New(
		bootstrap.Module(cfg),
		fx.Invoke(startServer),
	)

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
	return nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	run := func(fn func(*db.Migrator) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := requirePostgres(cfg, "migrations"); err != nil {
				return err
			}
			mg, err := db.NewMigrator(cfg.DB)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := mg.Close(); cerr != nil {
					slog.Warn("failed to close migrator", "error", cerr.Error())
				}
			}()
			return fn(mg)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  run((*db.Migrator).Up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			RunE:  run((*db.Migrator).Down),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: run(func(mg *db.Migrator) error {
				v, dirty, err := mg.Version()
				if err != nil {
					return err
				}
				fmt.Printf("version=%d dirty=%t\n", v, dirty)
				return nil
			}),
		},
	)
	return cmd
}

func requirePostgres(cfg config.Config, what string) error {
	if !cfg.UsesPostgres() {
		return fmt.Errorf("%s need STORAGE_DRIVER=%s, got %q", what, config.StorageDriverPostgres, cfg.Storage.Driver)
	}
	return nil
}

func seedCmd() *cobra.Command {
	var catalogSize int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users, offers and an order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			// the memory store would be dropped as soon as the command exits
			if err := requirePostgres(cfg, "seed"); err != nil {
				return err
			}

			var seeder *seed.Seeder
			app := fx.New(
				bootstrap.Module(cfg),
				fx.Provide(seed.NewSeeder),
				fx.Populate(&seeder),
				fx.NopLogger,
			)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				if err := app.Stop(context.Background()); err != nil {
					slog.Warn("failed to stop application", "error", err)
				}
			}()

			res, err := seeder.Run(cmd.Context(), catalogSize)
			if err != nil {
				return err
			}
			fmt.Printf("Seed done (%d offers, %d orders).\nLogins:\n  %s / %s\n  %s    / %s\n",
				res.Offers, res.Orders, seed.ProducerEmail, seed.DemoPassword, seed.BuyerEmail, seed.DemoPassword)
			return nil
		},
	}
	cmd.Flags().IntVar(&catalogSize, "catalog", 100, "number of generated catalog offers")
	return cmd
}
