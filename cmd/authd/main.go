package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/config"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/db"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/events"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/handlers"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/otel"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/store"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     version.Name,
		Short:   "user/role administration service",
		Version: version.Version,
	}
	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run migrations and serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}

			shutdownTracing, err := otel.Init(ctx, version.Name, cfg.OTLPEndpoint)
			if err != nil {
				return err
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracing(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("shutdown tracing")
				}
			}()

			database, err := db.Connect(ctx, cfg.DBDriver, cfg.DBDSN)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(database); err != nil {
					log.Error().Err(err).Msg("close database")
				}
			}()

			if err := db.Migrate(ctx, database); err != nil {
				return err
			}

			if cfg.SeedFile != "" {
				fixture, err := db.LoadFixture(cfg.SeedFile)
				if err != nil {
					return err
				}
				if err := db.Seed(ctx, database, fixture); err != nil {
					return err
				}
			}

			publisher, err := events.Connect(cfg.NATSURL)
			if err != nil {
				return err
			}
			defer publisher.Close()

			api := handlers.New(store.New(database, publisher))
			handler := api.Routes(handlers.RouterOptions{
				AllowedOrigins: cfg.AllowedOrigins,
				RateLimitRPM:   cfg.RateLimitRPM,
			})
			if cfg.OTLPEndpoint != "" {
				handler = otelhttp.NewHandler(handler, version.Name)
			}

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", cfg.Addr).Msg("starting authd")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "bootstrap the schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}

			database, err := db.Connect(ctx, cfg.DBDriver, cfg.DBDSN)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(database); err != nil {
					log.Error().Err(err).Msg("close database")
				}
			}()

			if err := db.Migrate(ctx, database); err != nil {
				return err
			}
			log.Info().Msg("schema up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "load roles and users from a fixture file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.SeedFile
			}

			fixture, err := db.LoadFixture(file)
			if err != nil {
				return err
			}

			database, err := db.Connect(ctx, cfg.DBDriver, cfg.DBDSN)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(database); err != nil {
					log.Error().Err(err).Msg("close database")
				}
			}()

			if err := db.Migrate(ctx, database); err != nil {
				return err
			}
			if err := db.Seed(ctx, database, fixture); err != nil {
				return err
			}
			log.Info().Int("roles", len(fixture.Roles)).Int("users", len(fixture.Users)).Msg("seeded")
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "fixture file (YAML)")
	return cmd
}
