package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime configuration for the service.
type Config struct {
	Addr           string   `env:"ADDR,default=:5000"`
	DBDriver       string   `env:"DB_DRIVER,default=sqlite"`
	DBDSN          string   `env:"DB_DSN,default=file:authd.db"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:5173"`
	NATSURL        string   `env:"NATS_URL"`
	OTLPEndpoint   string   `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	RateLimitRPM   int      `env:"RATE_LIMIT_RPM,default=300"`
	SeedFile       string   `env:"SEED_FILE"`
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	return loadWith(ctx, envconfig.OsLookuper())
}

func loadWith(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
