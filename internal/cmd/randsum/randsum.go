// Package randsum parses randsum command flags and runs the report pass.
package randsum

import (
	"context"
	"flag"
	"io"
	"os"

	"go.opentelemetry.io/otel"

	entrypoint "github.com/louisbranch/randsum/internal/platform/cmd"
	"github.com/louisbranch/randsum/internal/randarray"
	"github.com/louisbranch/randsum/internal/random"
)

// Config holds randsum command configuration.
type Config struct {
	Seed    int64 `env:"RANDSUM_SEED"`
	Verbose bool  `env:"RANDSUM_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = current time)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "print the chosen seed to stderr")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates a report and writes it to standard output.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRandsum, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdout)
	})
}

func run(ctx context.Context, cfg Config, w io.Writer) error {
	_, span := otel.Tracer(entrypoint.ServiceRandsum).Start(ctx, "report")
	defer span.End()

	rng := random.NewSeeded(cfg.Seed, cfg.Verbose)
	report, err := randarray.Generate(rng)
	if err != nil {
		return err
	}
	return randarray.WriteReport(w, report)
}
