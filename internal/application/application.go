package application

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/read-config/internal/config"
	"github.com/eugenenazirov/read-config/internal/lookup"
	"github.com/eugenenazirov/read-config/internal/source"
)

// App encapsulates the lookup dependencies.
type App struct {
	source   source.Source
	resolver lookup.Resolver
	logger   *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if cfg.ConfigFile == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	src := source.NewFile(cfg.ConfigFile)

	return &App{
		source:   src,
		resolver: lookup.New(src, logger),
		logger:   logger,
	}, nil
}

// Run resolves key and writes the value followed by a newline to out.
func (a *App) Run(ctx context.Context, key string, out io.Writer) error {
	a.logger.Debug("resolving key",
		zap.String("key", key),
		zap.String("path", a.source.Location()),
	)

	value, err := a.resolver.Resolve(ctx, key)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, value); err != nil {
		return fmt.Errorf("write value: %w", err)
	}
	return nil
}

// ConfigFile returns the path of the document being read.
func (a *App) ConfigFile() string {
	return a.source.Location()
}
