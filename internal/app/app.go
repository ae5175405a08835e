package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/tfsheet/internal/ctxlog"
	"github.com/vk/tfsheet/internal/overrides"
	"github.com/vk/tfsheet/internal/registry"
	"github.com/vk/tfsheet/internal/render"
	"github.com/vk/tfsheet/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	config    *Config
	logger    *slog.Logger
	registry  *registry.Registry
	schemas   *schema.Store
	overrides *overrides.Config
	format    render.Format
}

// New constructs a fully initialized App: an isolated logger, the resource
// registry, and the optional schema and overrides collaborators loaded from
// disk.
func New(logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	ovr, err := overrides.Load(ctx, cfg.OverridesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}

	var schemas *schema.Store
	if cfg.SchemaPath != "" {
		schemas, err = schema.LoadFile(ctx, cfg.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load provider schema: %w", err)
		}
	}

	reg := registry.New()
	logger.Debug("Resource registry initialized.", "types", len(reg.Types()))

	return &App{
		config:    cfg,
		logger:    logger,
		registry:  reg,
		schemas:   schemas,
		overrides: ovr,
		format:    render.ParseFormat(cfg.Format),
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
