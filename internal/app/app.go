package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
	"github.com/specialistvlad/jointinit/internal/registry"
	"github.com/specialistvlad/jointinit/internal/report"
	"github.com/specialistvlad/jointinit/internal/sim"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	registry *registry.Registry
	world    *sim.World
}

// NewApp is the constructor for the main application. Reports go to outW,
// logs to logW. When no modules are given, the core modules are registered.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(cfg)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plugin modules registered.", "count", len(modules), "plugins", reg.Filenames())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// World returns the world built by the last Run, or nil.
func (a *App) World() *sim.World {
	return a.world
}

// Run loads the world description, builds the world, loads every plugin in
// declaration order and writes the resulting joint state unless ValidateOnly
// is set. The first plugin failure aborts the run.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.New().String())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.", "world_path", a.config.WorldPath)

	cfgWorld, err := a.loader.Load(ctx, a.config.WorldPath)
	if err != nil {
		return fmt.Errorf("failed to load world: %w", err)
	}
	ctx = ctxlog.With(ctx, "world", cfgWorld.Name)

	if err := a.registry.Validate(ctx, cfgWorld); err != nil {
		return err
	}

	world, err := sim.Build(ctx, cfgWorld)
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}
	a.world = world

	if err := a.loadPlugins(ctx, world, cfgWorld.Plugins); err != nil {
		return err
	}

	if a.config.ValidateOnly {
		logger.Info("World is valid, skipping report.")
		return nil
	}
	if err := report.Write(a.outW, a.config.OutputFormat, world.Name(), world.Snapshot(ctx)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Debug("App.Run method finished.")
	return nil
}
