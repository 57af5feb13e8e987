package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
	"github.com/specialistvlad/jointinit/internal/sim"
)

// loadPlugins creates and loads one plugin instance per declaration, in
// declaration order.
func (a *App) loadPlugins(ctx context.Context, world *sim.World, decls []*config.Plugin) error {
	logger := ctxlog.FromContext(ctx)
	if len(decls) == 0 {
		logger.Warn("No plugins declared, the world is left as defined.")
		return nil
	}

	for _, decl := range decls {
		factory, ok := a.registry.Lookup(decl.Filename)
		if !ok {
			// Validate has already rejected unknown filenames.
			return fmt.Errorf("plugin %q: filename %q is not registered", decl.Name, decl.Filename)
		}

		logger.Debug("Loading plugin.", "plugin", decl.Name, "filename", decl.Filename)
		if err := factory().Load(ctx, world, decl); err != nil {
			logger.Error("Plugin failed to load.", "plugin", decl.Name, "error", err)
			return fmt.Errorf("plugin %q failed to load: %w", decl.Name, err)
		}
	}

	logger.Info("All plugins loaded.", "count", len(decls))
	return nil
}
