package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
	"github.com/specialistvlad/jointinit/internal/sim"
)

// Plugin is a world plugin instance, created once per plugin declaration.
type Plugin interface {
	// Load runs once after the world has been built and before simulation
	// starts. An error is a fatal plugin initialization failure.
	Load(ctx context.Context, world *sim.World, decl *config.Plugin) error
}

// Factory creates a fresh Plugin instance.
type Factory func() Plugin

// Module is the interface that all plugin modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the plugin factories of a single application instance.
type Registry struct {
	plugins map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{plugins: make(map[string]Factory)}
}

// RegisterPlugin registers factory under filename. Registering the same
// filename twice is a programming error and panics.
func (r *Registry) RegisterPlugin(filename string, factory Factory) {
	if filename == "" || factory == nil {
		panic("registry: plugin filename and factory must be set")
	}
	if _, exists := r.plugins[filename]; exists {
		panic(fmt.Sprintf("registry: plugin %q registered twice", filename))
	}
	r.plugins[filename] = factory
}

// Lookup returns the factory registered under filename.
func (r *Registry) Lookup(filename string) (Factory, bool) {
	f, ok := r.plugins[filename]
	return f, ok
}

// Filenames returns the registered plugin filenames in lexical order.
func (r *Registry) Filenames() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks that every plugin declared by world is registered. All
// unknown declarations are reported together.
func (r *Registry) Validate(ctx context.Context, world *config.World) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	for _, decl := range world.Plugins {
		if _, ok := r.plugins[decl.Filename]; !ok {
			errs = append(errs, fmt.Sprintf("plugin '%s': filename '%s' is not registered (%s)", decl.Name, decl.Filename, decl.DefRange))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed (known plugins: %s):\n- %s",
			strings.Join(r.Filenames(), ", "), strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "plugins_declared", len(world.Plugins), "plugins_registered", len(r.plugins))
	return nil
}
