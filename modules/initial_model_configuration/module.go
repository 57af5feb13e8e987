// Package initial_model_configuration registers the world plugin that sets
// the initial joint positions of a model before simulation starts.
//
// Usage in a world file:
//
//	plugin "initial_pose" {
//	  filename = "initial_model_configuration"
//
//	  model = "super_robot"
//	  joint {
//	    name     = "embedded_robot::a_joint"
//	    position = 3.14
//	  }
//	}
//
// The plugin must be declared at world scope: joints of included models are
// only addressable by their scoped names from the enclosing model.
package initial_model_configuration

import (
	"context"

	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
	"github.com/specialistvlad/jointinit/internal/jointconfig"
	"github.com/specialistvlad/jointinit/internal/registry"
	"github.com/specialistvlad/jointinit/internal/sim"
)

// Filename is the name world files use to select this plugin.
const Filename = "initial_model_configuration"

// Module implements the registry.Module interface for this package.
type Module struct {
	// Lenient skips the format check of the plugin body, ignoring any
	// attribute or block the plugin does not know.
	Lenient bool
}

// Plugin is one instance of the plugin, bound to one declaration.
type Plugin struct {
	opts    jointconfig.DecodeOptions
	applied jointconfig.JointPositions
}

// Load decodes the declaration body and applies it to the world.
func (p *Plugin) Load(ctx context.Context, world *sim.World, decl *config.Plugin) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding initial model configuration.", "plugin", decl.Name, "strict", p.opts.Strict)

	doc, err := jointconfig.Decode(ctx, decl.Name, decl.Body, p.opts)
	if err != nil {
		return err
	}

	applied, err := jointconfig.Configure(ctx, doc, world)
	if err != nil {
		return err
	}
	p.applied = applied
	return nil
}

// Applied returns the positions set by the last successful Load.
func (p *Plugin) Applied() jointconfig.JointPositions {
	return p.applied
}

// Register registers the plugin factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	opts := jointconfig.DecodeOptions{Strict: !m.Lenient}
	r.RegisterPlugin(Filename, func() registry.Plugin {
		return &Plugin{opts: opts}
	})
}
