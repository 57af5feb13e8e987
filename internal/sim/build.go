package sim

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
)

// modelURIScheme prefixes include URIs that reference a model definition.
const modelURIScheme = "model://"

// Build instantiates every top-level model of cfg, expanding includes
// recursively.
func Build(ctx context.Context, cfg *config.World) (*World, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building world.", "world", cfg.Name, "model_definitions", len(cfg.Models))

	b := &builder{cfg: cfg}
	w := &World{name: cfg.Name}
	seen := make(map[string]struct{}, len(cfg.Models))
	for _, def := range cfg.Models {
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("world %q: model %q is defined more than once", cfg.Name, def.Name)
		}
		seen[def.Name] = struct{}{}

		m, err := b.instantiate(def, def.Name, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("world %q: %w", cfg.Name, err)
		}
		w.models = append(w.models, m)
		logger.Debug("Model instantiated.", "model", m.ScopedName(), "joints", len(m.jointRefs("")))
	}

	logger.Info("World built.", "world", w.name, "models", len(w.models))
	return w, nil
}

type builder struct {
	cfg *config.World
}

// instantiate creates a model named name from def under parent. stack holds
// the definitions being expanded, to reject include cycles.
func (b *builder) instantiate(def *config.Model, name string, parent *Model, stack []string) (*Model, error) {
	for _, s := range stack {
		if s == def.Name {
			return nil, fmt.Errorf("include cycle: %s -> %s", strings.Join(stack, " -> "), def.Name)
		}
	}
	stack = append(stack, def.Name)

	m := &Model{name: name, parent: parent}

	jointNames := make(map[string]struct{}, len(def.Joints))
	for _, jd := range def.Joints {
		if _, dup := jointNames[jd.Name]; dup {
			return nil, fmt.Errorf("model %q: joint %q is defined more than once", m.ScopedName(), jd.Name)
		}
		jointNames[jd.Name] = struct{}{}

		if err := validateJointType(jd.Type); err != nil {
			return nil, fmt.Errorf("model %q, joint %q: %w", m.ScopedName(), jd.Name, err)
		}
		if jd.Type == config.JointFixed && jd.Position != 0 {
			return nil, fmt.Errorf("model %q, joint %q: a fixed joint cannot have a position", m.ScopedName(), jd.Name)
		}
		m.joints = append(m.joints, &Joint{name: jd.Name, kind: jd.Type, position: jd.Position})
	}

	includeNames := make(map[string]struct{}, len(def.Includes))
	for _, inc := range def.Includes {
		if _, dup := includeNames[inc.Name]; dup {
			return nil, fmt.Errorf("model %q: include %q is defined more than once", m.ScopedName(), inc.Name)
		}
		includeNames[inc.Name] = struct{}{}

		target, err := b.resolveURI(inc.URI)
		if err != nil {
			return nil, fmt.Errorf("model %q, include %q: %w", m.ScopedName(), inc.Name, err)
		}
		child, err := b.instantiate(target, inc.Name, m, stack)
		if err != nil {
			return nil, err
		}
		m.children = append(m.children, child)
	}

	return m, nil
}

func (b *builder) resolveURI(uri string) (*config.Model, error) {
	name, ok := strings.CutPrefix(uri, modelURIScheme)
	if !ok || name == "" {
		return nil, fmt.Errorf("unsupported uri %q, expected %s<model>", uri, modelURIScheme)
	}
	def, ok := b.cfg.ModelByName(name)
	if !ok {
		return nil, fmt.Errorf("uri %q references unknown model %q", uri, name)
	}
	return def, nil
}

func validateJointType(kind string) error {
	switch kind {
	case config.JointRevolute, config.JointPrismatic, config.JointContinuous, config.JointFixed:
		return nil
	default:
		return fmt.Errorf("unsupported joint type %q, must be one of %s, %s, %s, %s",
			kind, config.JointRevolute, config.JointPrismatic, config.JointContinuous, config.JointFixed)
	}
}
