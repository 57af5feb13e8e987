package jointconfig

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
	"github.com/specialistvlad/jointinit/internal/schema"
)

// ModelHandle is a host-owned reference to a model. The configurer never
// creates or destroys handles, it only passes them back to the World.
type ModelHandle interface {
	ScopedName() string
}

// JointHandle is a host-owned reference to a joint.
type JointHandle interface {
	// Name is the joint name relative to the model it was listed from.
	Name() string
}

// World is the capability a host exposes to the configurer.
type World interface {
	// ResolveModel returns the model with the given name, if any.
	ResolveModel(ctx context.Context, name string) (ModelHandle, bool)
	// ListJoints returns the joints currently instantiated under model.
	ListJoints(ctx context.Context, model ModelHandle) []JointHandle
	// SetJointPositions applies every position in one request. Atomicity
	// is up to the host.
	SetJointPositions(ctx context.Context, model ModelHandle, positions map[string]float64) error
}

// JointPositions maps a joint name to its target position, in radians for
// revolute and continuous joints and meters for prismatic ones.
type JointPositions map[string]float64

// Names returns the joint names in lexical order.
func (p JointPositions) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

// Configure validates doc against world and applies the requested joint
// positions to the target model. It returns the positions handed to the
// world. Nothing is applied unless the whole document is valid.
func Configure(ctx context.Context, doc *Document, world World) (JointPositions, error) {
	logger := ctxlog.FromContext(ctx).With("plugin", doc.Plugin)
	logger.Info("Start loading plugin.")

	// find the model named by the [model] field
	if doc.Model == nil {
		return nil, newError(ErrMissingField, doc.Plugin, schema.AttrModel, "the plugin must name its target model", doc.DefRange)
	}
	model, ok := world.ResolveModel(ctx, *doc.Model)
	if !ok {
		return nil, newError(ErrModelNotFound, doc.Plugin, schema.AttrModel, fmt.Sprintf("cannot find a model named %q", *doc.Model), doc.DefRange)
	}
	logger.Info("Found the target model.", "model", model.ScopedName())

	requested, ranges, err := requestedPositions(ctx, doc)
	if err != nil {
		return nil, err
	}

	// each requested name must point at a unique joint of the model
	existing := make(map[string]int)
	for _, j := range world.ListJoints(ctx, model) {
		existing[j.Name()]++
	}
	for _, name := range requested.Names() {
		switch n := existing[name]; {
		case n == 0:
			return nil, newError(ErrJointNotFound, doc.Plugin, name, fmt.Sprintf("model %q has no joint with this name", model.ScopedName()), ranges[name])
		case n > 1:
			return nil, newError(ErrAmbiguousJointName, doc.Plugin, name, fmt.Sprintf("%d joints of model %q share this name", n, model.ScopedName()), ranges[name])
		}
		logger.Info("Will set the position of joint.", "joint", name, "position", requested[name])
	}

	if err := world.SetJointPositions(ctx, model, maps.Clone(requested)); err != nil {
		return nil, fmt.Errorf("[%s]: set joint positions of model %q: %w", doc.Plugin, model.ScopedName(), err)
	}

	logger.Info("Loaded plugin.", "model", model.ScopedName(), "joints", len(requested))
	return requested, nil
}

// requestedPositions builds the name to position mapping from the joint
// entries, along with the range of the entry each position comes from.
// Later entries override earlier ones.
func requestedPositions(ctx context.Context, doc *Document) (JointPositions, map[string]hcl.Range, error) {
	logger := ctxlog.FromContext(ctx).With("plugin", doc.Plugin)

	positions := make(JointPositions, len(doc.Joints))
	ranges := make(map[string]hcl.Range, len(doc.Joints))
	for i, entry := range doc.Joints {
		element := fmt.Sprintf("%s[%d]", schema.BlockJoint, i)
		if entry.Name == nil || *entry.Name == "" {
			return nil, nil, newError(ErrMissingField, doc.Plugin, element+"."+schema.AttrName, "every joint entry needs a non-empty name", entry.DefRange)
		}
		if entry.Position == nil {
			return nil, nil, newError(ErrMissingField, doc.Plugin, element+"."+schema.AttrPosition, fmt.Sprintf("joint %q has no position", *entry.Name), entry.DefRange)
		}
		if prev, dup := positions[*entry.Name]; dup {
			logger.Warn("Joint requested more than once, the later entry wins.", "joint", *entry.Name, "previous", prev, "position", *entry.Position)
		}
		positions[*entry.Name] = *entry.Position
		ranges[*entry.Name] = entry.DefRange
	}
	return positions, ranges, nil
}
