// Package sim provides an in-memory simulated world: a tree of models built
// from a config.World, each holding its joints and their current positions.
//
// The world implements jointconfig.World, so plugins configure it exactly as
// they would a physics-backed host. No physics is stepped.
//
// # Naming
//
// A model nested through an include is addressed by its scoped name,
// "super_robot::embedded_robot". Joints are named relative to the model they
// are listed from: listing "super_robot" yields "embedded_robot::a_joint",
// listing "super_robot::embedded_robot" yields "a_joint".
package sim

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/jointconfig"
)

// ScopeDelimiter joins model and joint names into scoped names.
const ScopeDelimiter = "::"

// World is the root of the simulated model tree. It is safe for concurrent
// use.
type World struct {
	mu     sync.RWMutex
	name   string
	models []*Model
}

// Model is an instantiated model. It implements jointconfig.ModelHandle.
type Model struct {
	name     string
	parent   *Model
	joints   []*Joint
	children []*Model
}

// Joint is an instantiated joint owned by a model.
type Joint struct {
	name     string
	kind     string
	position float64
}

// jointRef is a joint as seen from one model: its name is relative to that model.
type jointRef struct {
	name  string
	joint *Joint
}

func (r jointRef) Name() string { return r.name }

var _ jointconfig.World = (*World)(nil)

// Name returns the world name.
func (w *World) Name() string {
	return w.name
}

// Name returns the model's own, unscoped name.
func (m *Model) Name() string {
	return m.name
}

// ScopedName returns the model name prefixed by every enclosing model.
func (m *Model) ScopedName() string {
	if m.parent == nil {
		return m.name
	}
	return m.parent.ScopedName() + ScopeDelimiter + m.name
}

// ResolveModel finds a top-level model, or a nested one by scoped name.
func (w *World) ResolveModel(ctx context.Context, name string) (jointconfig.ModelHandle, bool) {
	m, ok := w.model(name)
	if !ok {
		return nil, false
	}
	return m, true
}

func (w *World) model(name string) (*Model, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if name == "" {
		return nil, false
	}
	parts := strings.Split(name, ScopeDelimiter)
	var current *Model
	candidates := w.models
	for _, part := range parts {
		idx := slices.IndexFunc(candidates, func(m *Model) bool { return m.name == part })
		if idx < 0 {
			return nil, false
		}
		current = candidates[idx]
		candidates = current.children
	}
	return current, true
}

// ListJoints returns every joint under model, nested models included, named
// relative to model. Names are not deduplicated.
func (w *World) ListJoints(ctx context.Context, model jointconfig.ModelHandle) []jointconfig.JointHandle {
	m, ok := w.own(model)
	if !ok {
		return nil
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	var handles []jointconfig.JointHandle
	for _, ref := range m.jointRefs("") {
		handles = append(handles, ref)
	}
	return handles
}

// SetJointPositions moves every joint of model whose relative name is a key
// of positions. Names the model does not have are ignored. Fixed joints
// cannot be moved; requesting one fails without changing anything.
func (w *World) SetJointPositions(ctx context.Context, model jointconfig.ModelHandle, positions map[string]float64) error {
	m, ok := w.own(model)
	if !ok {
		return fmt.Errorf("model %q does not belong to world %q", model.ScopedName(), w.name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	refs := m.jointRefs("")
	for _, ref := range refs {
		if _, wanted := positions[ref.name]; wanted && ref.joint.kind == config.JointFixed {
			return fmt.Errorf("joint %q of model %q is fixed and has no position", ref.name, m.ScopedName())
		}
	}
	for _, ref := range refs {
		if p, wanted := positions[ref.name]; wanted {
			ref.joint.position = p
		}
	}
	return nil
}

// own converts a handle back into one of this world's models.
func (w *World) own(model jointconfig.ModelHandle) (*Model, bool) {
	m, ok := model.(*Model)
	if !ok {
		return nil, false
	}
	resolved, ok := w.model(m.ScopedName())
	return resolved, ok && resolved == m
}

// jointRefs walks the subtree rooted at m in definition order. The caller
// must hold the world lock.
func (m *Model) jointRefs(prefix string) []jointRef {
	var refs []jointRef
	for _, j := range m.joints {
		refs = append(refs, jointRef{name: prefix + j.name, joint: j})
	}
	for _, child := range m.children {
		refs = append(refs, child.jointRefs(prefix+child.name+ScopeDelimiter)...)
	}
	return refs
}
