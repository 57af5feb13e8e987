package sim

import (
	"context"
	"slices"
	"strings"
)

// JointState is the current state of one joint.
type JointState struct {
	Name     string  `json:"name" yaml:"name"`
	Type     string  `json:"type" yaml:"type"`
	Position float64 `json:"position" yaml:"position"`
}

// ModelState is the current state of a top-level model. Joint names are
// relative to the model.
type ModelState struct {
	Name   string       `json:"name" yaml:"name"`
	Joints []JointState `json:"joints" yaml:"joints"`
}

// Snapshot returns the state of every top-level model, sorted by name, with
// joints sorted by relative name.
func (w *World) Snapshot(ctx context.Context) []ModelState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	states := make([]ModelState, 0, len(w.models))
	for _, m := range w.models {
		state := ModelState{Name: m.name}
		for _, ref := range m.jointRefs("") {
			state.Joints = append(state.Joints, JointState{
				Name:     ref.name,
				Type:     ref.joint.kind,
				Position: ref.joint.position,
			})
		}
		slices.SortStableFunc(state.Joints, func(a, b JointState) int { return strings.Compare(a.Name, b.Name) })
		states = append(states, state)
	}
	slices.SortFunc(states, func(a, b ModelState) int { return strings.Compare(a.Name, b.Name) })
	return states
}
