package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Joint types understood by the simulated world.
const (
	JointRevolute   = "revolute"
	JointPrismatic  = "prismatic"
	JointContinuous = "continuous"
	JointFixed      = "fixed"
)

// World is the unified, format-agnostic representation of a world file.
type World struct {
	Name    string
	Models  []*Model
	Plugins []*Plugin
}

// Model is a named model definition. Only top-level definitions are
// instantiated directly; any definition can also be instantiated by an
// Include under another name.
type Model struct {
	Name     string
	Joints   []*Joint
	Includes []*Include
}

// Include instantiates the model definition referenced by URI under Name
// inside the enclosing model.
type Include struct {
	Name string
	URI  string
}

// Joint is a single degree-of-freedom connector defined on a model.
type Joint struct {
	Name     string
	Type     string
	Position float64
}

// Plugin is a world plugin declaration. Filename selects the registered Go
// implementation; Body is everything else in the block and is decoded by the
// plugin itself.
type Plugin struct {
	Name     string
	Filename string
	Body     hcl.Body
	DefRange hcl.Range
}

// ModelByName returns the model definition with the given name.
func (w *World) ModelByName(name string) (*Model, bool) {
	for _, m := range w.Models {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}
