// Package schema holds the HCL schema of world files and of the
// initial_model_configuration plugin body.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- World File Structures ---

// BlockWorld is the only top-level block of a world file.
const BlockWorld = "world"

// WorldFile is the top-level structure of a single world file. Files may
// be split, but exactly one `world` block must exist across all of them.
var WorldFile = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: BlockWorld, LabelNames: []string{"name"}},
	},
}

// World represents the body of a `world` block: the models it contains and
// the plugins that run once it has been instantiated. The block label is read
// separately.
type World struct {
	Models  []*Model  `hcl:"model,block"`
	Plugins []*Plugin `hcl:"plugin,block"`
}

// Model represents a `model` block.
type Model struct {
	Name     string     `hcl:"name,label"`
	Joints   []*Joint   `hcl:"joint,block"`
	Includes []*Include `hcl:"include,block"`
}

// Joint represents a `joint` block inside a model definition.
type Joint struct {
	Name     string   `hcl:"name,label"`
	Type     string   `hcl:"type"`
	Position *float64 `hcl:"position,optional"`
}

// Include represents an `include` block, instantiating another model
// definition under a new name.
type Include struct {
	Name string `hcl:"name,label"`
	URI  string `hcl:"uri"`
}

// Plugin represents a `plugin` block. Everything except `filename` is left in
// Body for the plugin to decode.
type Plugin struct {
	Name     string   `hcl:"name,label"`
	Filename string   `hcl:"filename"`
	Body     hcl.Body `hcl:",remain"`
}

// --- Plugin Format ---

// Element and attribute names of the initial_model_configuration plugin body.
const (
	AttrModel    = "model"
	BlockJoint   = "joint"
	AttrName     = "name"
	AttrPosition = "position"
)

// InitialModelConfiguration is the plugin format. None of the attributes are
// marked required: absence is reported by the configurer itself so that it
// can name the missing element.
var InitialModelConfiguration = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: AttrModel},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: BlockJoint},
	},
}

// JointEntry is the format of a single `joint` block in the plugin body.
var JointEntry = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: AttrName},
		{Name: AttrPosition},
	},
}
