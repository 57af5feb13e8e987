package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
	"github.com/specialistvlad/jointinit/internal/fsutil"
	"github.com/specialistvlad/jointinit/internal/hclutil"
	"github.com/specialistvlad/jointinit/internal/schema"
)

// Extensions lists the file extensions the loader reads.
var Extensions = []string{".hcl", ".json"}

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL world loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every world file under paths. The files together must define
// exactly one `world` block.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.World, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no world files (%v) found in %v", Extensions, paths)
	}
	logger.Debug("Discovered world files.", "count", len(files))

	parser := hclparse.NewParser()
	var blocks hcl.Blocks
	for _, file := range files {
		var f *hcl.File
		var diags hcl.Diagnostics
		if filepath.Ext(file) == ".json" {
			f, diags = parser.ParseJSONFile(file)
		} else {
			f, diags = parser.ParseHCLFile(file)
		}
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse world file %s: %w", file, diags)
		}

		content, diags := f.Body.Content(schema.WorldFile)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode world file %s: %w", file, diags)
		}
		blocks = append(blocks, content.Blocks...)
	}

	block, diags := hclutil.FindUniqueBlock(blocks, schema.BlockWorld)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid world configuration: %w", diags)
	}
	if block == nil {
		return nil, fmt.Errorf("no %q block found in %v", schema.BlockWorld, paths)
	}

	var w schema.World
	if diags := gohcl.DecodeBody(block.Body, nil, &w); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode world %q: %w", block.Labels[0], diags)
	}

	world := translateWorld(block.Labels[0], &w)
	logger.Debug("HCL loading complete.", "world", world.Name, "models", len(world.Models), "plugins", len(world.Plugins))
	return world, nil
}
