package jointconfig

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
	"github.com/specialistvlad/jointinit/internal/hclutil"
	"github.com/specialistvlad/jointinit/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Document is the decoded configuration of one plugin instance. Fields the
// format requires are pointers so that an absent field can be told apart
// from a zero value.
type Document struct {
	// Plugin is the name of the plugin instance, used in logs and errors.
	Plugin   string
	Model    *string
	Joints   []JointEntry
	DefRange hcl.Range
}

// JointEntry is a single requested joint position, in document order.
type JointEntry struct {
	Name     *string
	Position *float64
	DefRange hcl.Range
}

// DecodeOptions controls how strictly a plugin body is checked.
type DecodeOptions struct {
	// Strict rejects attributes and blocks the plugin format does not
	// declare. Type errors are rejected in both modes.
	Strict bool
}

// Decode reads the plugin configuration body of the plugin instance named
// plugin into a Document. It only checks the shape of the body; required
// fields are enforced by Configure.
func Decode(ctx context.Context, plugin string, body hcl.Body, opts DecodeOptions) (*Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding plugin body.", "plugin", plugin, "strict", opts.Strict)

	content, diags := partialOrFull(body, schema.InitialModelConfiguration, opts.Strict)
	if diags.HasErrors() {
		return nil, &ConfigError{
			Kind:   ErrSchemaMismatch,
			Plugin: plugin,
			Detail: "the plugin body does not match the initial_model_configuration format",
			Err:    diags,
		}
	}

	doc := &Document{
		Plugin:   plugin,
		DefRange: body.MissingItemRange(),
	}

	if attr, ok := content.Attributes[schema.AttrModel]; ok {
		var model string
		present, err := decodeAttr(plugin, schema.AttrModel, attr, cty.String, &model)
		if err != nil {
			return nil, err
		}
		if present {
			doc.Model = &model
		}
	}

	for i, block := range content.Blocks {
		if block.Type != schema.BlockJoint {
			continue
		}
		element := fmt.Sprintf("%s[%d]", schema.BlockJoint, i)

		jc, diags := partialOrFull(block.Body, schema.JointEntry, opts.Strict)
		if diags.HasErrors() {
			return nil, &ConfigError{
				Kind:    ErrSchemaMismatch,
				Plugin:  plugin,
				Element: element,
				Detail:  "the joint entry does not match the initial_model_configuration format",
				Subject: block.DefRange.Ptr(),
				Err:     diags,
			}
		}

		entry := JointEntry{DefRange: block.DefRange}
		if attr, ok := jc.Attributes[schema.AttrName]; ok {
			var name string
			present, err := decodeAttr(plugin, element+"."+schema.AttrName, attr, cty.String, &name)
			if err != nil {
				return nil, err
			}
			if present {
				entry.Name = &name
			}
		}
		if attr, ok := jc.Attributes[schema.AttrPosition]; ok {
			var position float64
			present, err := decodeAttr(plugin, element+"."+schema.AttrPosition, attr, cty.Number, &position)
			if err != nil {
				return nil, err
			}
			if present {
				entry.Position = &position
			}
		}
		doc.Joints = append(doc.Joints, entry)
	}

	logger.Debug("Plugin body decoded.", "plugin", plugin, "joint_entries", len(doc.Joints))
	return doc, nil
}

func partialOrFull(body hcl.Body, s *hcl.BodySchema, strict bool) (*hcl.BodyContent, hcl.Diagnostics) {
	if strict {
		return body.Content(s)
	}
	content, _, diags := body.PartialContent(s)
	return content, diags
}

// decodeAttr evaluates attr as want and stores it into target. It reports
// present=false for a null value.
func decodeAttr(plugin, element string, attr *hcl.Attribute, want cty.Type, target any) (bool, error) {
	val, diags := hclutil.EvalAs(attr.Expr, want)
	if diags.HasErrors() {
		return false, &ConfigError{
			Kind:    ErrSchemaMismatch,
			Plugin:  plugin,
			Element: element,
			Detail:  "expected a " + want.FriendlyName(),
			Subject: attr.Range.Ptr(),
			Err:     diags,
		}
	}
	if val.IsNull() {
		return false, nil
	}
	if err := gocty.FromCtyValue(val, target); err != nil {
		return false, &ConfigError{
			Kind:    ErrSchemaMismatch,
			Plugin:  plugin,
			Element: element,
			Detail:  "expected a " + want.FriendlyName(),
			Subject: attr.Range.Ptr(),
			Err:     err,
		}
	}
	return true, nil
}
