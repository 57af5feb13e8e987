// Package report renders the joint state of a simulated world.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/specialistvlad/jointinit/internal/sim"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Report is the document written for JSON and YAML output.
type Report struct {
	World  string           `json:"world" yaml:"world"`
	Models []sim.ModelState `json:"models" yaml:"models"`
}

// Write renders the world state to w in the given format.
func Write(w io.Writer, format, world string, models []sim.ModelState) error {
	r := Report{World: world, Models: models}
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "WORLD %s\n", r.World)
	fmt.Fprintln(tw, "MODEL\tJOINT\tTYPE\tPOSITION")
	for _, m := range r.Models {
		if len(m.Joints) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\t-\n", m.Name)
			continue
		}
		for _, j := range m.Joints {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Name, j.Name, j.Type, strconv.FormatFloat(j.Position, 'g', -1, 64))
		}
	}
	return tw.Flush()
}
