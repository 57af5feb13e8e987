package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/jointinit/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var models = []sim.ModelState{
	{Name: "robot", Joints: []sim.JointState{
		{Name: "hinge", Type: "revolute", Position: 1.57},
		{Name: "slider", Type: "prismatic", Position: 0.1},
	}},
	{Name: "table"},
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, "default", models))

	want := "WORLD default\n" +
		"MODEL  JOINT   TYPE       POSITION\n" +
		"robot  hinge   revolute   1.57\n" +
		"robot  slider  prismatic  0.1\n" +
		"table  -       -          -\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text report mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, "default", models))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "default", got.World)
	assert.Equal(t, models[0], got.Models[0])
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, "default", models))
	assert.Contains(t, buf.String(), "world: default\n")
	assert.Contains(t, buf.String(), "- name: hinge\n")

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, models[0], got.Models[0])
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", "default", models)
	assert.ErrorContains(t, err, `unsupported output format "xml"`)
}
