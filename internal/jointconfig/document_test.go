package jointconfig

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseBody(t *testing.T, src string) hcl.Body {
	t.Helper()
	f, diags := hclparse.NewParser().ParseHCL([]byte(src), "plugin.hcl")
	require.False(t, diags.HasErrors(), diags.Error())
	return f.Body
}

func TestDecode_FullDocument(t *testing.T) {
	ctx, _ := testContext(t)
	body := parseBody(t, `
model = "robot"
joint {
  name     = "hinge"
  position = 1.57
}
joint {
  name     = "slider"
  position = "0.25"
}
`)

	d, err := Decode(ctx, "initial_pose", body, DecodeOptions{Strict: true})
	require.NoError(t, err)

	assert.Equal(t, "initial_pose", d.Plugin)
	require.NotNil(t, d.Model)
	assert.Equal(t, "robot", *d.Model)
	require.Len(t, d.Joints, 2)
	assert.Equal(t, "hinge", *d.Joints[0].Name)
	assert.InDelta(t, 1.57, *d.Joints[0].Position, 1e-12)
	assert.Equal(t, "slider", *d.Joints[1].Name)
	assert.InDelta(t, 0.25, *d.Joints[1].Position, 1e-12)
	assert.Equal(t, 7, d.Joints[1].DefRange.Start.Line)
}

func TestDecode_AbsentAndNullFieldsStayNil(t *testing.T) {
	ctx, _ := testContext(t)
	body := parseBody(t, `
joint {
  name = null
}
`)

	d, err := Decode(ctx, "initial_pose", body, DecodeOptions{Strict: true})
	require.NoError(t, err)
	assert.Nil(t, d.Model)
	require.Len(t, d.Joints, 1)
	assert.Nil(t, d.Joints[0].Name)
	assert.Nil(t, d.Joints[0].Position)

	_, err = Configure(ctx, d, newFakeWorld())
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDecode_StrictRejectsUnknownContent(t *testing.T) {
	ctx, _ := testContext(t)
	src := `
model = "robot"
speed = 3
joint {
  name     = "hinge"
  position = 1
}
`
	_, err := Decode(ctx, "initial_pose", parseBody(t, src), DecodeOptions{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "speed")

	d, err := Decode(ctx, "initial_pose", parseBody(t, src), DecodeOptions{Strict: false})
	require.NoError(t, err)
	assert.Equal(t, "robot", *d.Model)
	assert.Len(t, d.Joints, 1)
}

func TestDecode_StrictRejectsUnknownJointAttribute(t *testing.T) {
	ctx, _ := testContext(t)
	src := `
model = "robot"
joint {
  name     = "hinge"
  position = 1
  velocity = 2
}
`
	_, err := Decode(ctx, "initial_pose", parseBody(t, src), DecodeOptions{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "joint[0]", cfgErr.Element)
}

func TestDecode_TypeMismatch(t *testing.T) {
	tests := map[string]string{
		"position not a number": `
model = "robot"
joint {
  name     = "hinge"
  position = "abc"
}`,
		"model not a string": `
model = ["robot"]
`,
		"undefined variable": `
model = robot
`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, _ := testContext(t)
			for _, strict := range []bool{true, false} {
				_, err := Decode(ctx, "initial_pose", parseBody(t, src), DecodeOptions{Strict: strict})
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrSchemaMismatch)
			}
		})
	}
}

func TestDecode_JSONSyntax(t *testing.T) {
	ctx, _ := testContext(t)
	f, diags := hclparse.NewParser().ParseJSON([]byte(`{
  "model": "robot",
  "joint": [
    {"name": "hinge", "position": 1.0},
    {"name": "hinge", "position": 2.0}
  ]
}`), "plugin.json")
	require.False(t, diags.HasErrors(), diags.Error())

	d, err := Decode(ctx, "initial_pose", f.Body, DecodeOptions{Strict: true})
	require.NoError(t, err)

	applied, err := Configure(ctx, d, newFakeWorld())
	require.NoError(t, err)
	assert.Equal(t, JointPositions{"hinge": 2.0}, applied)
}
