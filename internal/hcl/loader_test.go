package hcl

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

const worldHCL = `
world "default" {
  model "robot" {
    joint "hinge" {
      type = "revolute"
    }
    joint "slider" {
      type     = "prismatic"
      position = 0.1
    }
  }

  model "super_robot" {
    include "embedded_robot" {
      uri = "model://robot"
    }
  }

  plugin "initial_pose" {
    filename = "initial_model_configuration"

    model = "robot"
    joint {
      name     = "hinge"
      position = 1.57
    }
  }
}
`

// ignoreBody drops the plugin body and range, which are compared separately.
var ignoreBody = cmpopts.IgnoreFields(config.Plugin{}, "Body", "DefRange")

func TestLoad_WorldFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"world.hcl": worldHCL})

	w, err := NewLoader().Load(testContext(), filepath.Join(dir, "world.hcl"))
	require.NoError(t, err)

	want := &config.World{
		Name: "default",
		Models: []*config.Model{
			{Name: "robot", Joints: []*config.Joint{
				{Name: "hinge", Type: "revolute"},
				{Name: "slider", Type: "prismatic", Position: 0.1},
			}},
			{Name: "super_robot", Includes: []*config.Include{
				{Name: "embedded_robot", URI: "model://robot"},
			}},
		},
		Plugins: []*config.Plugin{
			{Name: "initial_pose", Filename: "initial_model_configuration"},
		},
	}
	if diff := cmp.Diff(want, w, ignoreBody); diff != "" {
		t.Errorf("world mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, w.Plugins, 1)
	attrs, diags := w.Plugins[0].Body.JustAttributes()
	// The joint block makes JustAttributes fail; the model attribute must
	// still be present and filename must be hidden.
	assert.True(t, diags.HasErrors())
	assert.Contains(t, attrs, "model")
	assert.NotContains(t, attrs, "filename")
	assert.Equal(t, filepath.Join(dir, "world.hcl"), w.Plugins[0].DefRange.Filename)
}

func TestLoad_JSONWorldFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"world.json": `{
  "world": {
    "default": {
      "model": {
        "robot": {
          "joint": {
            "hinge": {"type": "revolute"}
          }
        }
      },
      "plugin": {
        "initial_pose": {
          "filename": "initial_model_configuration",
          "model": "robot",
          "joint": [{"name": "hinge", "position": 1.57}]
        }
      }
    }
  }
}`})

	w, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)
	assert.Equal(t, "default", w.Name)
	require.Len(t, w.Models, 1)
	assert.Equal(t, "hinge", w.Models[0].Joints[0].Name)
	require.Len(t, w.Plugins, 1)
	assert.Equal(t, "initial_model_configuration", w.Plugins[0].Filename)
}

func TestLoad_IgnoresNonWorldFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"world.hcl": `
world "default" {
  model "robot" {
  }
}`,
		"README.txt": "not a world file",
	})

	w, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)
	require.Len(t, w.Models, 1)
	assert.Equal(t, "robot", w.Models[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		errSub string
	}{
		{
			name:   "syntax error",
			files:  map[string]string{"world.hcl": `world "default" {`},
			errSub: "failed to parse world file",
		},
		{
			name:   "unknown top-level block",
			files:  map[string]string{"world.hcl": `step "print" "A" {}`},
			errSub: "failed to decode world file",
		},
		{
			name: "two worlds",
			files: map[string]string{
				"a.hcl": `world "one" {}`,
				"b.hcl": `world "two" {}`,
			},
			errSub: `Duplicate "world" block`,
		},
		{
			name:   "no world",
			files:  map[string]string{"world.hcl": ``},
			errSub: `no "world" block found`,
		},
		{
			name:   "no files",
			files:  map[string]string{"notes.txt": `hello`},
			errSub: "no world files",
		},
		{
			name: "joint without type",
			files: map[string]string{"world.hcl": `
world "default" {
  model "robot" {
    joint "hinge" {
    }
  }
}`},
			errSub: `The argument "type" is required`,
		},
		{
			name: "plugin without filename",
			files: map[string]string{"world.hcl": `
world "default" {
  plugin "initial_pose" {
    model = "robot"
  }
}`},
			errSub: `The argument "filename" is required`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)
			_, err := NewLoader().Load(testContext(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}
