// Package testutil provides the shared harness for integration tests: it
// writes world files to a temporary directory, runs the application on them
// and captures its report and logs.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/jointinit/internal/app"
	"github.com/specialistvlad/jointinit/internal/hcl"
	"github.com/specialistvlad/jointinit/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// Options tweaks a harness run. The zero value runs with text output and
// the core modules.
type Options struct {
	OutputFormat string
	Lenient      bool
	ValidateOnly bool
	Modules      []registry.Module
}

// RunWorldTest writes files (relative path to content) into a temporary
// directory and runs the application on that directory.
func RunWorldTest(t *testing.T, files map[string]string, opts Options) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}

	cfg, err := app.NewConfig(app.Config{
		WorldPath:    dir,
		LogLevel:     "debug",
		LogFormat:    "text",
		OutputFormat: opts.OutputFormat,
		Lenient:      opts.Lenient,
		ValidateOnly: opts.ValidateOnly,
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	testApp := app.NewApp(out, logs, cfg, hcl.NewLoader(), opts.Modules...)
	runErr := testApp.Run(context.Background())

	if os.Getenv("JOINTINIT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
	}
}
