package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertJointPosition checks the world built by a harness run: the joint,
// named relative to the top-level model, must hold want.
func AssertJointPosition(t *testing.T, result *HarnessResult, model, joint string, want float64) {
	t.Helper()

	require.NotNil(t, result.App, "harness result has no app")
	world := result.App.World()
	require.NotNil(t, world, "the run did not build a world")

	for _, m := range world.Snapshot(context.Background()) {
		if m.Name != model {
			continue
		}
		for _, j := range m.Joints {
			if j.Name == joint {
				require.InDelta(t, want, j.Position, 1e-9, "position of joint '%s' of model '%s'", joint, model)
				return
			}
		}
		require.Failf(t, "joint not found", "model '%s' has no joint '%s'", model, joint)
	}
	require.Failf(t, "model not found", "world has no model '%s'", model)
}
