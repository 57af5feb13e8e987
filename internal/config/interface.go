package config

import (
	"context"
)

// Loader is the interface for a format-specific world description loader.
type Loader interface {
	// Load reads every configuration file found under the given paths and
	// translates them into a single format-agnostic World.
	Load(ctx context.Context, paths ...string) (*World, error)
}
