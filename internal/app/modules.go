package app

import (
	"github.com/specialistvlad/jointinit/internal/registry"
	"github.com/specialistvlad/jointinit/modules/initial_model_configuration"
)

// coreModules is the definitive list of all plugin modules compiled into
// the jointinit binary.
func coreModules(cfg *Config) []registry.Module {
	return []registry.Module{
		&initial_model_configuration.Module{Lenient: cfg.Lenient},
	}
}
