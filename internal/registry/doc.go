// Package registry provides the central "glue" for the plugin system.
//
// The Registry maps the `filename` string used by a world file's plugin
// declaration (e.g. "initial_model_configuration") to the compiled Go
// factory implementing it. Before a world is loaded, the registry is
// validated against the world description so that every declared plugin is
// known up front, instead of failing halfway through plugin loading.
package registry
