// Package config defines the format-agnostic model of a world description
// (worlds, model definitions, includes, joints and plugin declarations) along
// with the Loader interface used to read it from disk.
//
// The `config.World` is the single source of truth for the `sim` and
// `registry` packages. Concrete loaders, such as the HCL one, live in
// separate packages.
package config
