// Package hcl provides the concrete HCL implementation of config.Loader.
// World files are read in HCL native syntax (.hcl) or HCL JSON syntax
// (.json) and translated into the format-agnostic config.World.
package hcl
