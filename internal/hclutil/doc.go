// Package hclutil contains small helpers on top of hashicorp/hcl shared by
// the world loader and by plugins decoding their own configuration body.
package hclutil
