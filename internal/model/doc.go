// Package model defines the format-agnostic data model shared by the
// manifest loader, the compiler, and the merge engine: package nodes with
// kinded dependency edges, the artifact/resource settings that apply to a
// run, and the immutable job descriptors the compiler produces.
//
// The model deliberately knows nothing about HCL or YAML. Concrete loaders
// translate their own schemas into these types.
package model
