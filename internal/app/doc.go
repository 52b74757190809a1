// Package app encapsulates the application's dependencies, configuration
// and lifecycle: it wires the manifest loader, compiler and merge engine
// together behind two operations, Generate and Inject, that the CLI
// invokes.
package app
