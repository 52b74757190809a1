// Package pipeline assembles and emits the final CI pipeline document: the
// compiled job set merged with the externally authored base configuration.
//
// Emission order is fixed (stages, variables, default, then jobs in
// compiled order) and the document is written atomically, so a failed run
// never leaves a partial pipeline behind.
package pipeline
