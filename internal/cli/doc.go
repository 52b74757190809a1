// Package cli is responsible for the command surface: parsing and
// validating flags, wiring invocations to the app layer, and translating
// the error taxonomy into process exit codes.
package cli
