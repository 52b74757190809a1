// Package compiler turns a resolved package graph into a complete,
// cycle-free set of CI job descriptors: deterministic job names, `needs`
// edges restricted to ordering-gating dependency kinds, and per-job
// artifact paths derived from the run settings.
//
// Compilation is eager and all-or-nothing. Any structural defect in the
// input (cycle, dangling edge, name collision) aborts the whole run with a
// typed error carrying enough detail to diagnose without re-running.
package compiler
