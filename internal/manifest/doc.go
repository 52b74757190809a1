// Package manifest loads the resolver-produced package-graph manifest from
// HCL files and translates it into the format-agnostic model.
//
// A manifest is a single .hcl file or a directory of them. `package` blocks
// declare nodes and their kinded dependency edges; an optional `settings`
// block carries the run-wide artifact directories, resource hints and
// ordering policy.
package manifest
