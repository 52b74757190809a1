// Package baseconfig loads the externally authored .gitlab-ci.yml base
// configuration: the `default` section applied to every generated job and
// the trigger job's `variables` carried into the child pipeline.
//
// Loading distinguishes a missing file from a present-but-empty one, and
// variable validation rejects any direct or transitive self-reference
// before the merge engine ever sees the values.
package baseconfig
