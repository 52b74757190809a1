package model

// JobDescriptor is one compiled CI job. It is created once per package node
// during compilation and never mutated afterwards; only serialization
// consumes it.
type JobDescriptor struct {
	// Name is the sanitized, collision-free job name.
	Name string
	// Identity is the package node this job builds.
	Identity string
	// DependsOn lists the job names that must finish before this one runs.
	// Every entry is guaranteed to be a job name in the same compiled set.
	DependsOn []string
	// ArtifactPaths is the ordered list of glob paths the job uploads,
	// unique to this job.
	ArtifactPaths []string
	// Script is the build invocation for this node only.
	Script []string
	// Variables are the job-scoped CI variables.
	Variables map[string]string
}
