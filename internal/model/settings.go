package model

// Resources are the per-job compute hints forwarded to the scheduler via
// job variables.
type Resources struct {
	Cores       int
	Walltime    string
	CUDACompute string
}

// Settings carries the run-wide values applied uniformly to every compiled
// job unless a package node overrides them. They come from the manifest's
// `settings` block plus CLI flags.
type Settings struct {
	// LogDir and BuildDir are the base directories artifact paths are
	// derived from.
	LogDir   string
	BuildDir string
	// OrderHiddenDeps controls whether hidden dependencies gate job
	// ordering. Defaults to true.
	OrderHiddenDeps bool
	// ExtraArgs are opaque build-command arguments replayed into every
	// job's script.
	ExtraArgs []string
	// DryRun appends a dry-run flag to every job's build invocation.
	DryRun bool
	// SchedulerParams, when set, pins every job's SCHEDULER_PARAMETERS
	// variable at generation time instead of deferring to the runner
	// environment.
	SchedulerParams string
	// Resources are the uniform per-job compute hints.
	Resources Resources
}

// DefaultSettings returns the settings used when a manifest carries no
// `settings` block at all.
func DefaultSettings() Settings {
	return Settings{
		LogDir:          "/tmp/eblog",
		BuildDir:        "/tmp/ebbuild",
		OrderHiddenDeps: true,
	}
}
