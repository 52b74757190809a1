package app

import "errors"

// Config holds everything an App instance needs for one invocation.
type Config struct {
	// ManifestPath points at the package-graph manifest (file or
	// directory). Required for Generate.
	ManifestPath string
	// PipelinePath points at an existing pipeline document. Required for
	// Inject.
	PipelinePath string
	// ConfigPath points at the base configuration document.
	ConfigPath string
	// OutputPath is where Generate writes the pipeline document.
	OutputPath string

	// DryRun makes every generated job invoke the build in dry-run mode.
	DryRun bool
	// CUDACompute overrides the manifest's CUDA compute capability.
	CUDACompute string
	// SchedulerParams pins the SCHEDULER_PARAMETERS job variable.
	SchedulerParams string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config for the given operation.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.ManifestPath == "" && cfg.PipelinePath == "" {
		return nil, errors.New("either ManifestPath or PipelinePath must be set")
	}
	return &cfg, nil
}
