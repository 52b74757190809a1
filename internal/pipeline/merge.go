package pipeline

import (
	"context"

	"github.com/vk/gridci/internal/baseconfig"
	"github.com/vk/gridci/internal/compiler"
	"github.com/vk/gridci/internal/ctxlog"
)

// BuildStage is the single stage every generated job runs in. Ordering
// comes from `needs` edges, not stages, so jobs without dependencies run
// in parallel.
const BuildStage = "build"

// fallbackRetry is applied when the base configuration declares no retry
// policy: transient runner failures are worth one round of retries,
// build failures are not.
var fallbackRetry = baseconfig.Retry{
	Max:  2,
	When: []string{"runner_system_failure", "stuck_or_timeout_failure", "job_execution_timeout"},
}

// Merge combines a compiled job set with the base configuration into the
// final document. The base configuration's variables are validated here;
// a reference cycle aborts the merge and nothing is emitted.
//
// Generator-owned variables win over base-configuration variables of the
// same name: the base configuration must never silently overwrite a field
// the compiler derived.
func Merge(ctx context.Context, set *compiler.JobSet, cfg *baseconfig.Config) (*Document, error) {
	logger := ctxlog.FromContext(ctx)

	if err := baseconfig.ValidateVariables(cfg.Variables); err != nil {
		return nil, err
	}

	variables := map[string]string{
		"EASYBUILD_MODULES_TOOL": "Lmod",
	}
	for name, value := range cfg.Variables {
		if _, owned := variables[name]; !owned {
			variables[name] = value
		}
	}

	defaults := cfg.Defaults
	if defaults.Retry == nil {
		retry := fallbackRetry
		defaults.Retry = &retry
	}

	doc := &Document{
		Stages:    []string{BuildStage},
		Variables: variables,
		Default:   defaults,
		Jobs:      make([]Job, 0, len(set.Jobs)),
	}

	for _, desc := range set.Jobs {
		doc.Jobs = append(doc.Jobs, Job{
			Name:      desc.Name,
			Stage:     BuildStage,
			Needs:     desc.DependsOn,
			Script:    desc.Script,
			Variables: desc.Variables,
			Artifacts: Artifacts{
				When:     "always",
				Paths:    desc.ArtifactPaths,
				ExpireIn: "1 week",
			},
		})
	}

	logger.Debug("Job set merged with base configuration.", "jobs", len(doc.Jobs))
	return doc, nil
}
