package app

import (
	"context"
	"fmt"

	"github.com/vk/gridci/internal/baseconfig"
	"github.com/vk/gridci/internal/compiler"
	"github.com/vk/gridci/internal/ctxlog"
	"github.com/vk/gridci/internal/manifest"
	"github.com/vk/gridci/internal/pipeline"
)

// Generate runs the full chain: load the package-graph manifest, compile
// it into a job set, load the base configuration, merge, and write the
// pipeline document. On any failure nothing is written.
func (a *App) Generate(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "command", "generate")
	a.logger.Debug("Generate started.", "manifest", a.config.ManifestPath)

	graph, settings, err := manifest.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return err
	}
	settings.DryRun = settings.DryRun || a.config.DryRun
	if a.config.CUDACompute != "" {
		settings.Resources.CUDACompute = a.config.CUDACompute
	}
	if a.config.SchedulerParams != "" {
		settings.SchedulerParams = a.config.SchedulerParams
	}

	set, err := compiler.Compile(ctx, graph, settings)
	if err != nil {
		return err
	}
	a.logger.Info("Graph compiled.", "packages", len(graph.Nodes), "jobs", len(set.Jobs))

	cfg, err := baseconfig.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return err
	}

	doc, err := pipeline.Merge(ctx, set, cfg)
	if err != nil {
		return err
	}

	if err := pipeline.Write(doc, a.config.OutputPath); err != nil {
		return fmt.Errorf("writing pipeline document: %w", err)
	}
	a.logger.Info("Pipeline document written.", "path", a.config.OutputPath)

	a.printSummary(doc)
	return nil
}

// Inject applies the base configuration to an existing pipeline document
// in place.
func (a *App) Inject(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "command", "inject")
	a.logger.Debug("Inject started.", "pipeline", a.config.PipelinePath)

	cfg, err := baseconfig.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return err
	}

	if err := pipeline.Inject(ctx, a.config.PipelinePath, cfg); err != nil {
		return err
	}
	a.logger.Info("Defaults injected.", "path", a.config.PipelinePath)

	fmt.Fprintf(a.outW, "Injected base configuration into %s\n", a.config.PipelinePath)
	return nil
}
