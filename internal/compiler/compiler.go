package compiler

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vk/gridci/internal/ctxlog"
	"github.com/vk/gridci/internal/dag"
	"github.com/vk/gridci/internal/model"
)

// JobSet is the compiled jobs-only fragment of a pipeline document. Jobs
// are in emission order: topological, ties broken by graph declaration
// order.
type JobSet struct {
	Jobs []*model.JobDescriptor
}

// Compile converts a resolved package graph into a job set.
//
// Guarantees on success: every DependsOn entry names a job in the same set;
// the set interpreted as a graph over DependsOn is acyclic; the output is
// byte-stable for identical input.
func Compile(ctx context.Context, graph *model.Graph, settings model.Settings) (*JobSet, error) {
	logger := ctxlog.FromContext(ctx)

	if graph == nil || len(graph.Nodes) == 0 {
		return nil, &EmptyGraphError{}
	}

	identities := make([]string, 0, len(graph.Nodes))
	for _, node := range graph.Nodes {
		identities = append(identities, node.Identity)
	}
	names := assignNames(identities)

	// The structure graph carries every edge regardless of kind: a cycle
	// through a hidden dependency is just as much a data error as one
	// through a runtime dependency, and the emission order must account
	// for all edges so that re-running with a different ordering policy
	// does not reshuffle the document.
	g := dag.New()
	for _, identity := range identities {
		g.AddNode(identity)
	}
	for _, node := range graph.Nodes {
		for _, dep := range node.Deps {
			if _, ok := graph.Node(dep.On); !ok {
				return nil, &UnknownDependencyError{Identity: node.Identity, Missing: dep.On}
			}
			if dep.On == node.Identity {
				return nil, &CyclicDependencyError{Cycle: []string{node.Identity}}
			}
			if err := g.AddEdge(node.Identity, dep.On); err != nil {
				return nil, err
			}
		}
	}

	if cycle := g.FindCycle(); cycle != nil {
		return nil, &CyclicDependencyError{Cycle: cycle}
	}

	order, err := g.TopoSort()
	if err != nil {
		return nil, err
	}

	set := &JobSet{Jobs: make([]*model.JobDescriptor, 0, len(order))}
	pathOwner := make(map[string]string)

	for _, identity := range order {
		node, _ := graph.Node(identity)
		job := compileJob(node, names, settings)

		// Only the name-derived paths are job-unique; the trailing
		// wildcard globs are intentionally shared.
		for _, p := range job.ArtifactPaths[:2] {
			if owner, clash := pathOwner[p]; clash {
				return nil, &ArtifactCollisionError{First: owner, Second: identity, Path: p}
			}
			pathOwner[p] = identity
		}

		set.Jobs = append(set.Jobs, job)
	}

	logger.Debug("Graph compiled into job set.", "jobs", len(set.Jobs))
	return set, nil
}

// compileJob builds the immutable descriptor for one package node.
func compileJob(node *model.PackageNode, names map[string]string, settings model.Settings) *model.JobDescriptor {
	name := names[node.Identity]

	var dependsOn []string
	seen := make(map[string]bool)
	for _, dep := range node.Deps {
		if !dep.Kind.GatesOrdering(settings.OrderHiddenDeps) {
			continue
		}
		depName := names[dep.On]
		if !seen[depName] {
			seen[depName] = true
			dependsOn = append(dependsOn, depName)
		}
	}

	res := settings.Resources
	if node.Resources != nil {
		if node.Resources.Cores > 0 {
			res.Cores = node.Resources.Cores
		}
		if node.Resources.Walltime != "" {
			res.Walltime = node.Resources.Walltime
		}
		if node.Resources.CUDACompute != "" {
			res.CUDACompute = node.Resources.CUDACompute
		}
	}

	// SCHEDULER_PARAMETERS defers to the runner environment unless the
	// run pins a value.
	schedulerParams := "$SCHEDULER_PARAMETERS"
	if settings.SchedulerParams != "" {
		schedulerParams = settings.SchedulerParams
	}

	variables := map[string]string{
		"EB_MODULE_NAME":       node.DisplayName,
		"SCHEDULER_PARAMETERS": schedulerParams,
	}
	if res.Cores > 0 {
		variables["EB_CORES"] = strconv.Itoa(res.Cores)
	}
	if res.Walltime != "" {
		variables["EB_WALLTIME"] = res.Walltime
	}
	if res.CUDACompute != "" {
		variables["CUDA_COMPUTE_CAPABILITIES"] = res.CUDACompute
	}

	return &model.JobDescriptor{
		Name:          name,
		Identity:      node.Identity,
		DependsOn:     dependsOn,
		ArtifactPaths: artifactPaths(name, settings),
		Script:        []string{buildCommand(node, settings)},
		Variables:     variables,
	}
}

// artifactPaths derives the job's upload globs: two name-scoped paths under
// the log and build base directories, then the cwd wildcards every job
// shares.
func artifactPaths(name string, settings model.Settings) []string {
	return []string{
		filepath.Join(settings.LogDir, name, "*.log"),
		filepath.Join(settings.BuildDir, name, "**", "*.log"),
		"*.log",
		"*.out",
		"*.err",
	}
}

// buildCommand reconstructs the build invocation for exactly this node.
func buildCommand(node *model.PackageNode, settings model.Settings) string {
	parts := []string{"eb"}
	parts = append(parts, settings.ExtraArgs...)
	if settings.DryRun {
		parts = append(parts, "--dry-run")
	}
	parts = append(parts, node.Easyconfig)
	return strings.Join(parts, " ")
}
