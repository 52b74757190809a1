package compiler

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/vk/gridci/internal/model"
)

// drawGraph generates a random acyclic package graph: nodes in declaration
// order, each depending only on earlier nodes, with messy identities that
// stress sanitization.
func drawGraph(r *rapid.T) *model.Graph {
	n := rapid.IntRange(1, 25).Draw(r, "nodes")
	kinds := []model.DependencyKind{model.KindRuntime, model.KindBuild, model.KindHidden}

	graph := &model.Graph{}
	for i := 0; i < n; i++ {
		slug := rapid.StringMatching(`[A-Za-z0-9+/: ()]{0,8}`).Draw(r, "slug")
		node := &model.PackageNode{
			Identity:   fmt.Sprintf("%s#%d", slug, i),
			Easyconfig: fmt.Sprintf("pkg-%d.eb", i),
		}
		if i > 0 {
			deps := rapid.IntRange(0, i).Draw(r, "deps")
			for _, target := range rapid.SliceOfNDistinct(rapid.IntRange(0, i-1), deps, deps, rapid.ID).Draw(r, "targets") {
				node.Deps = append(node.Deps, model.Dependency{
					On:   graph.Nodes[target].Identity,
					Kind: kinds[rapid.IntRange(0, 2).Draw(r, "kind")],
				})
			}
		}
		graph.Nodes = append(graph.Nodes, node)
	}
	return graph
}

func TestCompile_Properties(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		graph := drawGraph(r)

		set, err := Compile(context.Background(), graph, settingsForTest())
		if err != nil {
			r.Fatalf("compile of acyclic graph failed: %v", err)
		}

		byName := make(map[string]*model.JobDescriptor, len(set.Jobs))
		for _, job := range set.Jobs {
			if _, dup := byName[job.Name]; dup {
				r.Fatalf("job name %q assigned twice", job.Name)
			}
			byName[job.Name] = job
		}

		// No dangling references, and every needs edge points backwards in
		// emission order, which also proves the needs relation is acyclic.
		position := make(map[string]int, len(set.Jobs))
		for i, job := range set.Jobs {
			position[job.Name] = i
		}
		for i, job := range set.Jobs {
			for _, dep := range job.DependsOn {
				if _, ok := byName[dep]; !ok {
					r.Fatalf("job %q needs %q, which is not in the set", job.Name, dep)
				}
				if position[dep] >= i {
					r.Fatalf("job %q at %d needs %q at %d", job.Name, i, dep, position[dep])
				}
			}
		}

		// Determinism: a second compile of the same input is identical.
		again, err := Compile(context.Background(), graph, settingsForTest())
		if err != nil {
			r.Fatalf("second compile failed: %v", err)
		}
		if len(again.Jobs) != len(set.Jobs) {
			r.Fatalf("second compile produced %d jobs, first %d", len(again.Jobs), len(set.Jobs))
		}
		for i := range set.Jobs {
			if set.Jobs[i].Name != again.Jobs[i].Name {
				r.Fatalf("job order differs at %d: %q vs %q", i, set.Jobs[i].Name, again.Jobs[i].Name)
			}
		}
	})
}
