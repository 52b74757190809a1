package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/gridci/internal/ctxlog"
	"github.com/vk/gridci/internal/fsutil"
	"github.com/vk/gridci/internal/model"
)

// Load reads the package-graph manifest at the given path, which may be a
// single .hcl file or a directory searched recursively. It returns the
// graph in declaration order plus the run-wide settings. Any failure comes
// back as a *LoadError.
//
// Declaration order is file-discovery order, then block order within each
// file, so repeated runs over the same tree see the same order.
func Load(ctx context.Context, path string) (*model.Graph, model.Settings, error) {
	graph, settings, err := load(ctx, path)
	if err != nil {
		return nil, settings, &LoadError{Path: path, Err: err}
	}
	return graph, settings, nil
}

func load(ctx context.Context, path string) (*model.Graph, model.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	settings := model.DefaultSettings()

	info, err := os.Stat(path)
	if err != nil {
		return nil, settings, err
	}

	var files []string
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, settings, fmt.Errorf("scanning manifest directory %q: %w", path, err)
		}
	} else {
		files = []string{path}
	}
	logger.Debug("Manifest files discovered.", "count", len(files))

	graph := &model.Graph{}
	seen := make(map[string]string) // identity -> file it was declared in
	settingsSeen := ""

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, settings, fmt.Errorf("parsing manifest %q: %w", file, diags)
		}

		var mf manifestFile
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &mf); diags.HasErrors() {
			return nil, settings, fmt.Errorf("decoding manifest %q: %w", file, diags)
		}

		if mf.Settings != nil {
			if settingsSeen != "" {
				return nil, settings, fmt.Errorf("duplicate settings block: declared in both %q and %q", settingsSeen, file)
			}
			settingsSeen = file
			if err := decodeSettings(mf.Settings, &settings); err != nil {
				return nil, settings, fmt.Errorf("settings block in %q: %w", file, err)
			}
		}

		for _, pkg := range mf.Packages {
			node, err := translatePackage(pkg)
			if err != nil {
				return nil, settings, fmt.Errorf("package %q in %q: %w", pkg.Name, file, err)
			}
			if prev, dup := seen[node.Identity]; dup {
				return nil, settings, fmt.Errorf("duplicate package identity %q: declared in both %q and %q", node.Identity, prev, file)
			}
			seen[node.Identity] = file
			graph.Nodes = append(graph.Nodes, node)
		}
	}

	logger.Debug("Manifest loaded.", "packages", len(graph.Nodes))
	return graph, settings, nil
}

// translatePackage converts a decoded package block into a model node,
// validating dependency kinds and filling defaulted fields.
func translatePackage(pkg *packageBlock) (*model.PackageNode, error) {
	identity := pkg.Name + "-" + pkg.Version

	displayName := pkg.DisplayName
	if displayName == "" {
		displayName = pkg.Name + "/" + pkg.Version
	}
	easyconfig := pkg.Easyconfig
	if easyconfig == "" {
		easyconfig = identity + ".eb"
	}

	node := &model.PackageNode{
		Identity:    identity,
		DisplayName: displayName,
		Easyconfig:  easyconfig,
	}

	for _, dep := range pkg.Dependencies {
		kind, err := model.ParseKind(dep.Kind)
		if err != nil {
			return nil, fmt.Errorf("dependency %q: %w", dep.On, err)
		}
		node.Deps = append(node.Deps, model.Dependency{On: dep.On, Kind: kind})
	}

	if pkg.Resources != nil {
		node.Resources = &model.Resources{
			Cores:       pkg.Resources.Cores,
			Walltime:    pkg.Resources.Walltime,
			CUDACompute: pkg.Resources.CUDACompute,
		}
	}

	return node, nil
}
