package manifest

import "github.com/hashicorp/hcl/v2"

// manifestFile represents the top-level structure of one manifest file.
type manifestFile struct {
	Settings *settingsBlock  `hcl:"settings,block"`
	Packages []*packageBlock `hcl:"package,block"`
}

// packageBlock represents a `package "name" "version"` block. The two
// labels together form the node identity.
type packageBlock struct {
	Name         string          `hcl:"name,label"`
	Version      string          `hcl:"version,label"`
	DisplayName  string          `hcl:"display_name,optional"`
	Easyconfig   string          `hcl:"easyconfig,optional"`
	Dependencies []*depBlock     `hcl:"dependency,block"`
	Resources    *resourcesBlock `hcl:"resources,block"`
}

// depBlock represents a `dependency "<identity>"` block inside a package.
type depBlock struct {
	On   string `hcl:"on,label"`
	Kind string `hcl:"kind,optional"`
}

// resourcesBlock overrides the run-wide resource hints for one package.
type resourcesBlock struct {
	Cores       int    `hcl:"cores,optional"`
	Walltime    string `hcl:"walltime,optional"`
	CUDACompute string `hcl:"cuda_compute,optional"`
}

// settingsBlock captures the raw `settings` body. Its attributes are free
// HCL expressions, evaluated during translation rather than bound to a
// rigid struct, so new settings do not require schema changes to parse.
type settingsBlock struct {
	Body hcl.Body `hcl:",remain"`
}
