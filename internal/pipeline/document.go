package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/gridci/internal/baseconfig"
)

// Artifacts is the upload declaration attached to every job.
type Artifacts struct {
	When     string   `yaml:"when"`
	Paths    []string `yaml:"paths"`
	ExpireIn string   `yaml:"expire_in"`
}

// Job is one serialized pipeline job.
type Job struct {
	// Name is the document key for this job, not a field of its body.
	Name string `yaml:"-"`

	Stage     string            `yaml:"stage"`
	Needs     []string          `yaml:"needs,omitempty"`
	Script    []string          `yaml:"script"`
	Variables map[string]string `yaml:"variables,omitempty"`
	Artifacts Artifacts         `yaml:"artifacts"`
}

// Document is the complete child-pipeline document handed to the CI
// substrate.
type Document struct {
	Stages    []string
	Variables map[string]string
	Default   baseconfig.Defaults
	Jobs      []Job
}

// MarshalYAML emits the document with its fixed top-level key order:
// stages, variables, default, then every job under its own key in
// compiled order. A plain struct marshal cannot express job-name keys, so
// the mapping is built node by node.
func (d *Document) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key string, value any) error {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(value); err != nil {
			return fmt.Errorf("encoding %q section: %w", key, err)
		}
		root.Content = append(root.Content, keyNode, valNode)
		return nil
	}

	if err := add("stages", d.Stages); err != nil {
		return nil, err
	}
	if err := add("variables", d.Variables); err != nil {
		return nil, err
	}
	if err := add("default", d.Default); err != nil {
		return nil, err
	}
	for i := range d.Jobs {
		if err := add(d.Jobs[i].Name, &d.Jobs[i]); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// Encode serializes the document to YAML bytes.
func (d *Document) Encode() ([]byte, error) {
	return yaml.Marshal(d)
}
