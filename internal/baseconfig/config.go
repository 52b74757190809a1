package baseconfig

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/gridci/internal/ctxlog"
)

// TriggerJob is the name of the parent-pipeline job whose variables are
// carried into the generated child pipeline.
const TriggerJob = "execute_builds"

// IDToken is one authentication token declaration, passed through opaquely.
type IDToken struct {
	Aud string `yaml:"aud"`
}

// Retry is a job retry policy.
type Retry struct {
	Max  int      `yaml:"max"`
	When []string `yaml:"when,omitempty"`
}

// Defaults is the `default` section applied to every generated job.
type Defaults struct {
	BeforeScript []string           `yaml:"before_script,omitempty"`
	AfterScript  []string           `yaml:"after_script,omitempty"`
	Tags         []string           `yaml:"tags,omitempty"`
	IDTokens     map[string]IDToken `yaml:"id_tokens,omitempty"`
	Retry        *Retry             `yaml:"retry,omitempty"`
	Timeout      string             `yaml:"timeout,omitempty"`
	Image        string             `yaml:"image,omitempty"`
}

// Config is the parsed base configuration document.
type Config struct {
	Defaults  Defaults
	Variables map[string]string
}

// rawConfig mirrors just the parts of .gitlab-ci.yml this tool consumes;
// everything else in the file belongs to the parent pipeline and is
// ignored.
type rawConfig struct {
	Default       Defaults `yaml:"default"`
	ExecuteBuilds struct {
		Variables map[string]string `yaml:"variables"`
	} `yaml:"execute_builds"`
}

// Load reads and parses the base configuration at the given path. A
// missing file yields NotFoundError; unparseable YAML yields ParseError.
// An empty file is valid and loads as empty defaults and variables.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading base configuration %q: %w", path, err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	cfg := &Config{
		Defaults:  raw.Default,
		Variables: raw.ExecuteBuilds.Variables,
	}
	if cfg.Variables == nil {
		cfg.Variables = map[string]string{}
	}

	logger.Debug("Base configuration loaded.",
		"path", path,
		"tags", len(cfg.Defaults.Tags),
		"variables", len(cfg.Variables),
	)
	return cfg, nil
}
