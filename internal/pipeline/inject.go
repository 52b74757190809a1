package pipeline

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/gridci/internal/baseconfig"
	"github.com/vk/gridci/internal/ctxlog"
)

// cleanupCommands are appended to every injected pipeline's after_script
// so runners do not accumulate build and log trees between jobs.
var cleanupCommands = []string{
	`echo "Cleaning up temporary files"`,
	"rm -rf /tmp/eblog || true",
	"rm -rf /tmp/ebbuild || true",
	`echo "Job completed: $CI_JOB_NAME"`,
}

// Inject applies the base configuration to an existing pipeline document
// in place: defaults are merged into the `default` section, validated
// trigger-job variables are added without overwriting, and cleanup
// commands land in after_script. The document is rewritten atomically and
// everything outside the touched sections survives byte-for-byte in
// structure.
func Inject(ctx context.Context, path string, cfg *baseconfig.Config) error {
	logger := ctxlog.FromContext(ctx)

	if err := baseconfig.ValidateVariables(cfg.Variables); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading pipeline document %q: %w", path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("parsing pipeline document %q: %w", path, err)
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("pipeline document %q is empty or not a mapping", path)
	}
	doc := root.Content[0]

	injectDefaults(doc, cfg.Defaults)
	injectVariables(doc, cfg.Variables)

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing pipeline document: %w", err)
	}

	logger.Debug("Defaults injected into pipeline document.", "path", path)
	return writeAtomic(path, out)
}

// injectDefaults merges the configured defaults into the document's
// `default` section, creating it if absent. Existing entries are never
// overwritten; lists are extended with missing lines only.
func injectDefaults(doc *yaml.Node, defaults baseconfig.Defaults) {
	def := ensureMapping(doc, "default")

	if len(defaults.BeforeScript) > 0 {
		prependMissing(ensureSequence(def, "before_script"), defaults.BeforeScript)
	}

	after := ensureSequence(def, "after_script")
	appendMissing(after, defaults.AfterScript)
	appendMissing(after, cleanupCommands)

	if len(defaults.Tags) > 0 {
		appendMissing(ensureSequence(def, "tags"), defaults.Tags)
	}

	if len(defaults.IDTokens) > 0 {
		tokens := ensureMapping(def, "id_tokens")
		for _, name := range sortedTokenNames(defaults.IDTokens) {
			if mapValue(tokens, name) != nil {
				continue
			}
			var val yaml.Node
			if err := val.Encode(defaults.IDTokens[name]); err == nil {
				appendMapEntry(tokens, name, &val)
			}
		}
	}

	if mapValue(def, "retry") == nil {
		retry := defaults.Retry
		if retry == nil {
			fallback := fallbackRetry
			retry = &fallback
		}
		var val yaml.Node
		if err := val.Encode(retry); err == nil {
			appendMapEntry(def, "retry", &val)
		}
	}

	if defaults.Timeout != "" && mapValue(def, "timeout") == nil {
		appendMapEntry(def, "timeout", scalar(defaults.Timeout))
	}
	if defaults.Image != "" && mapValue(def, "image") == nil {
		appendMapEntry(def, "image", scalar(defaults.Image))
	}
}

// injectVariables adds validated trigger-job variables to the document's
// top-level `variables` mapping, keeping any value already present.
func injectVariables(doc *yaml.Node, variables map[string]string) {
	if len(variables) == 0 {
		return
	}
	vars := ensureMapping(doc, "variables")
	for _, name := range sortedKeys(variables) {
		if mapValue(vars, name) == nil {
			appendMapEntry(vars, name, scalar(variables[name]))
		}
	}
}
