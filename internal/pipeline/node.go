package pipeline

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vk/gridci/internal/baseconfig"
)

// Small helpers for surgical edits on yaml.Node mappings. They exist so
// Inject can rewrite only the sections it owns while leaving the rest of
// the document's structure untouched.

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

// mapValue returns the value node for key in a mapping node, or nil.
func mapValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func appendMapEntry(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, scalar(key), value)
}

// ensureMapping returns the mapping node under key, creating an empty one
// if the key is missing.
func ensureMapping(parent *yaml.Node, key string) *yaml.Node {
	if existing := mapValue(parent, key); existing != nil {
		return existing
	}
	created := &yaml.Node{Kind: yaml.MappingNode}
	appendMapEntry(parent, key, created)
	return created
}

// ensureSequence returns the sequence node under key, creating an empty
// one if the key is missing.
func ensureSequence(parent *yaml.Node, key string) *yaml.Node {
	if existing := mapValue(parent, key); existing != nil {
		return existing
	}
	created := &yaml.Node{Kind: yaml.SequenceNode}
	appendMapEntry(parent, key, created)
	return created
}

func sequenceContains(seq *yaml.Node, value string) bool {
	for _, item := range seq.Content {
		if item.Value == value {
			return true
		}
	}
	return false
}

// appendMissing adds each line not already present to the end of the
// sequence, preserving the given order.
func appendMissing(seq *yaml.Node, lines []string) {
	for _, line := range lines {
		if !sequenceContains(seq, line) {
			seq.Content = append(seq.Content, scalar(line))
		}
	}
}

// prependMissing adds each line not already present to the front of the
// sequence, preserving the given order.
func prependMissing(seq *yaml.Node, lines []string) {
	var missing []*yaml.Node
	for _, line := range lines {
		if !sequenceContains(seq, line) {
			missing = append(missing, scalar(line))
		}
	}
	if len(missing) > 0 {
		seq.Content = append(missing, seq.Content...)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTokenNames(m map[string]baseconfig.IDToken) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
