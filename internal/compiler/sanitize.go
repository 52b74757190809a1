package compiler

import (
	"fmt"
	"strings"
)

// sanitizeJobName turns an arbitrary identity into a valid CI job name
// token. The transformation is deterministic: path and toolchain
// separators become dashes, `+` spells out as `plus`, parentheses vanish,
// and a name that would start with a non-letter gets a `job-` prefix.
func sanitizeJobName(identity string) string {
	r := strings.NewReplacer(
		"/", "-",
		":", "-",
		" ", "-",
		"+", "plus",
		"(", "",
		")", "",
	)
	sanitized := r.Replace(identity)

	if sanitized == "" {
		return "unknown-job"
	}
	first := rune(sanitized[0])
	if !(first == '_' || (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		sanitized = "job-" + sanitized
	}
	return sanitized
}

// assignNames maps every identity to a final, unique job name. Collisions
// are disambiguated by a counter suffix in graph declaration order, so the
// mapping is stable across runs on identical input.
func assignNames(identities []string) map[string]string {
	names := make(map[string]string, len(identities))
	taken := make(map[string]bool, len(identities))

	for _, identity := range identities {
		name := sanitizeJobName(identity)
		if taken[name] {
			for i := 2; ; i++ {
				candidate := fmt.Sprintf("%s-%d", name, i)
				if !taken[candidate] {
					name = candidate
					break
				}
			}
		}
		taken[name] = true
		names[identity] = name
	}

	return names
}
