package attrtree

import "strings"

// ExcludeFunc decides whether the attribute at path is omitted from output.
// It is evaluated top-down: excluding a mapping or sequence drops the whole
// subtree before it is built.
type ExcludeFunc func(path string, meta AttributeMeta) bool

// DefaultExclusion returns the standard exclusion policy for provider
// resources: provider-computed identifiers, duplicated tag containers except
// tags.Name, attributes the schema marks as computed-only, and any extra
// paths the caller supplies.
func DefaultExclusion(extra map[string]bool) ExcludeFunc {
	return func(path string, meta AttributeMeta) bool {
		switch path {
		case "id", "arn", "tags_all":
			return true
		}
		if strings.HasPrefix(path, "tags_all.") {
			return true
		}
		if strings.HasPrefix(path, "tags.") && path != "tags.Name" {
			return true
		}
		if meta.Requiredness == ComputedOnly {
			return true
		}
		return extra[path]
	}
}

// rootSegment returns the leading map key of a path, e.g.
// "cors_rule[0].allowed_methods" -> "cors_rule".
func rootSegment(path string) string {
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}

// stripIndices removes bracketed sequence positions from a path, e.g.
// "cors_rule[0].allowed_methods[1]" -> "cors_rule.allowed_methods".
func stripIndices(path string) string {
	if !strings.ContainsRune(path, '[') {
		return path
	}
	var sb strings.Builder
	skip := false
	for _, r := range path {
		switch {
		case r == '[':
			skip = true
		case r == ']':
			skip = false
		case !skip:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
