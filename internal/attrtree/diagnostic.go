package attrtree

import "fmt"

// DiagKind classifies a non-fatal condition found while building a tree.
type DiagKind int

const (
	// DiagSchemaMismatch means a value path exists in the document but the
	// schema collaborator could not resolve it.
	DiagSchemaMismatch DiagKind = iota
	// DiagMalformedNode means a raw node matched none of the expected
	// shapes and degraded to a stringified scalar.
	DiagMalformedNode
)

// String returns the diagnostic kind name.
func (k DiagKind) String() string {
	switch k {
	case DiagMalformedNode:
		return "malformed-node"
	default:
		return "schema-mismatch"
	}
}

// Diagnostic is one non-fatal finding, scoped to a single path. Building
// continues past every diagnostic.
type Diagnostic struct {
	Kind   DiagKind
	Path   string
	Detail string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %q: %s", d.Kind, d.Path, d.Detail)
}
