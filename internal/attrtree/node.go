package attrtree

import "github.com/zclconf/go-cty/cty"

// NodeKind discriminates the three node shapes of an attribute tree.
type NodeKind int

const (
	// KindScalar is a terminal value.
	KindScalar NodeKind = iota
	// KindMapping is an ordered set of key/child pairs.
	KindMapping
	// KindSequence is an ordered list of children.
	KindSequence
)

// String returns the kind name for logging.
func (k NodeKind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// MapEntry is one key/child pair of a mapping node, in insertion order.
type MapEntry struct {
	Key  string
	Node *Node
}

// Node is one node of the built attribute tree. Nodes are immutable after
// Build returns and belong exclusively to their tree.
type Node struct {
	Kind NodeKind
	Meta AttributeMeta

	// Scalar payload. Pending marks a value that is unknown at plan time
	// but statically resolves to the entity named by Ref; Value is null in
	// that case.
	Value   cty.Value
	Pending bool
	Ref     string

	// Container payloads.
	Entries []MapEntry // KindMapping
	Items   []*Node    // KindSequence
}
