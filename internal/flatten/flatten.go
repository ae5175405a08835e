package flatten

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/tfsheet/internal/attrtree"
)

// PathSegment is one component of a leaf's address: a map key, optionally
// carrying the zero-based position within a sequence nested under that key.
type PathSegment struct {
	Key      string
	Index    int
	HasIndex bool
}

// String renders the segment the way display names join it, e.g.
// "cors_rule[0]" or "bucket".
func (s PathSegment) String() string {
	if s.HasIndex {
		return fmt.Sprintf("%s[%d]", s.Key, s.Index)
	}
	return s.Key
}

// ValueKind tags how a leaf's value must be presented.
type ValueKind int

const (
	// Literal is a concrete scalar from the document.
	Literal ValueKind = iota
	// Pending is a value unknown at plan time that resolves to Ref.
	Pending
	// Computed is a null whose schema meta marks it provider-computed.
	Computed
)

// LeafRecord is one renderable table row: a scalar leaf plus its full path
// and resolved metadata.
type LeafRecord struct {
	Path        []PathSegment
	DisplayName string
	Kind        ValueKind
	Value       cty.Value
	Ref         string
	Meta        attrtree.AttributeMeta
}

// Depth returns the number of path segments.
func (r LeafRecord) Depth() int {
	return len(r.Path)
}

// Flatten emits one LeafRecord per scalar leaf of the tree, in stable
// depth-first order. Mapping and sequence nodes never become records.
func Flatten(tree *attrtree.Node) []LeafRecord {
	var records []LeafRecord
	walk(tree, nil, &records)
	return records
}

// walk descends node with the path accumulated so far. For sequences the
// index is folded into the segment contributed by the sequence's own key, so
// a list under "cors_rule" yields segments like "cors_rule[0]".
func walk(node *attrtree.Node, path []PathSegment, out *[]LeafRecord) {
	if node == nil {
		return
	}
	switch node.Kind {
	case attrtree.KindScalar:
		if len(path) == 0 {
			// A bare scalar document has no addressable rows.
			return
		}
		*out = append(*out, newRecord(node, path))

	case attrtree.KindMapping:
		for _, e := range node.Entries {
			child := append(append([]PathSegment(nil), path...), PathSegment{Key: e.Key})
			walk(e.Node, child, out)
		}

	case attrtree.KindSequence:
		// The sequence folds its index into the segment its own key
		// contributed. A root-level sequence has no owning key, and a
		// sequence directly inside a sequence keeps the outer index by
		// compounding the rendered segment into the key.
		var base PathSegment
		prefix := path
		if len(path) > 0 {
			base = path[len(path)-1]
			prefix = path[:len(path)-1]
		}
		key := base.Key
		if base.HasIndex {
			key = base.String()
		}
		for i, item := range node.Items {
			child := append(append([]PathSegment(nil), prefix...), PathSegment{Key: key, Index: i, HasIndex: true})
			walk(item, child, out)
		}
	}
}

// newRecord builds the record for a scalar node, tagging pending and
// computed values.
func newRecord(node *attrtree.Node, path []PathSegment) LeafRecord {
	rec := LeafRecord{
		Path:        path,
		DisplayName: joinPath(path),
		Value:       node.Value,
		Meta:        node.Meta,
	}
	switch {
	case node.Pending:
		rec.Kind = Pending
		rec.Ref = node.Ref
	case node.Value.IsNull() && node.Meta.Computed:
		rec.Kind = Computed
	}
	return rec
}

// joinPath renders the dotted, bracket-indexed display name of a path.
func joinPath(path []PathSegment) string {
	var sb strings.Builder
	for i, seg := range path {
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// FormatValue renders a record's value for display. Pending values carry
// their target entity; computed nulls render as a placeholder rather than a
// bare null.
func FormatValue(rec LeafRecord) string {
	switch rec.Kind {
	case Pending:
		return fmt.Sprintf("(pending) %s", rec.Ref)
	case Computed:
		return "(computed)"
	}
	return formatScalar(rec.Value)
}

// formatScalar renders a concrete cty scalar.
func formatScalar(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Bool:
		if v.True() {
			return "true"
		}
		return "false"
	case cty.Number:
		return v.AsBigFloat().Text('f', -1)
	default:
		return v.GoString()
	}
}
