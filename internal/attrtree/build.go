package attrtree

import (
	"context"
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/tfsheet/internal/ctxlog"
	"github.com/vk/tfsheet/internal/planjson"
)

// DefaultMaxDepth bounds tree nesting. Real plan documents stay in single
// digits; the bound only guards against pathological input.
const DefaultMaxDepth = 64

// ErrMaxDepth is returned when a document nests deeper than the configured
// bound. The error is fatal for that document only.
var ErrMaxDepth = errors.New("attribute tree exceeds maximum nesting depth")

// Options configures one Build call. All fields are optional.
type Options struct {
	// Schema resolves attribute paths to their metadata. When nil, every
	// path resolves to Unknown metadata.
	Schema SchemaLookup

	// Exclude prunes attribute paths. When nil, nothing is excluded.
	Exclude ExcludeFunc

	// Overrides maps attribute paths (or their root segment) to replacement
	// description text. Overrides beat schema descriptions.
	Overrides map[string]string

	// RefHints maps attribute paths to the entity a null value will resolve
	// to after apply. A null scalar with a hint becomes a pending scalar.
	RefHints map[string]string

	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// builder carries the per-call state of one Build invocation.
type builder struct {
	opts     Options
	maxDepth int
	diags    []Diagnostic
}

// Build wraps a raw decoded value tree into a typed attribute tree, applying
// schema metadata, description overrides, reference hints and the exclusion
// policy. Diagnostics report non-fatal findings; the only error condition is
// exceeding the nesting bound.
func Build(ctx context.Context, raw *planjson.Value, opts Options) (*Node, []Diagnostic, error) {
	b := &builder{opts: opts, maxDepth: opts.MaxDepth}
	if b.maxDepth <= 0 {
		b.maxDepth = DefaultMaxDepth
	}

	node, err := b.build(raw, "", 0)
	if err != nil {
		return nil, b.diags, err
	}
	if node == nil {
		// The exclusion policy never applies to the root itself.
		node = &Node{Kind: KindMapping}
	}

	if len(b.diags) > 0 {
		ctxlog.FromContext(ctx).Debug("Attribute tree built with diagnostics.", "count", len(b.diags))
	}
	return node, b.diags, nil
}

// build constructs the node for raw at path, or nil when the path is
// excluded.
func (b *builder) build(raw *planjson.Value, path string, depth int) (*Node, error) {
	if depth > b.maxDepth {
		return nil, fmt.Errorf("at path %q: %w", path, ErrMaxDepth)
	}

	meta := b.resolveMeta(path)

	// The root has no path and is never subject to exclusion.
	if path != "" && b.opts.Exclude != nil && b.opts.Exclude(path, meta) {
		return nil, nil
	}

	if raw == nil || raw.Kind == planjson.Invalid {
		b.diags = append(b.diags, Diagnostic{
			Kind:   DiagMalformedNode,
			Path:   path,
			Detail: "value has no recognizable shape, degraded to string",
		})
		return &Node{Kind: KindScalar, Value: cty.StringVal(fmt.Sprintf("%v", raw)), Meta: meta}, nil
	}

	switch raw.Kind {
	case planjson.Object:
		node := &Node{Kind: KindMapping, Meta: meta}
		for _, e := range raw.Entries {
			childPath := e.Key
			if path != "" {
				childPath = path + "." + e.Key
			}
			child, err := b.build(e.Value, childPath, depth+1)
			if err != nil {
				return nil, err
			}
			if child != nil {
				node.Entries = append(node.Entries, MapEntry{Key: e.Key, Node: child})
			}
		}
		return node, nil

	case planjson.Array:
		node := &Node{Kind: KindSequence, Meta: meta}
		for i, item := range raw.Items {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			child, err := b.build(item, childPath, depth+1)
			if err != nil {
				return nil, err
			}
			if child != nil {
				node.Items = append(node.Items, child)
			}
		}
		return node, nil

	default:
		return b.buildScalar(raw, path, meta), nil
	}
}

// buildScalar converts a terminal raw value into a scalar node, marking
// nulls with a reference hint as pending.
func (b *builder) buildScalar(raw *planjson.Value, path string, meta AttributeMeta) *Node {
	node := &Node{Kind: KindScalar, Meta: meta}

	switch raw.Kind {
	case planjson.String:
		node.Value = cty.StringVal(raw.Str)
	case planjson.Bool:
		node.Value = cty.BoolVal(raw.Bool)
	case planjson.Number:
		val, err := cty.ParseNumberVal(raw.Num.String())
		if err != nil {
			b.diags = append(b.diags, Diagnostic{
				Kind:   DiagMalformedNode,
				Path:   path,
				Detail: fmt.Sprintf("unparseable number %q, degraded to string", raw.Num),
			})
			val = cty.StringVal(raw.Num.String())
		}
		node.Value = val
	case planjson.Null:
		node.Value = cty.NullVal(cty.DynamicPseudoType)
		if ref, ok := b.opts.RefHints[path]; ok && ref != "" {
			node.Pending = true
			node.Ref = ref
		}
	}
	return node
}

// resolveMeta looks the path up in the schema and applies the description
// override precedence: full path, then root segment, then schema text.
func (b *builder) resolveMeta(path string) AttributeMeta {
	var meta AttributeMeta
	if path != "" && b.opts.Schema != nil {
		m, ok := b.opts.Schema.Lookup(path)
		if ok {
			meta = m
		} else {
			b.diags = append(b.diags, Diagnostic{
				Kind:   DiagSchemaMismatch,
				Path:   path,
				Detail: "path is absent from the provider schema",
			})
		}
	}

	if text, ok := b.opts.Overrides[path]; ok {
		meta.Description = text
	} else if text, ok := b.opts.Overrides[stripIndices(path)]; ok {
		// Override tables are written without sequence positions, so
		// "cors_rule.allowed_methods" covers every element.
		meta.Description = text
	} else if text, ok := b.opts.Overrides[rootSegment(path)]; ok {
		meta.Description = text
	}
	return meta
}
