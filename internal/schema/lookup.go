package schema

import (
	"strings"

	"github.com/vk/tfsheet/internal/attrtree"
)

// Resource resolves attribute paths for a single resource type. It
// implements attrtree.SchemaLookup.
type Resource struct {
	schema *ResourceSchema
}

// Lookup resolves a dotted, bracket-indexed attribute path such as
// "cors_rule[0].allowed_methods[1]". Sequence indices select no schema of
// their own and are ignored during navigation.
func (r *Resource) Lookup(path string) (attrtree.AttributeMeta, bool) {
	if r == nil || r.schema == nil || r.schema.Block == nil {
		return attrtree.AttributeMeta{}, false
	}

	keys := splitKeys(path)
	if len(keys) == 0 {
		return attrtree.AttributeMeta{}, false
	}

	block := r.schema.Block
	for i, key := range keys {
		if attr, ok := block.Attributes[key]; ok {
			// Paths under a plain attribute (map elements, object fields)
			// have no finer-grained schema; they resolve to the attribute.
			return attrMeta(attr), true
		}

		bt, ok := block.BlockTypes[key]
		if !ok || bt.Block == nil {
			return attrtree.AttributeMeta{}, false
		}
		if i == len(keys)-1 {
			return blockMeta(bt), true
		}
		block = bt.Block
	}
	return attrtree.AttributeMeta{}, false
}

// attrMeta converts an attribute definition into node metadata.
func attrMeta(attr *Attribute) attrtree.AttributeMeta {
	meta := attrtree.AttributeMeta{
		Requiredness: attrtree.ResolveRequiredness(true, attr.Required, attr.Optional, attr.Computed),
		Computed:     attr.Computed,
		Description:  attr.Description,
	}
	if attr.Computed {
		meta.DefaultHint = "(computed)"
	}
	return meta
}

// blockMeta derives metadata for a nested block type, which carries no
// attribute flags of its own; min_items decides requiredness.
func blockMeta(bt *BlockType) attrtree.AttributeMeta {
	req := bt.MinItems > 0
	return attrtree.AttributeMeta{
		Requiredness: attrtree.ResolveRequiredness(true, req, !req, false),
	}
}

// splitKeys reduces a display path to its map keys, dropping sequence
// indices: "cors_rule[0].allowed_methods[1]" -> ["cors_rule",
// "allowed_methods"].
func splitKeys(path string) []string {
	var keys []string
	for _, part := range strings.Split(path, ".") {
		if i := strings.IndexByte(part, '['); i >= 0 {
			part = part[:i]
		}
		if part != "" {
			keys = append(keys, part)
		}
	}
	return keys
}
