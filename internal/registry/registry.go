package registry

import (
	"context"
	"sort"

	"github.com/vk/tfsheet/internal/ctxlog"
	"github.com/vk/tfsheet/internal/planjson"
	"github.com/vk/tfsheet/internal/render"
)

// Spec describes the documentation behavior of one resource type.
type Spec struct {
	Type       string
	View       render.View
	Priority   int
	EmitsTable bool

	// Descriptions is the built-in override table for the type, keyed by
	// attribute path without sequence positions.
	Descriptions map[string]string
}

// Registry holds the closed resource-type table for one application
// instance.
type Registry struct {
	specs map[string]*Spec
}

// New returns a registry populated with the built-in resource table.
func New() *Registry {
	r := &Registry{specs: make(map[string]*Spec)}
	for _, spec := range builtinSpecs {
		r.specs[spec.Type] = spec
	}
	return r
}

// Lookup returns the spec for a resource type.
func (r *Registry) Lookup(resourceType string) (*Spec, bool) {
	spec, ok := r.specs[resourceType]
	return spec, ok
}

// Types returns the supported resource types in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.specs))
	for t := range r.specs {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Classify splits plan documents into per-view groups, ordered by priority
// (descending), type, then name. Documents of unsupported types and types
// that emit no table of their own are dropped; unsupported types are logged
// once each.
func (r *Registry) Classify(ctx context.Context, docs []*planjson.Document) map[render.View][]*planjson.Document {
	logger := ctxlog.FromContext(ctx)
	warned := make(map[string]bool)
	groups := make(map[render.View][]*planjson.Document)

	for _, doc := range docs {
		spec, ok := r.specs[doc.Type]
		if !ok {
			if !warned[doc.Type] {
				logger.Warn("Skipping unsupported resource type.", "type", doc.Type)
				warned[doc.Type] = true
			}
			continue
		}
		if !spec.EmitsTable {
			continue
		}
		groups[spec.View] = append(groups[spec.View], doc)
	}

	for view := range groups {
		group := groups[view]
		sort.SliceStable(group, func(i, j int) bool {
			a, b := r.specs[group[i].Type], r.specs[group[j].Type]
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
			if group[i].Type != group[j].Type {
				return group[i].Type < group[j].Type
			}
			return group[i].Name < group[j].Name
		})
	}
	return groups
}
