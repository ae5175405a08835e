package planjson

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/tfsheet/internal/ctxlog"
)

// Document is one planned resource instance, extracted from the plan's
// planned_values section. Values is the already-merged attribute tree for
// the resource; RefHints maps attribute paths to the entity a pending value
// will resolve to.
type Document struct {
	Type     string
	Name     string
	Address  string
	Values   *Value
	RefHints map[string]string
}

// Plan is a loaded plan file: its resource documents in plan order.
type Plan struct {
	FormatVersion string
	Documents     []*Document
}

// LoadFile reads, validates and decodes a plan JSON file, then extracts its
// resource documents.
func LoadFile(ctx context.Context, path string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading plan file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	if errs := ValidatePlan(data); len(errs) > 0 {
		return nil, fmt.Errorf("plan file %s is not a valid plan document: %s", path, errs[0])
	}

	root, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", path, err)
	}

	plan := Extract(root)
	logger.Debug("Plan file loaded.", "path", path, "resources", len(plan.Documents))
	return plan, nil
}

// Extract walks a decoded plan document and collects its resource documents,
// attaching reference hints from the configuration section.
func Extract(root *Value) *Plan {
	plan := &Plan{
		FormatVersion: root.Get("format_version").AsString(),
	}

	hints := extractReferenceHints(root.Get("configuration"))

	rootModule := root.Get("planned_values").Get("root_module")
	collectModuleResources(rootModule, hints, plan)
	return plan
}

// collectModuleResources appends the resources of one module, then recurses
// into its child modules in document order.
func collectModuleResources(mod *Value, hints map[string]map[string]string, plan *Plan) {
	if mod == nil {
		return
	}
	resources := mod.Get("resources")
	for i := 0; i < resources.Len(); i++ {
		res := resources.Index(i)
		doc := &Document{
			Type:    res.Get("type").AsString(),
			Name:    res.Get("name").AsString(),
			Address: res.Get("address").AsString(),
			Values:  res.Get("values"),
		}
		if doc.Values == nil {
			doc.Values = &Value{Kind: Object}
		}
		doc.RefHints = hints[doc.Address]
		plan.Documents = append(plan.Documents, doc)
	}

	children := mod.Get("child_modules")
	for i := 0; i < children.Len(); i++ {
		collectModuleResources(children.Index(i), hints, plan)
	}
}

// extractReferenceHints builds, per resource address, a map from attribute
// path to the referenced entity that will supply the value after apply.
func extractReferenceHints(config *Value) map[string]map[string]string {
	hints := make(map[string]map[string]string)
	if config == nil {
		return hints
	}

	resources := config.Get("root_module").Get("resources")
	for i := 0; i < resources.Len(); i++ {
		res := resources.Index(i)
		address := res.Get("address").AsString()
		if address == "" {
			continue
		}

		perPath := make(map[string]string)
		walkExpressions(res.Get("expressions"), "", perPath)
		if len(perPath) > 0 {
			hints[address] = perPath
		}
	}
	return hints
}

// walkExpressions descends a configuration expressions object, recording the
// referenced entity for every path that carries a references list. Nested
// blocks appear as arrays of expression objects, so list paths pick up a
// bracketed index just like value paths do.
func walkExpressions(expr *Value, prefix string, out map[string]string) {
	if expr == nil || expr.Kind != Object {
		return
	}

	if refs := expr.Get("references"); refs != nil && refs.Kind == Array {
		if target := referencedEntity(refs); target != "" {
			out[prefix] = target
		}
		return
	}

	for _, e := range expr.Entries {
		path := e.Key
		if prefix != "" {
			path = prefix + "." + e.Key
		}
		switch e.Value.Kind {
		case Object:
			walkExpressions(e.Value, path, out)
		case Array:
			for i, item := range e.Value.Items {
				walkExpressions(item, fmt.Sprintf("%s[%d]", path, i), out)
			}
		}
	}
}

// referencedEntity picks the target entity out of a references list.
// Terraform emits both the full traversal ("aws_iam_policy.a.arn") and the
// resource itself ("aws_iam_policy.a"); the shortest entry that prefixes the
// first one is the resource address.
func referencedEntity(refs *Value) string {
	first := refs.Index(0).AsString()
	if first == "" {
		return ""
	}
	best := first
	for i := 1; i < refs.Len(); i++ {
		ref := refs.Index(i).AsString()
		if ref != "" && len(ref) < len(best) && strings.HasPrefix(first, ref+".") {
			best = ref
		}
	}
	return best
}
