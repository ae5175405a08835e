package engine

import (
	"context"
	"fmt"

	"github.com/vk/tfsheet/internal/attrtree"
	"github.com/vk/tfsheet/internal/ctxlog"
	"github.com/vk/tfsheet/internal/flatten"
	"github.com/vk/tfsheet/internal/layout"
	"github.com/vk/tfsheet/internal/overrides"
	"github.com/vk/tfsheet/internal/planjson"
	"github.com/vk/tfsheet/internal/registry"
	"github.com/vk/tfsheet/internal/render"
	"github.com/vk/tfsheet/internal/schema"
)

// Options carries the collaborators shared by every Process call.
type Options struct {
	// Schemas resolves provider schemas; may be nil.
	Schemas *schema.Store
	// Registry supplies per-type behavior and built-in descriptions.
	Registry *registry.Registry
	// Overrides is the user configuration; may be nil.
	Overrides *overrides.Config
	// MaxDepth overrides the default nesting bound when positive.
	MaxDepth int
}

// Process transforms one plan document into its render input. Diagnostics
// report non-fatal findings; an error means the document must be skipped
// (other documents are unaffected).
func Process(ctx context.Context, doc *planjson.Document, opts Options) (render.Input, []attrtree.Diagnostic, error) {
	logger := ctxlog.FromContext(ctx).With("address", doc.Address)

	buildOpts := attrtree.Options{
		Overrides: mergedDescriptions(doc.Type, opts),
		RefHints:  doc.RefHints,
		MaxDepth:  opts.MaxDepth,
	}
	if res := opts.Schemas.ForResource(doc.Type); res != nil {
		buildOpts.Schema = res
	}
	var extraExcludes map[string]bool
	if opts.Overrides != nil {
		extraExcludes = opts.Overrides.ExcludeFor(doc.Type)
	}
	buildOpts.Exclude = attrtree.DefaultExclusion(extraExcludes)

	tree, diags, err := attrtree.Build(ctx, doc.Values, buildOpts)
	if err != nil {
		return render.Input{}, diags, fmt.Errorf("failed to build attribute tree for %s: %w", doc.Address, err)
	}

	records := flatten.Flatten(tree)
	plan := layout.Compute(records)
	logger.Debug("Document processed.", "records", len(records), "maxDepth", plan.MaxDepth)

	return render.Input{
		EntityType:    doc.Type,
		EntityName:    doc.Name,
		EntityAddress: doc.Address,
		Records:       records,
		Layout:        plan,
	}, diags, nil
}

// mergedDescriptions layers the user's description overrides over the
// registry's built-in table for the type. The user wins on conflicts.
func mergedDescriptions(resourceType string, opts Options) map[string]string {
	var builtin map[string]string
	if opts.Registry != nil {
		if spec, ok := opts.Registry.Lookup(resourceType); ok {
			builtin = spec.Descriptions
		}
	}
	var user map[string]string
	if opts.Overrides != nil {
		user = opts.Overrides.DescriptionsFor(resourceType)
	}
	if len(user) == 0 {
		return builtin
	}

	merged := make(map[string]string, len(builtin)+len(user))
	for k, v := range builtin {
		merged[k] = v
	}
	for k, v := range user {
		merged[k] = v
	}
	return merged
}
