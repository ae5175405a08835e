package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vk/tfsheet/internal/ctxlog"
	"github.com/vk/tfsheet/internal/engine"
	"github.com/vk/tfsheet/internal/fsutil"
	"github.com/vk/tfsheet/internal/planjson"
	"github.com/vk/tfsheet/internal/render"
)

// Run executes the full pipeline: resolve input files, process each plan,
// and write one output file per populated view. A failing plan file is
// reported and skipped; the remaining plans still produce output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	files, err := fsutil.ResolvePlanPath(ctx, a.config.PlanPath)
	if err != nil {
		return err
	}

	var failures int
	for _, file := range files {
		outDir := a.config.OutputDir
		if len(files) > 1 {
			// Multiple plans share one output root; keep their sheets apart.
			outDir = filepath.Join(outDir, planStem(file))
		}
		if err := a.processPlan(ctx, file, outDir); err != nil {
			a.logger.Error("Plan file failed.", "file", file, "error", err)
			failures++
		}
	}

	if failures == len(files) {
		return fmt.Errorf("all %d plan file(s) failed", failures)
	}
	a.logger.Info("Done.", "plans", len(files), "failed", failures)
	return nil
}

// processPlan converts one plan file into its per-view output files.
func (a *App) processPlan(ctx context.Context, path, outDir string) error {
	plan, err := planjson.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	a.logger.Info("Processing plan.", "file", path, "resources", len(plan.Documents))

	a.registry.FoldAttachments(ctx, plan.Documents)
	groups := a.registry.Classify(ctx, plan.Documents)
	if len(groups) == 0 {
		a.logger.Warn("Plan contains no supported resources.", "file", path)
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	// Views are independent documents; render them concurrently with a
	// bounded worker pool.
	jobs := make(chan render.View)
	errs := make([]error, 0, len(groups))
	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := a.config.WorkerCount
	if workers > len(groups) {
		workers = len(groups)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for view := range jobs {
				if err := a.renderView(ctx, view, groups[view], outDir); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}()
	}
	for _, view := range render.AllViews {
		if len(groups[view]) > 0 {
			jobs <- view
		}
	}
	close(jobs)
	wg.Wait()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// renderView builds the page for one view and writes it. A document that
// fails to process is logged and dropped from the page; the view itself
// still renders.
func (a *App) renderView(ctx context.Context, view render.View, docs []*planjson.Document, outDir string) error {
	logger := ctxlog.FromContext(ctx).With("view", view.BaseName())

	opts := engine.Options{
		Schemas:   a.schemas,
		Registry:  a.registry,
		Overrides: a.overrides,
	}

	inputs := make([]render.Input, 0, len(docs))
	for _, doc := range docs {
		input, diags, err := engine.Process(ctx, doc, opts)
		for _, d := range diags {
			logger.Debug("Pipeline diagnostic.", "address", doc.Address, "diagnostic", d.String())
		}
		if err != nil {
			logger.Error("Skipping document.", "address", doc.Address, "error", err)
			continue
		}
		inputs = append(inputs, input)
	}

	page := render.New(a.format).Page(view.Title(), inputs)
	outPath := filepath.Join(outDir, view.BaseName()+a.format.Extension())
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logger.Info("Generated output file.", "path", outPath, "resources", len(inputs))
	return nil
}

// planStem returns the file name without directory or extension.
func planStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
