// Package fsutil provides file system helpers for locating input documents.
package fsutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/tfsheet/internal/ctxlog"
)

// ResolvePlanPath expands an input path into the plan files to process.
// A file path must name a .json file; a directory is scanned recursively
// for .json files, returned in sorted order for deterministic output.
func ResolvePlanPath(ctx context.Context, path string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving plan path.", "path", path)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("plan path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if info.IsDir() {
		logger.Debug("Path is a directory, scanning for plan files.", "directory", path)
		files, err := findFilesByExtension(path, ".json")
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .json plan files found under %s", path)
		}
		return files, nil
	}

	if filepath.Ext(path) != ".json" {
		return nil, fmt.Errorf("specified file is not a .json plan file: %s", path)
	}
	return []string{path}, nil
}

// findFilesByExtension recursively collects files under rootPath ending
// with the given extension.
func findFilesByExtension(rootPath, extension string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
