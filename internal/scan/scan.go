// Package scan finds the content files whose class names feed the
// stylesheet.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultContent mirrors the usual Next.js source layout
var DefaultContent = []string{
	"src/app/**/*.{js,ts,jsx,tsx,mdx}",
	"src/components/**/*.{js,ts,jsx,tsx,mdx}",
	"src/**/*.{js,ts,jsx,tsx,mdx}",
}

var skipDirs = []string{"node_modules", "dist", "build"}

// shouldSkipDirectory reports hidden and dependency/build directories
func shouldSkipDirectory(d fs.DirEntry) bool {
	if !d.IsDir() {
		return false
	}
	name := d.Name()
	return strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)
}

// matchesAnyPattern reports whether relPath matches at least one glob.
// Paths are slash-normalized because doublestar expects forward slashes.
func matchesAnyPattern(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, normalized) {
			return true
		}
	}
	return false
}

// Files walks root and returns every file matching one of the content
// globs, each once, sorted. Globs are relative to root.
func Files(ctx context.Context, root string, patterns []string) ([]string, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid content glob %q", p)
		}
	}
	if len(patterns) == 0 {
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable entries are skipped, the walk continues
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path != root && shouldSkipDirectory(d) {
			return filepath.SkipDir
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if matchesAnyPattern(rel, patterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	slices.Sort(files)
	return files, nil
}
