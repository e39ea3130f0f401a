package scan_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/tuc/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func rel(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestFilesDefaultContent(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"src/app/page.tsx",
		"src/components/Button.jsx",
		"src/lib/mock-data.ts",
		"src/styles/globals.css",
		"src/node_modules/pkg/index.js",
		"src/.cache/x.js",
		"README.md",
	)

	files, err := scan.Files(context.Background(), root, scan.DefaultContent)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src/app/page.tsx",
		"src/components/Button.jsx",
		"src/lib/mock-data.ts",
	}, rel(t, root, files), "overlapping globs must not duplicate files")
}

func TestFilesCustomGlobs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "index.html", "pages/about.html", "dist/index.html")

	files, err := scan.Files(context.Background(), root, []string{"**/*.html"})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "pages/about.html"}, rel(t, root, files))
}

func TestFilesErrors(t *testing.T) {
	_, err := scan.Files(context.Background(), "", scan.DefaultContent)
	assert.Error(t, err)

	_, err = scan.Files(context.Background(), t.TempDir(), []string{"src/[.tsx"})
	assert.Error(t, err)
}

func TestFilesMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	files, err := scan.Files(context.Background(), missing, scan.DefaultContent)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, files)

	root := t.TempDir()
	writeFiles(t, root, "package.json")
	_, err = scan.Files(context.Background(), filepath.Join(root, "package.json"), scan.DefaultContent)
	assert.ErrorContains(t, err, "not a directory")
}

func TestFilesNoPatterns(t *testing.T) {
	files, err := scan.Files(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilesCancelled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "src/a.ts")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scan.Files(ctx, root, scan.DefaultContent)
	assert.ErrorIs(t, err, context.Canceled)
}
