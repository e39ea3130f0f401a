package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/tuc/internal/config"
	"bennypowers.dev/tuc/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, scan.DefaultContent, cfg.Content)
	assert.Equal(t, "var(--sys-font-code)", cfg.Theme.FontFamily["code"])
	assert.Equal(t, "-", cfg.Output)
	assert.Len(t, cfg.SafelistClasses(), 14+264)
	require.NoError(t, cfg.Validate())

	cfg.Content[0] = "changed"
	assert.NotEqual(t, "changed", scan.DefaultContent[0], "defaults must be copied")
}

func TestLoadNoConfig(t *testing.T) {
	root := t.TempDir()
	cfg, source, err := config.Load(root, "")
	require.NoError(t, err)
	assert.Empty(t, source)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, config.Default().Content, cfg.Content)
}

func TestLoadJSONC(t *testing.T) {
	root := t.TempDir()
	write(t, root, "tuc.config.jsonc", `{
  // only html pages
  "content": ["**/*.html"],
  "tokens": ["tokens.json"],
  "emitRoot": true,
  "theme": { "fontFamily": { "serif": "var(--sys-font-serif)" } },
}`)

	cfg, source, err := config.Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "tuc.config.jsonc"), source)
	assert.Equal(t, []string{"**/*.html"}, cfg.Content)
	assert.True(t, cfg.EmitRoot)
	assert.Equal(t, []string{filepath.Join(root, "tokens.json")}, cfg.TokenPaths())
	assert.Equal(t, "var(--sys-font-serif)", cfg.Theme.FontFamily["serif"])
	assert.Equal(t, "var(--sys-font-sans)", cfg.Theme.FontFamily["sans"], "theme entries merge with defaults")
	assert.Equal(t, config.Default().Safelist, cfg.Safelist, "absent keys keep defaults")
}

func TestLoadYAML(t *testing.T) {
	root := t.TempDir()
	write(t, root, "tuc.config.yaml", `
safelist: [bg-x]
scales:
  prefixes: [bg-color]
  groups: [brand]
  steps: ["100", "200"]
minify: true
workers: 2
`)

	cfg, _, err := config.Load(root, "")
	require.NoError(t, err)
	assert.True(t, cfg.Minify)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"bg-x", "bg-color-brand-100", "bg-color-brand-200"}, cfg.SafelistClasses())
}

func TestLoadYAMLThemeMerge(t *testing.T) {
	root := t.TempDir()
	write(t, root, "tuc.config.yaml", `
theme:
  fontFamily:
    display: var(--sys-font-display)
    sans: Inter, sans-serif
`)

	cfg, _, err := config.Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"code":    "var(--sys-font-code)",
		"display": "var(--sys-font-display)",
		"mono":    "var(--sys-font-mono)",
		"sans":    "Inter, sans-serif",
	}, cfg.Theme.FontFamily)
}

func TestLoadDiscoveryOrder(t *testing.T) {
	root := t.TempDir()
	write(t, root, "tuc.config.yml", `output: from-yml.css`)
	write(t, root, "tuc.config.json", `{"output": "from-json.css"}`)

	cfg, source, err := config.Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, "from-json.css", cfg.Output)
	assert.Equal(t, filepath.Join(root, "tuc.config.json"), source)
}

func TestLoadExplicitPath(t *testing.T) {
	root := t.TempDir()
	write(t, root, "tuc.config.json", `{"output": "ignored.css"}`)
	write(t, root, "custom.yml", `output: custom.css`)

	cfg, source, err := config.Load(root, "custom.yml")
	require.NoError(t, err)
	assert.Equal(t, "custom.css", cfg.Output)
	assert.Equal(t, filepath.Join(root, "custom.yml"), source)

	_, _, err = config.Load(root, "missing.json")
	assert.Error(t, err)
}

func TestLoadPackageJSON(t *testing.T) {
	t.Run("with key", func(t *testing.T) {
		root := t.TempDir()
		write(t, root, "package.json", `{
  "name": "starter",
  "tuc": { "output": "src/app/utilities.css" }
}`)
		cfg, source, err := config.Load(root, "")
		require.NoError(t, err)
		assert.Equal(t, "src/app/utilities.css", cfg.Output)
		assert.Equal(t, filepath.Join(root, "package.json"), source)
	})

	t.Run("without key", func(t *testing.T) {
		root := t.TempDir()
		write(t, root, "package.json", `{"name": "starter"}`)
		_, source, err := config.Load(root, "")
		require.NoError(t, err)
		assert.Empty(t, source)
	})

	t.Run("key not an object", func(t *testing.T) {
		root := t.TempDir()
		write(t, root, "package.json", `{"tuc": "yes"}`)
		_, _, err := config.Load(root, "")
		assert.Error(t, err)
	})
}

func TestLoadInvalid(t *testing.T) {
	root := t.TempDir()
	write(t, root, "tuc.config.json", `{"content": `)
	_, _, err := config.Load(root, "")
	assert.Error(t, err)

	root = t.TempDir()
	write(t, root, "tuc.config.json", `{"workers": -1, "tokens": [""]}`)
	_, _, err = config.Load(root, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
	assert.Contains(t, err.Error(), "tokens")
}
