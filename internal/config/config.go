// Package config loads tuc settings from the project root.
//
// Discovery order: tuc.config.json, tuc.config.jsonc, tuc.config.yaml,
// tuc.config.yml, then the "tuc" key of package.json. JSON files may carry
// comments. Keys present in a file replace the defaults and keys absent
// keep them, except theme.fontFamily, whose entries are merged into the
// default families.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/tuc/internal/safelist"
	"bennypowers.dev/tuc/internal/scan"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Theme holds design-system values exposed as static utilities
type Theme struct {
	// FontFamily maps "sans" to the value of font-sans, and so on
	FontFamily map[string]string `json:"fontFamily" yaml:"fontFamily"`
}

// Config is the full generator configuration
type Config struct {
	// Root is the project directory; content globs and token paths are
	// relative to it
	Root string `json:"-" yaml:"-"`

	// Content lists doublestar globs of files to scan for class names
	Content []string `json:"content" yaml:"content"`

	// Safelist classes are generated even when no content mentions them
	Safelist []string `json:"safelist" yaml:"safelist"`

	// Scales expand into additional safelisted classes
	Scales safelist.Scales `json:"scales" yaml:"scales"`

	Theme Theme `json:"theme" yaml:"theme"`

	// Tokens lists DTCG token files (.json, .yaml, .yml) and CSS sheets
	// (.css) defining the custom properties the utilities reference
	Tokens []string `json:"tokens" yaml:"tokens"`

	// EmitRoot writes the DTCG token values into a :root block
	EmitRoot bool `json:"emitRoot" yaml:"emitRoot"`

	// Output is the stylesheet path; "-" or empty means stdout
	Output string `json:"output" yaml:"output"`

	Minify bool `json:"minify" yaml:"minify"`

	// Workers bounds concurrent file extraction; 0 means GOMAXPROCS
	Workers int `json:"workers" yaml:"workers"`
}

// FileNames are the config files looked for in the project root, in order
var FileNames = []string{
	"tuc.config.json",
	"tuc.config.jsonc",
	"tuc.config.yaml",
	"tuc.config.yml",
}

// PackageJSONKey is the package.json field holding embedded configuration
const PackageJSONKey = "tuc"

// Default returns the configuration of a stock starter project
func Default() *Config {
	return &Config{
		Content:  append([]string(nil), scan.DefaultContent...),
		Safelist: append([]string(nil), safelist.DefaultLiterals...),
		Scales:   safelist.DefaultScales(),
		Theme: Theme{
			FontFamily: map[string]string{
				"sans": "var(--sys-font-sans)",
				"code": "var(--sys-font-code)",
				"mono": "var(--sys-font-mono)",
			},
		},
		Output: "-",
	}
}

// Load reads configuration for root. When path is non-empty that file is
// used; otherwise the discovery order applies. source names the file the
// values came from, or is empty when only defaults apply.
func Load(root, path string) (cfg *Config, source string, err error) {
	cfg = Default()
	cfg.Root = root

	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if err := loadFile(cfg, path); err != nil {
			return nil, "", err
		}
		return cfg, path, cfg.Validate()
	}

	for _, name := range FileNames {
		candidate := filepath.Join(root, name)
		if _, statErr := os.Stat(candidate); errors.Is(statErr, os.ErrNotExist) {
			continue
		}
		if err := loadFile(cfg, candidate); err != nil {
			return nil, "", err
		}
		return cfg, candidate, cfg.Validate()
	}

	found, err := loadPackageJSON(cfg, root)
	if err != nil {
		return nil, "", err
	}
	if found {
		source = filepath.Join(root, "package.json")
	}
	return cfg, source, cfg.Validate()
}

// loadFile overlays the file's values onto cfg, choosing the decoder from
// the extension
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: project config chosen by the user
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	return nil
}

// loadPackageJSON overlays the "tuc" object of package.json. A missing
// package.json or a missing key is not an error.
func loadPackageJSON(cfg *Config, root string) (bool, error) {
	data, err := os.ReadFile(filepath.Join(root, "package.json")) //nolint:gosec // G304: workspace package.json
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read package.json: %w", err)
	}

	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		return false, fmt.Errorf("failed to parse package.json: %w", err)
	}

	raw, ok := pkg[PackageJSONKey]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return false, fmt.Errorf("%s in package.json must be an object: %w", PackageJSONKey, err)
	}
	return true, nil
}

// Validate checks values the decoders cannot
func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	for _, p := range c.Scales.Prefixes {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("scales.prefixes must not contain empty entries"))
			break
		}
	}
	for name := range c.Theme.FontFamily {
		if name == "" {
			errs = append(errs, fmt.Errorf("theme.fontFamily must not contain an empty name"))
			break
		}
	}
	for _, t := range c.Tokens {
		if t == "" {
			errs = append(errs, fmt.Errorf("tokens must not contain empty paths"))
			break
		}
	}
	return errors.Join(errs...)
}

// TokenPaths returns the token source paths resolved against Root
func (c *Config) TokenPaths() []string {
	paths := make([]string, 0, len(c.Tokens))
	for _, t := range c.Tokens {
		if !filepath.IsAbs(t) {
			t = filepath.Join(c.Root, t)
		}
		paths = append(paths, t)
	}
	return paths
}

// SafelistClasses returns the literal safelist followed by the scale classes
func (c *Config) SafelistClasses() []string {
	return safelist.Expand(c.Safelist, c.Scales)
}
