package tokens

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/tuc/internal/log"
)

// LoadFile reads definitions from a .css sheet or a .json/.yaml/.yml DTCG
// token file
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: token sources listed in project config
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var defs []Definition
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".css":
		p := AcquireCSSParser()
		defer ReleaseCSSParser(p)
		defs, err = p.CustomProperties(data)
	case ".json":
		defs, err = ParseDTCG(data, false, "")
	case ".yaml", ".yml":
		defs, err = ParseDTCG(data, true, "")
	default:
		return nil, fmt.Errorf("unsupported token source %s: extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i := range defs {
		defs[i].Source = path
	}
	return defs, nil
}

// Load reads every path into one Set, later files overriding earlier ones.
// All files are attempted; failures are joined into the returned error.
func Load(paths []string) (*Set, error) {
	set := NewSet()
	var errs []error
	for _, path := range paths {
		defs, err := LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, d := range defs {
			set.Add(d)
		}
		log.Debug("Loaded %d definitions from %s", len(defs), path)
	}
	return set, errors.Join(errs...)
}
