// Package generator runs the whole pipeline: scan content files, extract
// class candidates, resolve them into declarations and render the
// stylesheet.
package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sync"

	"bennypowers.dev/tuc/internal/collections"
	"bennypowers.dev/tuc/internal/config"
	"bennypowers.dev/tuc/internal/extract"
	"bennypowers.dev/tuc/internal/log"
	"bennypowers.dev/tuc/internal/rules"
	"bennypowers.dev/tuc/internal/scan"
	"bennypowers.dev/tuc/internal/stylesheet"
	"bennypowers.dev/tuc/internal/tokens"
	"bennypowers.dev/tuc/internal/variants"
)

// varRefRegexp finds custom property references inside declaration values
var varRefRegexp = regexp.MustCompile(`var\(--([A-Za-z0-9_-]+)\)`)

// Result describes one generation run
type Result struct {
	CSS string
	// Entries are the generated utilities in output order
	Entries []stylesheet.Entry
	// Files is the number of content files scanned
	Files int
	// Candidates counts distinct strings considered, safelist included
	Candidates int
	// Declined counts candidates no rule matched
	Declined int
	// Undefined lists referenced custom properties (without dashes) that no
	// token source defines. Only computed when token sources are configured.
	Undefined []string
	// Tokens holds the loaded definitions; empty when none are configured
	Tokens *tokens.Set
}

// Generator holds the configured resolver. It is safe for concurrent use.
type Generator struct {
	cfg      *config.Config
	resolver *rules.Resolver
}

// New builds a generator for cfg
func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:      cfg,
		resolver: rules.Default().WithFontFamilies(cfg.Theme.FontFamily),
	}
}

// Resolve turns one class, variants included, into a stylesheet entry.
// ok is false when a variant is unknown or no rule matches the utility.
func (g *Generator) Resolve(class string) (stylesheet.Entry, bool) {
	parsed, ok := variants.Parse(class)
	if !ok {
		return stylesheet.Entry{}, false
	}
	decl, ok := g.resolver.Resolve(parsed.Utility)
	if !ok {
		return stylesheet.Entry{}, false
	}
	return stylesheet.Entry{
		Class:       class,
		Pseudo:      parsed.PseudoSelector(),
		MinWidth:    parsed.MinWidth(),
		Declaration: decl,
	}, true
}

// Collect scans the configured content and returns the distinct candidates
// with the number of files read. Files are extracted concurrently; a file
// that cannot be read is logged and skipped.
func (g *Generator) Collect(ctx context.Context) (collections.Set[string], int, error) {
	files, err := scan.Files(ctx, g.cfg.Root, g.cfg.Content)
	if err != nil {
		return nil, 0, err
	}

	workers := g.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		all = collections.NewSet[string]()
		sem = make(chan struct{}, workers)
	)

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			content, err := os.ReadFile(path) //nolint:gosec // G304: files matched by content globs
			if err != nil {
				log.Warn("Skipping %s: %v", path, err)
				return
			}
			found := extract.Candidates(path, content)
			log.Debug("Extracted %d candidates from %s", len(found), path)

			mu.Lock()
			all.Merge(found)
			mu.Unlock()
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return all, len(files), nil
}

// Run executes the pipeline for cfg
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	g := New(cfg)

	candidates, files, err := g.Collect(ctx)
	if err != nil {
		return nil, err
	}
	candidates.Add(cfg.SafelistClasses()...)
	log.Info("Scanned %d files, %d candidates", files, len(candidates))

	res := &Result{Files: files, Candidates: len(candidates), Tokens: tokens.NewSet()}
	for _, class := range collections.Sorted(candidates) {
		entry, ok := g.Resolve(class)
		if !ok {
			res.Declined++
			continue
		}
		res.Entries = append(res.Entries, entry)
	}

	opts := stylesheet.Options{Minify: cfg.Minify}
	if paths := cfg.TokenPaths(); len(paths) > 0 {
		set, err := tokens.Load(paths)
		if err != nil {
			return nil, fmt.Errorf("failed to load tokens: %w", err)
		}
		res.Tokens = set
		log.Debug("Loaded %d token definitions from %d sources", set.Len(), len(paths))
		res.Undefined = undefinedTokens(res.Entries, set)
		for _, name := range res.Undefined {
			log.Warn("Undefined token --%s", name)
		}
		if cfg.EmitRoot {
			for _, d := range set.Filter(tokens.FromDTCG) {
				opts.Root = append(opts.Root, stylesheet.CustomProperty{Name: d.Name, Value: d.Value})
			}
		}
	}

	res.CSS = stylesheet.Render(res.Entries, opts)
	log.Info("Generated %d rules", len(res.Entries))
	return res, nil
}

// undefinedTokens returns, sorted, the var() references in entries that
// the set does not define
func undefinedTokens(entries []stylesheet.Entry, set *tokens.Set) []string {
	missing := collections.NewSet[string]()
	for _, e := range entries {
		for _, m := range varRefRegexp.FindAllStringSubmatch(e.Declaration.Value, -1) {
			if _, ok := set.Lookup(m[1]); !ok {
				missing.Add(m[1])
			}
		}
	}
	return collections.Sorted(missing)
}

// WriteOutput writes the stylesheet to cfg.Output, relative to Root, or to
// stdout when the output is "-" or empty
func WriteOutput(res *Result, cfg *config.Config, stdout io.Writer) error {
	if cfg.Output == "" || cfg.Output == "-" {
		_, err := io.WriteString(stdout, res.CSS)
		return err
	}

	path := cfg.Output
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Root, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(res.CSS), 0o644); err != nil { //nolint:gosec // G306: stylesheets are world-readable
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info("Wrote %s", path)
	return nil
}
