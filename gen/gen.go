// Package gen turns union definition files into Go source.
//
// A definition file is YAML (see File) naming a target package and one or
// more unions, each over at least two distinct payload types. Generation
// enforces the same definition-time rules as the runtime API, then emits
// a concrete union type per definition: tag constants in declaration
// order, one conversion per payload type, and the introspection methods
// (Variant, Variants, Is*, As*) with compile-time-safe downcasts.
//
// The sumtypegen command in cmd/sumtypegen is a thin CLI over this
// package.
package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Generator renders union definition files into Go source files.
type Generator struct {
	logger *slog.Logger
	limit  int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger configures structured logging. If nil is passed, slog's
// default logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithConcurrency caps how many definition files Run processes at once.
// Values below 1 reset to the default of 4.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		if n < 1 {
			n = 4
		}
		g.limit = n
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger: slog.Default(),
		limit:  4,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateFile loads, validates and renders a single definition file,
// returning gofmt-formatted Go source.
func (g *Generator) GenerateFile(path string) ([]byte, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	src, err := Render(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	g.logger.Debug("rendered definition",
		"path", path,
		"package", f.Package,
		"unions", len(f.Unions),
	)
	return src, nil
}

// Run generates Go source for every definition file, writing a
// <base>_sumtype.go file per input into outDir. Files are independent and
// processed concurrently; the first failure cancels the rest.
func (g *Generator) Run(ctx context.Context, paths []string, outDir string) error {
	if len(paths) == 0 {
		return fmt.Errorf("gen: no definition files")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.limit)

	for _, path := range paths {
		path := path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := g.GenerateFile(path)
			if err != nil {
				return fmt.Errorf("gen: %s: %w", path, err)
			}

			out := filepath.Join(outDir, OutputName(path))
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return err
			}

			g.logger.Info("generated union source", "definition", path, "output", out)
			return nil
		})
	}
	return eg.Wait()
}

// OutputName returns the generated file name for a definition path:
// "shapes.yaml" becomes "shapes_sumtype.go".
func OutputName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base + "_sumtype.go"
}
