package document

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/lehigh-university-libraries/linkedart/extract"
	"github.com/lehigh-university-libraries/linkedart/value"
)

// Result holds the extractor output for one document.
type Result struct {
	Path   string           `json:"path" yaml:"path"`
	ID     string           `json:"id,omitempty" yaml:"id,omitempty"`
	Values map[string][]any `json:"values,omitempty" yaml:"values,omitempty"`
	Err    error            `json:"-" yaml:"-"`
}

// Failed reports whether the document could not be processed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Batch runs a fixed set of extractors over many documents.
type Batch struct {
	// Extractor supplies the vocabulary table; nil means the bundled one
	Extractor *extract.Extractor

	// Catalog resolves extractor names; nil means extract.DefaultCatalog
	Catalog *extract.Catalog

	// Names are the extractors to run on every document
	Names []string

	// Options apply to every extractor
	Options extract.Options

	// Workers bounds concurrent documents; values below 1 mean 1
	Workers int
}

func (b *Batch) catalog() *extract.Catalog {
	if b.Catalog == nil {
		return extract.DefaultCatalog
	}
	return b.Catalog
}

func (b *Batch) extractor() *extract.Extractor {
	if b.Extractor == nil {
		return extract.New(nil)
	}
	return b.Extractor
}

// Validate checks that every extractor name is known.
func (b *Batch) Validate() error {
	if len(b.Names) == 0 {
		return fmt.Errorf("no extractors selected")
	}
	for _, name := range b.Names {
		if _, ok := b.catalog().Get(name); !ok {
			return fmt.Errorf("unknown extractor: %s", name)
		}
	}
	return nil
}

// Evaluate runs the extractors over one decoded document.
func (b *Batch) Evaluate(path string, doc map[string]any) Result {
	e := b.extractor()
	res := Result{Path: path, ID: value.ID(doc), Values: make(map[string][]any, len(b.Names))}
	for _, name := range b.Names {
		values, err := b.catalog().Run(e, name, doc, b.Options)
		if err != nil {
			res.Err = err
			return res
		}
		res.Values[name] = values
	}
	return res
}

// Run loads and evaluates every path with at most Workers in flight. Results
// are in path order. A document that fails to load carries its error in its
// Result; Run itself fails only on an invalid batch or a cancelled context.
func (b *Batch) Run(ctx context.Context, paths []string) ([]Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(paths); j++ {
				results[j] = Result{Path: paths[j], Err: err}
			}
			break
		}
		g.Go(func() error {
			// Per-document failures stay in the Result.
			results[i] = b.process(gctx, path)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (b *Batch) process(ctx context.Context, path string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Path: path, Err: err}
	}
	doc, err := Load(path)
	if err != nil {
		slog.Warn("skipping document", "path", path, "error", err)
		return Result{Path: path, Err: err}
	}
	res := b.Evaluate(path, doc)
	slog.Debug("evaluated document", "path", path, "id", res.ID)
	return res
}
