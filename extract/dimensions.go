package extract

import "github.com/lehigh-university-libraries/linkedart/vocab"

// Dimension extractors read the Dimension nodes in dimension and return
// their numeric values. A value of 0 is kept.

func (e *Extractor) dimensions(resource any, opts Options, defaults ...string) []any {
	return e.match.FieldValuesByClassifications(resource, DimensionField, e.query(opts, defaults...))
}

// Heights returns height dimension values.
func (e *Extractor) Heights(resource any, opts Options) []any {
	return e.dimensions(resource, opts, vocab.Height)
}

// Widths returns width dimension values.
func (e *Extractor) Widths(resource any, opts Options) []any {
	return e.dimensions(resource, opts, vocab.Width)
}

// Depths returns depth dimension values.
func (e *Extractor) Depths(resource any, opts Options) []any {
	return e.dimensions(resource, opts, vocab.Depth)
}

// SequencePositions returns the position of a resource within an ordered
// set, such as a page within a book or an image within a set.
func (e *Extractor) SequencePositions(resource any, opts Options) []any {
	return e.dimensions(resource, opts, vocab.SequencePosition)
}
