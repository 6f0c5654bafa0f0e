package extract

import "github.com/lehigh-university-libraries/linkedart/vocab"

// Statement extractors read the linguistic objects in referred_to_by.

func (e *Extractor) statements(resource any, opts Options, defaults ...string) []any {
	return e.match.FieldValuesByClassifications(resource, ReferredToByField, e.query(opts, defaults...))
}

// Descriptions returns description statements.
func (e *Extractor) Descriptions(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.Description)
}

// BriefTexts returns short label texts.
func (e *Extractor) BriefTexts(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.BriefText)
}

// DimensionsDescriptions returns dimension statements.
func (e *Extractor) DimensionsDescriptions(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.DimensionsDescription)
}

// MaterialStatements returns materials statements.
func (e *Extractor) MaterialStatements(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.MaterialsDescription)
}

// Cultures returns culture statements.
func (e *Extractor) Cultures(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.Culture)
}

// RightsStatements returns rights statements under either the current or
// the legacy rights term.
func (e *Extractor) RightsStatements(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.RightsStatement, vocab.RightsStatementLegacy)
}

// CopyrightStatements returns copyright and licensing statements.
func (e *Extractor) CopyrightStatements(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.CopyrightStatement)
}

// AcknowledgementStatements returns credit lines.
func (e *Extractor) AcknowledgementStatements(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.Acknowledgement)
}

// ProvenanceStatements returns provenance statements.
func (e *Extractor) ProvenanceStatements(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.ProvenanceStatement)
}

// Inscriptions returns inscription and marking statements.
func (e *Extractor) Inscriptions(resource any, opts Options) []any {
	return e.statements(resource, opts, vocab.Inscription)
}
