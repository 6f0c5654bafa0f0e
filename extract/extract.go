// Package extract provides named field extractors for Linked.Art records.
//
// Each extractor pairs a source field with default vocabulary terms and runs
// a classification query over it. Callers may override the terms, the
// language and the language options on any call; the overrides are always
// honored.
package extract

import (
	"github.com/lehigh-university-libraries/linkedart/classify"
	"github.com/lehigh-university-libraries/linkedart/lang"
	"github.com/lehigh-university-libraries/linkedart/value"
	"github.com/lehigh-university-libraries/linkedart/vocab"
)

// Source fields read by the extractors.
const (
	IdentifiedByField   = "identified_by"
	ReferredToByField   = "referred_to_by"
	RepresentationField = "representation"
	DigitallyShownBy    = "digitally_shown_by"
	AccessPointField    = "access_point"
	SubjectToField      = "subject_to"
	ProducedByField     = "produced_by"
	CarriedOutByField   = "carried_out_by"
	TimespanField       = "timespan"
	DimensionField      = "dimension"
)

// Options overrides an extractor's defaults. The zero value uses them all.
type Options struct {
	// Classifications replace the extractor's default terms
	Classifications []string `json:"classifications,omitempty" yaml:"classifications,omitempty"`

	// Operator combines Classifications; And when empty
	Operator classify.Operator `json:"operator,omitempty" yaml:"operator,omitempty"`

	// Language restricts values to one language
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// LanguageOptions tunes the language check
	LanguageOptions *lang.Options `json:"language_options,omitempty" yaml:"language_options,omitempty"`

	// Field replaces the event field read by CarriedOutBy and
	// ProductionTimespans (e.g. "encountered_by")
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
}

// Extractor runs extractors against one vocabulary table.
type Extractor struct {
	table *vocab.Table
	match *classify.Matcher
}

// New returns an Extractor over t. A nil table means vocab.Default().
func New(t *vocab.Table) *Extractor {
	if t == nil {
		t = vocab.Default()
	}
	return &Extractor{table: t, match: classify.New(t)}
}

// Table returns the vocabulary table the extractor reads its defaults from.
func (e *Extractor) Table() *vocab.Table {
	return e.table
}

// query builds the classification query for opts. Without caller
// classifications the default terms are used, OR-combined when there are
// several, since they are alternative names for one concept.
func (e *Extractor) query(opts Options, defaults ...string) classify.Query {
	q := classify.Query{
		Classifications: opts.Classifications,
		Operator:        opts.Operator,
		Language:        opts.Language,
		LanguageOptions: opts.LanguageOptions,
	}
	if len(q.Classifications) == 0 {
		q.Classifications = e.table.TermIDs(defaults...)
		if len(q.Classifications) > 1 && q.Operator == "" {
			q.Operator = classify.Or
		}
	}
	return q
}

func nameEntries(resource any) []any {
	var names []any
	for _, entry := range value.Seq(resource, IdentifiedByField) {
		if t, _ := value.Field(entry, "type"); t == "Name" {
			names = append(names, entry)
		}
	}
	return names
}

// PrimaryNames returns the preferred names of a resource. Only Name entries
// of identified_by are considered. When none match, the result is a single
// "Unknown (<id>)" label, so it is never empty.
func (e *Extractor) PrimaryNames(resource any, opts Options) []string {
	values := e.match.ValuesByClassification(nameEntries(resource), e.query(opts, vocab.PreferredTerm))
	var out []string
	for _, v := range values {
		out = append(out, value.Text(v))
	}
	if len(out) == 0 {
		return []string{unknownLabel(resource)}
	}
	return out
}

// PrimaryName returns the first of PrimaryNames.
func (e *Extractor) PrimaryName(resource any, opts Options) string {
	return e.PrimaryNames(resource, opts)[0]
}

func unknownLabel(resource any) string {
	if id := value.ID(resource); id != "" {
		return "Unknown (" + id + ")"
	}
	return "Unknown"
}

// AlternateTitles returns the Name entries of identified_by classified as
// alternate titles. Unlike PrimaryNames there is no fallback label.
func (e *Extractor) AlternateTitles(resource any, opts Options) []any {
	return e.match.ValuesByClassification(nameEntries(resource), e.query(opts, vocab.AlternateTitle))
}

// AccessionNumbers returns the identifiers classified as accession numbers.
func (e *Extractor) AccessionNumbers(resource any, opts Options) []any {
	return e.match.FieldValuesByClassifications(resource, IdentifiedByField, e.query(opts, vocab.AccessionNumbers))
}
