// Package classify selects Linked.Art resources by the vocabulary terms they
// are classified with.
//
// A resource matches a Query when its classification field (classified_as by
// default) holds the requested identifiers, combined with AND or OR, and the
// resource is in the requested language. Identifiers are compared in any of
// their AAT forms, so "aat:300404670" finds a resource classified with
// "http://vocab.getty.edu/aat/300404670" and the reverse.
package classify

import (
	"strings"

	"github.com/lehigh-university-libraries/linkedart/lang"
	"github.com/lehigh-university-libraries/linkedart/value"
	"github.com/lehigh-university-libraries/linkedart/vocab"
)

// Classification fields.
const (
	ClassifiedAsField = "classified_as"
	ClassifiedByField = "classified_by"
	ReferredToByField = "referred_to_by"
)

// Operator combines the requested classifications.
type Operator string

const (
	// And requires every requested classification.
	And Operator = "AND"
	// Or requires at least one.
	Or Operator = "OR"
)

// ParseOperator returns the operator named by s, ignoring case. An empty
// string is And.
func ParseOperator(s string) (Operator, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(And):
		return And, true
	case string(Or):
		return Or, true
	}
	return Operator(s), false
}

// Query describes which resources to select.
type Query struct {
	// Classifications are the identifiers to look for
	Classifications []string `json:"classifications" yaml:"classifications"`

	// Field is the classification field, classified_as when empty
	Field string `json:"field,omitempty" yaml:"field,omitempty"`

	// NestedField is the field read on nested classifications by the
	// nested lookups; Field when empty
	NestedField string `json:"nested_field,omitempty" yaml:"nested_field,omitempty"`

	// Language restricts matches to resources in this language
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// LanguageOptions tunes the language check
	LanguageOptions *lang.Options `json:"language_options,omitempty" yaml:"language_options,omitempty"`

	// Operator is And when empty
	Operator Operator `json:"operator,omitempty" yaml:"operator,omitempty"`
}

func (q Query) field() string {
	if q.Field == "" {
		return ClassifiedAsField
	}
	return q.Field
}

// nested returns the query run against the classifications of a resource.
func (q Query) nested() Query {
	if q.NestedField != "" {
		q.Field = q.NestedField
	}
	q.NestedField = ""
	return q
}

// Matcher evaluates queries against a vocabulary table.
type Matcher struct {
	lang *lang.Matcher
}

// New returns a Matcher over t. A nil table means vocab.Default().
func New(t *vocab.Table) *Matcher {
	return &Matcher{lang: lang.NewMatcher(t)}
}

// Languages returns the language matcher used for the language filter.
func (m *Matcher) Languages() *lang.Matcher {
	return m.lang
}

// Match returns the resources that satisfy q, in input order with duplicates
// kept. resources may be a single resource or a list.
func (m *Matcher) Match(resources any, q Query) []any {
	results := []any{}
	candidates := value.Resources(resources)
	if len(candidates) == 0 || len(q.Classifications) == 0 {
		return results
	}

	op, ok := ParseOperator(string(q.Operator))
	if !ok {
		return results
	}
	field := q.field()

	for _, resource := range candidates {
		classes := value.Seq(resource, field)
		if len(classes) == 0 {
			continue
		}
		if !m.lang.Matches(resource, q.Language, q.LanguageOptions) {
			continue
		}

		ids := make(map[string]bool, 2*len(classes))
		for _, class := range classes {
			if id := value.ID(class); id != "" {
				ids[id] = true
				ids[vocab.CanonicalAATID(id)] = true
			}
		}

		if satisfies(ids, q.Classifications, op) {
			results = append(results, resource)
		}
	}
	return results
}

func satisfies(ids map[string]bool, requested []string, op Operator) bool {
	for _, id := range requested {
		found := hasID(ids, id)
		if op == Or && found {
			return true
		}
		if op == And && !found {
			return false
		}
	}
	return op == And
}

// hasID reports whether id is in ids in its given form, its toggled AAT form,
// or its canonical AAT form. ids also holds the canonical form of every
// classification, so an https URL on either side finds an http one.
func hasID(ids map[string]bool, id string) bool {
	return ids[id] || ids[vocab.NormalizeAATID(id)] || ids[vocab.CanonicalAATID(id)]
}

// ClassifiedAs returns the resources classified_as every one of ids.
func (m *Matcher) ClassifiedAs(resources any, ids ...string) []any {
	return m.Match(resources, Query{Classifications: ids})
}

// ClassifiedBy returns the resources classified_by every one of ids.
func (m *Matcher) ClassifiedBy(resources any, ids ...string) []any {
	return m.Match(resources, Query{Classifications: ids, Field: ClassifiedByField})
}

// ClassificationsByNestedClass returns the classifications of each resource
// that are themselves classified as q asks. The resource's classifications
// are read from q.Field and theirs from q.NestedField, the same field unless
// set. A rights assertion's clearance level, for example, is the
// classification of the Right that is classified as a clearance level.
func (m *Matcher) ClassificationsByNestedClass(resources any, q Query) []any {
	results := []any{}
	inner := q.nested()
	for _, resource := range value.Resources(resources) {
		classes := value.Seq(resource, q.field())
		if len(classes) == 0 {
			continue
		}
		results = append(results, m.Match(classes, inner)...)
	}
	return results
}

// ObjectsByNestedClass returns the resources that have at least one
// classification matching q, with the same fields as
// ClassificationsByNestedClass.
func (m *Matcher) ObjectsByNestedClass(resources any, q Query) []any {
	results := []any{}
	inner := q.nested()
	for _, resource := range value.Resources(resources) {
		classes := value.Seq(resource, q.field())
		if len(classes) == 0 {
			continue
		}
		if len(m.Match(classes, inner)) > 0 {
			results = append(results, resource)
		}
	}
	return results
}
