// Package lang decides whether a Linked.Art node is in a requested language.
//
// Language declarations are read from the node's "language" field, which may
// be absent, a string, or a list of strings and Language resources. Every
// declaration is normalized through a vocab.Table before comparison.
package lang

import (
	"slices"

	"github.com/lehigh-university-libraries/linkedart/value"
	"github.com/lehigh-university-libraries/linkedart/vocab"
)

// Options tunes a language check. The zero value, and a nil *Options, use the
// table's language map, no fallback, and include nodes without a language.
type Options struct {
	// LookupMap replaces the table's ISO code map when non-nil
	LookupMap map[string]string `json:"lookup_map,omitempty" yaml:"lookup_map,omitempty"`

	// FallbackLanguage is accepted when the requested language is missing
	FallbackLanguage string `json:"fallback_language,omitempty" yaml:"fallback_language,omitempty"`

	// IncludeItemsWithNoLanguage controls whether nodes that declare no
	// language match. Nil means true.
	IncludeItemsWithNoLanguage *bool `json:"include_items_with_no_language,omitempty" yaml:"include_items_with_no_language,omitempty"`
}

// Bool returns a pointer to b, for IncludeItemsWithNoLanguage.
func Bool(b bool) *bool {
	return &b
}

func (o *Options) lookup() map[string]string {
	if o == nil {
		return nil
	}
	return o.LookupMap
}

func (o *Options) fallback() string {
	if o == nil {
		return ""
	}
	return o.FallbackLanguage
}

func (o *Options) includeNoLanguage() bool {
	if o == nil || o.IncludeItemsWithNoLanguage == nil {
		return true
	}
	return *o.IncludeItemsWithNoLanguage
}

// Matcher checks node languages against a vocabulary table.
type Matcher struct {
	table *vocab.Table
}

// NewMatcher returns a Matcher over t. A nil table means vocab.Default().
func NewMatcher(t *vocab.Table) *Matcher {
	if t == nil {
		t = vocab.Default()
	}
	return &Matcher{table: t}
}

// Table returns the vocabulary table the matcher normalizes with.
func (m *Matcher) Table() *vocab.Table {
	return m.table
}

// Normalize resolves a language tag to its identifier.
func (m *Matcher) Normalize(tag string, opts *Options) string {
	return m.table.NormalizeLanguageID(tag, opts.lookup())
}

// LanguageIDs returns the normalized languages a node declares, without
// duplicates and in first-seen order. A node with no language field declares
// NO_LANGUAGE.
func (m *Matcher) LanguageIDs(resource any, opts *Options) []string {
	if _, ok := value.Field(resource, "language"); !ok {
		return []string{vocab.NoLanguage}
	}

	ids := []string{}
	for _, entry := range value.Seq(resource, "language") {
		var tag string
		switch v := entry.(type) {
		case nil:
			tag = vocab.NoLanguage
		case string:
			tag = v
		case map[string]any:
			tag = value.ID(v)
			if tag == "" {
				continue
			}
		default:
			continue
		}
		id := m.Normalize(tag, opts)
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Matches reports whether resource is in language.
//
// An empty language matches everything. Otherwise the node matches when one
// of its languages is the requested language, then when one is the fallback
// language, then when it declares no language at all, unless
// IncludeItemsWithNoLanguage is false.
func (m *Matcher) Matches(resource any, language string, opts *Options) bool {
	if language == "" {
		return true
	}
	ids := m.LanguageIDs(resource, opts)

	if slices.Contains(ids, m.Normalize(language, opts)) {
		return true
	}
	if fb := opts.fallback(); fb != "" && slices.Contains(ids, m.Normalize(fb, opts)) {
		return true
	}
	if len(ids) == 0 || slices.Contains(ids, vocab.NoLanguage) {
		return opts.includeNoLanguage()
	}
	return false
}

func std() *Matcher {
	return NewMatcher(vocab.Default())
}

// Matches reports whether resource is in language using the bundled table.
func Matches(resource any, language string, opts *Options) bool {
	return std().Matches(resource, language, opts)
}

// LanguageIDs returns the normalized languages of resource using the bundled
// table.
func LanguageIDs(resource any, opts *Options) []string {
	return std().LanguageIDs(resource, opts)
}

// Normalize resolves a language tag using the bundled table.
func Normalize(tag string, opts *Options) string {
	return std().Normalize(tag, opts)
}
