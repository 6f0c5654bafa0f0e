// Package vocab holds the controlled vocabulary used to query Linked.Art
// documents: a table of semantic term names to identifiers, a table of ISO
// language codes to identifiers, and normalization between the textual forms
// those identifiers come in.
//
// A Table is read-only once built and safe for concurrent use. Callers
// inject one explicitly (see lang.NewMatcher, classify.New, extract.New) or
// rely on Default, the bundled table.
package vocab

import (
	"embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Term names present in the bundled table.
const (
	PreferredTerm         = "PREFERRED_TERM"
	AlternateTitle        = "ALTERNATE_TITLE"
	AccessionNumbers      = "ACCESSION_NUMBERS"
	Description           = "DESCRIPTION"
	BriefText             = "BRIEF_TEXT"
	DimensionsDescription = "DIMENSIONS_DESCRIPTION"
	MaterialsDescription  = "MATERIALS_DESCRIPTION"
	Culture               = "CULTURE"
	ProvenanceStatement   = "PROVENANCE_STATEMENT"
	Inscription           = "INSCRIPTION"
	Acknowledgement       = "ACKNOWLEDGEMENT"
	RightsStatement       = "RIGHTS_STATEMENT"
	RightsStatementLegacy = "RIGHTS_STATEMENT_LEGACY"
	CopyrightStatement    = "COPYRIGHT_STATEMENT"
	Copyright             = "COPYRIGHT"
	ClearanceLevel        = "CLEARANCE_LEVEL"
	TypeOfWork            = "TYPE_OF_WORK"
	Classification        = "CLASSIFICATION"
	DigitalImage          = "DIGITAL_IMAGE"
	SequencePosition      = "SEQUENCE_POSITION"
	Height                = "HEIGHT"
	Width                 = "WIDTH"
	Depth                 = "DEPTH"
)

//go:embed data/vocab.yaml
var embedded embed.FS

// Table maps semantic term names and ISO language codes to vocabulary
// identifiers. Do not modify a Table after handing it to a matcher.
type Table struct {
	// Name identifies the table (e.g., "default", "yale-lux")
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Terms maps names like PREFERRED_TERM to identifiers
	Terms map[string]string `yaml:"terms" json:"terms"`

	// Languages maps lower-case ISO 639 codes to language identifiers
	Languages map[string]string `yaml:"languages" json:"languages"`
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the bundled table. It is parsed once.
func Default() *Table {
	defaultOnce.Do(func() {
		data, err := embedded.ReadFile("data/vocab.yaml")
		if err != nil {
			panic(fmt.Sprintf("vocab: reading embedded table: %v", err))
		}
		t, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("vocab: parsing embedded table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Parse reads a table from YAML content and validates it.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing vocabulary YAML: %w", err)
	}
	t.Languages = lowerKeys(t.Languages)
	if t.Terms == nil {
		t.Terms = map[string]string{}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads a table from a file path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate checks that every term has an identifier and that every language
// key is an ISO 639 code.
func (t *Table) Validate() error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(t.Terms)) {
		if strings.TrimSpace(t.Terms[name]) == "" {
			errs = append(errs, fmt.Errorf("term %s has no identifier", name))
		}
	}
	for _, code := range slices.Sorted(maps.Keys(t.Languages)) {
		if _, err := language.ParseBase(code); err != nil {
			errs = append(errs, fmt.Errorf("language key %q is not an ISO 639 code: %w", code, err))
		}
		if strings.TrimSpace(t.Languages[code]) == "" {
			errs = append(errs, fmt.Errorf("language %s has no identifier", code))
		}
	}
	return errors.Join(errs...)
}

// Merge layers a custom table over a base table. Custom entries override
// base entries; neither input is modified.
func Merge(base, custom *Table) *Table {
	merged := &Table{
		Name:        custom.Name,
		Description: custom.Description,
		Terms:       make(map[string]string, len(base.Terms)+len(custom.Terms)),
		Languages:   make(map[string]string, len(base.Languages)+len(custom.Languages)),
	}
	if merged.Name == "" {
		merged.Name = base.Name
	}
	if merged.Description == "" {
		merged.Description = base.Description
	}
	maps.Copy(merged.Terms, base.Terms)
	maps.Copy(merged.Terms, custom.Terms)
	maps.Copy(merged.Languages, base.Languages)
	maps.Copy(merged.Languages, lowerKeys(custom.Languages))
	return merged
}

// Term returns the identifier for a term name, or "" if the table has none.
func (t *Table) Term(name string) string {
	return t.Terms[name]
}

// TermIDs returns the identifiers for the given term names, skipping names
// the table does not define.
func (t *Table) TermIDs(names ...string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		if id := t.Terms[name]; id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// TermName returns the term name whose identifier matches id in any of its
// textual forms.
func (t *Table) TermName(id string) (string, bool) {
	want := CanonicalAATID(id)
	for _, name := range slices.Sorted(maps.Keys(t.Terms)) {
		if CanonicalAATID(t.Terms[name]) == want {
			return name, true
		}
	}
	return "", false
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
