package extract

import (
	"fmt"
	"slices"
	"strings"
)

// Func runs one extractor and returns its results as a list.
type Func func(e *Extractor, resource any, opts Options) []any

// Entry is a named extractor.
type Entry struct {
	Name        string
	Description string
	Run         Func
}

// Catalog holds extractors by name.
type Catalog struct {
	entries map[string]Entry
}

// DefaultCatalog holds every extractor in this package.
var DefaultCatalog = NewCatalog()

// NewCatalog creates a catalog with the built-in extractors registered.
func NewCatalog() *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}
	for _, entry := range builtins {
		c.Register(entry)
	}
	return c
}

// Register adds an extractor, replacing any with the same name.
func (c *Catalog) Register(entry Entry) {
	c.entries[strings.ToLower(entry.Name)] = entry
}

// Get retrieves an extractor by name.
func (c *Catalog) Get(name string) (Entry, bool) {
	entry, ok := c.entries[strings.ToLower(name)]
	return entry, ok
}

// List returns all extractor names, sorted.
func (c *Catalog) List() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run runs the named extractor.
func (c *Catalog) Run(e *Extractor, name string, resource any, opts Options) ([]any, error) {
	entry, ok := c.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown extractor: %s", name)
	}
	return entry.Run(e, resource, opts), nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

var builtins = []Entry{
	{"name", "first preferred name", func(e *Extractor, r any, o Options) []any {
		return []any{e.PrimaryName(r, o)}
	}},
	{"names", "all preferred names", func(e *Extractor, r any, o Options) []any {
		return toAny(e.PrimaryNames(r, o))
	}},
	{"alternate-titles", "alternate titles", (*Extractor).AlternateTitles},
	{"accession", "accession numbers", (*Extractor).AccessionNumbers},
	{"brief-text", "brief label texts", (*Extractor).BriefTexts},
	{"description", "description statements", (*Extractor).Descriptions},
	{"dimensions", "dimension statements", (*Extractor).DimensionsDescriptions},
	{"materials", "materials statements", (*Extractor).MaterialStatements},
	{"height", "height values", (*Extractor).Heights},
	{"width", "width values", (*Extractor).Widths},
	{"depth", "depth values", (*Extractor).Depths},
	{"sequence", "sequence positions", (*Extractor).SequencePositions},
	{"culture", "culture statements", (*Extractor).Cultures},
	{"rights", "rights statements", (*Extractor).RightsStatements},
	{"copyright", "copyright statements", (*Extractor).CopyrightStatements},
	{"acknowledgement", "credit lines", (*Extractor).AcknowledgementStatements},
	{"provenance", "provenance statements", (*Extractor).ProvenanceStatements},
	{"inscription", "inscription statements", (*Extractor).Inscriptions},
	{"images", "digital image URLs", func(e *Extractor, r any, o Options) []any {
		return toAny(e.DigitalImages(r, o))
	}},
	{"rights-assertions", "copyright Right resources", (*Extractor).RightsAssertions},
	{"clearance", "clearance level classifications", (*Extractor).ClearanceLevels},
	{"work-types", "type of work classifications", (*Extractor).WorkTypes},
	{"classifications", "object classifications", (*Extractor).Classifications},
	{"carried-out-by", "production actors", (*Extractor).CarriedOutBy},
	{"timespans", "production timespans", (*Extractor).ProductionTimespans},
	{"dates", "production dates as EDTF", func(e *Extractor, r any, o Options) []any {
		return toAny(e.ProductionDates(r, o))
	}},
}
