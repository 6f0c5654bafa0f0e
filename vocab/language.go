package vocab

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// NoLanguage is the normalized language of a node that declares none.
const NoLanguage = "NO_LANGUAGE"

// A trailing path segment made of letters, e.g. .../language/en
var trailingCodeRegex = regexp.MustCompile(`/([a-z]+)$`)

// NormalizeLanguageID resolves a language tag to its vocabulary identifier.
//
// The tag may be an ISO code ("en"), a URL ending in one
// ("http://vocab.getty.edu/language/en") or an identifier already. lookup
// replaces the table's language map when non-nil. AAT identifiers, found or
// given, come back in their canonical http form, so the short code and both
// URL schemes compare equal. Other tags that resolve to nothing are returned
// unchanged; an empty tag is NoLanguage.
func (t *Table) NormalizeLanguageID(tag string, lookup map[string]string) string {
	if tag == "" {
		return NoLanguage
	}
	if lookup == nil {
		lookup = t.Languages
	}

	code := strings.ToLower(tag)
	if m := trailingCodeRegex.FindStringSubmatch(code); m != nil {
		code = m[1]
	}
	if id, ok := lookup[code]; ok {
		return CanonicalAATID(id)
	}
	return CanonicalAATID(tag)
}

// LookupAATFromISO returns the language identifier for an ISO code. The code
// may also be given as a URL ending in the code.
func (t *Table) LookupAATFromISO(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if m := trailingCodeRegex.FindStringSubmatch(code); m != nil {
		code = m[1]
	}
	id, ok := t.Languages[code]
	if !ok {
		return "", false
	}
	return CanonicalAATID(id), true
}

// LookupISOFromAAT returns the ISO code for a language identifier given in
// any AAT form (short code, http or https URL).
func (t *Table) LookupISOFromAAT(id string) (string, bool) {
	want := CanonicalAATID(id)
	if want == "" {
		return "", false
	}
	for _, code := range slices.Sorted(maps.Keys(t.Languages)) {
		if CanonicalAATID(t.Languages[code]) == want {
			return code, true
		}
	}
	return "", false
}
