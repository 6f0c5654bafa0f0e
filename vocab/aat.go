package vocab

import (
	"regexp"
	"strings"
)

const (
	aatShortPrefix = "aat:"
	aatURLPrefix   = "http://vocab.getty.edu/aat/"
)

var (
	aatShortRegex = regexp.MustCompile(`(?i)^aat:(\d+)$`)
	aatURLRegex   = regexp.MustCompile(`(?i)^https?://vocab\.getty\.edu/aat/(\d+)/?$`)
)

// NormalizeAATID toggles an AAT identifier between its short and URL forms.
//
//	aat:300404670                        -> http://vocab.getty.edu/aat/300404670
//	http://vocab.getty.edu/aat/300404670 -> aat:300404670
//	https://vocab.getty.edu/aat/300404670 -> aat:300404670
//
// Matching is case-insensitive. Any other identifier is returned unchanged,
// so the result is always safe to compare against data.
func NormalizeAATID(id string) string {
	id = strings.TrimSpace(id)
	if m := aatShortRegex.FindStringSubmatch(id); m != nil {
		return aatURLPrefix + m[1]
	}
	if m := aatURLRegex.FindStringSubmatch(id); m != nil {
		return aatShortPrefix + m[1]
	}
	return id
}

// CanonicalAATID returns the http:// URL form of an AAT identifier given in
// any of its forms. Other identifiers are returned unchanged.
func CanonicalAATID(id string) string {
	id = strings.TrimSpace(id)
	if m := aatShortRegex.FindStringSubmatch(id); m != nil {
		return aatURLPrefix + m[1]
	}
	if m := aatURLRegex.FindStringSubmatch(id); m != nil {
		return aatURLPrefix + m[1]
	}
	return id
}

// ShortAATID returns the aat: form of an AAT identifier given in any of its
// forms. Other identifiers are returned unchanged.
func ShortAATID(id string) string {
	id = strings.TrimSpace(id)
	if m := aatShortRegex.FindStringSubmatch(id); m != nil {
		return aatShortPrefix + m[1]
	}
	if m := aatURLRegex.FindStringSubmatch(id); m != nil {
		return aatShortPrefix + m[1]
	}
	return id
}

// IsAATID reports whether id is an AAT identifier in any form.
func IsAATID(id string) bool {
	id = strings.TrimSpace(id)
	return aatShortRegex.MatchString(id) || aatURLRegex.MatchString(id)
}
