// Package value provides primitives for reading decoded Linked.Art JSON-LD.
//
// These helpers solve common problems:
//   - Optional arrays (a field may be missing, a scalar, or a list)
//   - Optional "part" wrappers around compound events
//   - Classification references given as strings or as objects
//   - Value/content extraction where 0 is a real value
//   - Rendering results as text, with markup stripping
//   - TimeSpan parsing into EDTF-style dates
package value

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// TEXT VALUES
// =============================================================================

// Text renders an extracted value as a string.
// Handles: string, json.Number, numeric types, bool, nodes (as references), nil
func Text(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case map[string]any:
		return RefFromMap(val).String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TextOption configures text rendering.
type TextOption func(*textConfig)

type textConfig struct {
	delimiter          string
	stripHTML          bool
	trimSpace          bool
	collapseWhitespace bool
}

// WithDelimiter splits delimited strings into several values.
func WithDelimiter(sep string) TextOption {
	return func(c *textConfig) {
		c.delimiter = sep
	}
}

// WithStripHTML removes markup from statement content. Museum data often
// ships descriptions as HTML fragments.
func WithStripHTML() TextOption {
	return func(c *textConfig) {
		c.stripHTML = true
	}
}

// WithTrimSpace trims leading/trailing whitespace.
func WithTrimSpace() TextOption {
	return func(c *textConfig) {
		c.trimSpace = true
	}
}

// WithCollapseWhitespace normalizes whitespace to single spaces.
func WithCollapseWhitespace() TextOption {
	return func(c *textConfig) {
		c.collapseWhitespace = true
	}
}

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	blockEndRegex   = regexp.MustCompile(`(?i)</(?:p|div|li|h[1-6]|blockquote)>|<br\s*/?>`)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

func (cfg *textConfig) apply(s string) string {
	if cfg.stripHTML {
		s = blockEndRegex.ReplaceAllString(s, "\n")
		s = htmlTagRegex.ReplaceAllString(s, "")
		s = html.UnescapeString(s)
	}
	if cfg.collapseWhitespace {
		s = multiSpaceRegex.ReplaceAllString(s, " ")
	}
	if cfg.trimSpace {
		s = strings.TrimSpace(s)
	}
	return s
}

// TextSlice renders every extracted value as a string, dropping values that
// render empty. Numbers keep their textual form, so 0 renders as "0".
func TextSlice(values []any, opts ...TextOption) []string {
	cfg := &textConfig{trimSpace: true}
	for _, opt := range opts {
		opt(cfg)
	}

	result := make([]string, 0, len(values))
	for _, v := range values {
		s := Text(v)
		if cfg.delimiter != "" && strings.Contains(s, cfg.delimiter) {
			for _, p := range strings.Split(s, cfg.delimiter) {
				if p = cfg.apply(p); p != "" {
					result = append(result, p)
				}
			}
			continue
		}
		if s = cfg.apply(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}
