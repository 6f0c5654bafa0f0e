// Package document loads Linked.Art JSON records for the query packages and
// runs extractors over many of them at once.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotObject is returned for JSON whose root is not an object.
var ErrNotObject = errors.New("document root is not a JSON object")

// Decode reads one JSON document. Numbers decode as float64. Anything but
// whitespace after the document is an error.
func Decode(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding JSON: unexpected content after document")
	}
	doc, ok := root.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return doc, nil
}

// Load reads a document from a file path.
func Load(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Glob expands patterns into file paths. Patterns support ** for any number
// of directories. A pattern without glob syntax is kept as given, so a
// missing file surfaces later as a load error. Paths are returned once, in
// pattern order and sorted within each pattern.
func Glob(patterns ...string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %s", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", pattern, err)
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return paths, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
