package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/linkedart/document"
	"github.com/lehigh-university-libraries/linkedart/value"
)

// readDocument decodes the record in path, or stdin when path is empty.
func readDocument(path string, stdin io.Reader) (map[string]any, error) {
	if path != "" {
		return document.Load(path)
	}
	doc, err := document.Decode(stdin)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return doc, nil
}

func (a *app) textOptions() []value.TextOption {
	opts := []value.TextOption{value.WithTrimSpace()}
	if a.cfg.StripHTML {
		opts = append(opts, value.WithStripHTML(), value.WithCollapseWhitespace())
	}
	return opts
}

// clean strips markup from the string values in values when configured.
// Other values are kept as they are.
func (a *app) clean(values []any) []any {
	if !a.cfg.StripHTML {
		return values
	}
	out := make([]any, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			out = append(out, v)
			continue
		}
		out = append(out, strings.Join(value.TextSlice([]any{s}, a.textOptions()...), " "))
	}
	return out
}

// render writes v in the configured output format.
func (a *app) render(w io.Writer, v any) error {
	switch strings.ToLower(a.cfg.Output) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "protojson":
		data, err := document.MarshalProtoJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "text":
		return a.renderText(w, v)
	default:
		return fmt.Errorf("unknown output format: %s", a.cfg.Output)
	}
}

// renderText writes one value per line. Grouped values are headed by their
// group name.
func (a *app) renderText(w io.Writer, v any) error {
	switch val := v.(type) {
	case map[string][]any:
		for _, name := range slices.Sorted(maps.Keys(val)) {
			if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
				return err
			}
			for _, line := range value.TextSlice(val[name], a.textOptions()...) {
				if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
					return err
				}
			}
		}
		return nil
	case []any:
		for _, line := range value.TextSlice(val, a.textOptions()...) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case []map[string]string:
		for _, row := range val {
			fields := make([]string, 0, len(row))
			for _, k := range slices.Sorted(maps.Keys(row)) {
				fields = append(fields, k+"="+row[k])
			}
			if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, line := range val {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, value.Text(v))
		return err
	}
}
