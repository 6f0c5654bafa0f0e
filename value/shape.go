package value

// Linked.Art bookkeeping keys. A "part" wrapper that carries anything beyond
// these also holds data of its own.
var bookkeepingKeys = map[string]bool{
	"id":     true,
	"type":   true,
	"_label": true,
	"label":  true,
	"part":   true,
}

// Resource returns v as a JSON-LD node, or nil if v is not an object.
func Resource(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// Field returns resource[key]. A nil value counts as missing.
func Field(resource any, key string) (any, bool) {
	m := Resource(resource)
	if m == nil {
		return nil, false
	}
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Seq normalizes resource[key] to a slice.
//
// A missing resource, missing key or nil value yields an empty slice. A
// scalar or object yields a one-element slice. Slices pass through. The
// number 0 and the empty string are values, not absence.
func Seq(resource any, key string) []any {
	v, ok := Field(resource, key)
	if !ok {
		return []any{}
	}
	return Resources(v)
}

// Resources coerces a resource-or-set argument into a slice.
// Handles: nil, []any, []map[string]any, []string, anything else (wrapped)
func Resources(v any) []any {
	switch val := v.(type) {
	case nil:
		return []any{}
	case []any:
		if val == nil {
			return []any{}
		}
		return val
	case []map[string]any:
		out := make([]any, len(val))
		for i, m := range val {
			out[i] = m
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out
	default:
		return []any{val}
	}
}

// Parts returns the constituent parts of resource[key].
//
// An entry without a "part" is its own single part. An entry with a "part"
// contributes its normalized parts, followed by the wrapper itself when the
// wrapper carries keys other than the bookkeeping ones.
func Parts(resource any, key string) []any {
	entries := Seq(resource, key)
	parts := make([]any, 0, len(entries))
	for _, entry := range entries {
		nested := Seq(entry, "part")
		if len(nested) == 0 {
			parts = append(parts, entry)
			continue
		}
		parts = append(parts, nested...)
		if hasOwnData(Resource(entry)) {
			parts = append(parts, entry)
		}
	}
	return parts
}

func hasOwnData(m map[string]any) bool {
	for k := range m {
		if !bookkeepingKeys[k] {
			return true
		}
	}
	return false
}

// ID returns the identifier of a classification reference: the string
// itself, or the "id" field of an object. Anything else yields "".
func ID(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if id, ok := val["id"].(string); ok {
			return id
		}
	}
	return ""
}

// IDs returns the non-empty identifiers of the given references, in order.
func IDs(refs []any) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		if id := ID(r); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ValueOrContent returns the "value" field if present, otherwise a non-empty
// "content" field. A numeric value of 0 is a result.
func ValueOrContent(resource any) (any, bool) {
	if v, ok := Field(resource, "value"); ok {
		return v, true
	}
	if c, ok := Field(resource, "content"); ok {
		if s, isString := c.(string); isString && s == "" {
			return nil, false
		}
		return c, true
	}
	return nil, false
}

// RemoveDuplicatesByID drops every resource whose id was already seen,
// keeping the first occurrence. Resources without an id are deduplicated
// against each other under the empty id.
func RemoveDuplicatesByID(resources []any) []any {
	seen := make(map[string]bool, len(resources))
	out := make([]any, 0, len(resources))
	for _, r := range resources {
		id := ID(r)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, r)
	}
	return out
}
