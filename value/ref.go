package value

// Ref is a compact view of a Linked.Art node: enough to display an actor,
// a type or a digital object without carrying the whole graph.
type Ref struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// IsZero returns true if the reference has neither id nor label.
func (r Ref) IsZero() bool {
	return r.ID == "" && r.Label == ""
}

// String returns the label if available, otherwise the ID.
func (r Ref) String() string {
	if r.Label != "" {
		return r.Label
	}
	return r.ID
}

// RefFromMap builds a Ref from a node. Linked.Art uses "_label"; some
// publishers emit "label" instead.
func RefFromMap(m map[string]any) Ref {
	ref := Ref{ID: ID(m)}
	if t, ok := m["type"].(string); ok {
		ref.Type = t
	}
	if l, ok := m["_label"].(string); ok && l != "" {
		ref.Label = l
	} else if l, ok := m["label"].(string); ok {
		ref.Label = l
	}
	return ref
}

// RefSlice extracts references from extracted values. Bare strings become
// id-only references; other scalars are skipped.
func RefSlice(values []any) []Ref {
	result := make([]Ref, 0, len(values))
	for _, v := range values {
		var ref Ref
		switch val := v.(type) {
		case string:
			ref = Ref{ID: val}
		case map[string]any:
			ref = RefFromMap(val)
		}
		if !ref.IsZero() {
			result = append(result, ref)
		}
	}
	return result
}
