package value

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return v
}

func TestSeq(t *testing.T) {
	tests := []struct {
		name     string
		resource any
		key      string
		want     []any
	}{
		{"nil resource", nil, "test", []any{}},
		{"string as resource", "test", "test", []any{}},
		{"empty object", map[string]any{}, "test", []any{}},
		{"nil value", map[string]any{"test": nil}, "test", []any{}},
		{"empty array", map[string]any{"test": []any{}}, "test", []any{}},
		{"string", map[string]any{"test": "test"}, "test", []any{"test"}},
		{"number", map[string]any{"test": float64(42)}, "test", []any{float64(42)}},
		{"zero", map[string]any{"test": float64(0)}, "test", []any{float64(0)}},
		{"empty string", map[string]any{"test": ""}, "test", []any{""}},
		{"object", map[string]any{"test": map[string]any{"a": "b"}}, "test", []any{map[string]any{"a": "b"}}},
		{"array", map[string]any{"test": []any{"a"}}, "test", []any{"a"}},
		{"string slice", map[string]any{"test": []string{"a", "b"}}, "test", []any{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Seq(tt.resource, tt.key)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Seq() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSeqIdempotent(t *testing.T) {
	inputs := []any{
		map[string]any{"k": "scalar"},
		map[string]any{"k": []any{"a", "b"}},
		map[string]any{"k": map[string]any{"id": "x"}},
		map[string]any{},
	}
	for _, in := range inputs {
		once := Seq(in, "k")
		twice := Seq(map[string]any{"k": once}, "k")
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Seq not idempotent for %#v: once %#v, twice %#v", in, once, twice)
		}
	}
}

func TestResources(t *testing.T) {
	if got := Resources(nil); len(got) != 0 {
		t.Errorf("Resources(nil) = %#v, want empty", got)
	}
	single := map[string]any{"id": "a"}
	if got := Resources(single); len(got) != 1 || !reflect.DeepEqual(got[0], single) {
		t.Errorf("Resources(single) = %#v", got)
	}
	maps := []map[string]any{{"id": "a"}, {"id": "b"}}
	if got := Resources(maps); len(got) != 2 {
		t.Errorf("Resources([]map) len = %d, want 2", len(got))
	}
}

func TestParts(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		if got := Parts(map[string]any{}, "produced_by"); len(got) != 0 {
			t.Errorf("Parts() = %#v, want empty", got)
		}
	})

	t.Run("no part wrapper", func(t *testing.T) {
		doc := decode(t, `{"produced_by": {"id": "p1", "type": "Production", "carried_out_by": [{"id": "a1"}]}}`)
		got := Parts(doc, "produced_by")
		if len(got) != 1 || ID(got[0]) != "p1" {
			t.Errorf("Parts() = %#v, want the production itself", got)
		}
	})

	t.Run("bookkeeping-only wrapper", func(t *testing.T) {
		doc := decode(t, `{"produced_by": {"id": "p", "type": "Production", "_label": "x",
			"part": [{"id": "p1"}, {"id": "p2"}]}}`)
		got := IDs(Parts(doc, "produced_by"))
		want := []string{"p1", "p2"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parts() ids = %v, want %v", got, want)
		}
	})

	t.Run("wrapper with its own data", func(t *testing.T) {
		doc := decode(t, `{"produced_by": {"id": "p", "type": "Production",
			"timespan": {"type": "TimeSpan"},
			"part": {"id": "p1"}}}`)
		got := IDs(Parts(doc, "produced_by"))
		want := []string{"p1", "p"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parts() ids = %v, want %v", got, want)
		}
	})

	t.Run("list of wrappers", func(t *testing.T) {
		doc := decode(t, `{"produced_by": [
			{"id": "a", "part": [{"id": "a1"}]},
			{"id": "b"}]}`)
		got := IDs(Parts(doc, "produced_by"))
		want := []string{"a1", "b"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parts() ids = %v, want %v", got, want)
		}
	})
}

func TestID(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"aat:300404670", "aat:300404670"},
		{map[string]any{"id": "x", "type": "Type"}, "x"},
		{map[string]any{"_label": "no id"}, ""},
		{float64(3), ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := ID(tt.in); got != tt.want {
			t.Errorf("ID(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValueOrContent(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   any
		wantOK bool
	}{
		{"nil", nil, nil, false},
		{"content", map[string]any{"content": "Irises"}, "Irises", true},
		{"value", map[string]any{"value": float64(16)}, float64(16), true},
		{"zero value", map[string]any{"value": float64(0)}, float64(0), true},
		{"value wins", map[string]any{"value": float64(1), "content": "one"}, float64(1), true},
		{"empty content", map[string]any{"content": ""}, nil, false},
		{"neither", map[string]any{"_label": "x"}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValueOrContent(tt.in)
			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValueOrContent() = (%#v, %v), want (%#v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRemoveDuplicatesByID(t *testing.T) {
	in := []any{
		map[string]any{"id": "a", "v": float64(1)},
		map[string]any{"id": "a", "v": float64(2)},
		map[string]any{"id": "b", "v": float64(3)},
	}
	got := RemoveDuplicatesByID(in)
	want := []any{
		map[string]any{"id": "a", "v": float64(1)},
		map[string]any{"id": "b", "v": float64(3)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveDuplicatesByID() = %#v, want %#v", got, want)
	}
	if len(in) != 3 {
		t.Errorf("input was modified: len = %d", len(in))
	}
}
