package value

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"Irises", "Irises"},
		{float64(0), "0"},
		{float64(74.3), "74.3"},
		{true, "true"},
		{map[string]any{"id": "https://example.org/actor/1", "_label": "Vincent van Gogh"}, "Vincent van Gogh"},
		{map[string]any{"id": "https://example.org/actor/1"}, "https://example.org/actor/1"},
	}
	for _, tt := range tests {
		if got := Text(tt.in); got != tt.want {
			t.Errorf("Text(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextSlice(t *testing.T) {
	values := []any{" 90.PA.20 ", float64(0), "", "<p>Oil on canvas</p><p>Signed &amp; dated</p>"}

	got := TextSlice(values, WithStripHTML(), WithCollapseWhitespace())
	want := []string{"90.PA.20", "0", "Oil on canvas Signed & dated"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TextSlice() = %#v, want %#v", got, want)
	}

	got = TextSlice([]any{"a|b| c"}, WithDelimiter("|"))
	want = []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TextSlice() with delimiter = %#v, want %#v", got, want)
	}
}

func TestRefSlice(t *testing.T) {
	values := []any{
		"http://data.duchamparchives.org/pma/archive/actor/LCNAF/n80057220",
		map[string]any{"id": "https://data.vam.ac.uk/Actor/0", "label": "photographer", "type": "Actor"},
		float64(3),
		map[string]any{"type": "Actor"},
	}
	got := RefSlice(values)
	want := []Ref{
		{ID: "http://data.duchamparchives.org/pma/archive/actor/LCNAF/n80057220"},
		{ID: "https://data.vam.ac.uk/Actor/0", Type: "Actor", Label: "photographer"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RefSlice() = %#v, want %#v", got, want)
	}
}
