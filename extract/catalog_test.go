package extract

import (
	"reflect"
	"testing"
)

func TestCatalog(t *testing.T) {
	irises := loadFixture(t, "irises.json")
	e := New(nil)

	tests := []struct {
		name string
		want []string
	}{
		{"name", []string{"Irises"}},
		{"NAMES", []string{"Irises", "Les Iris"}},
		{"accession", []string{"90.PA.20"}},
		{"culture", []string{"Dutch"}},
		{"dates", []string{"1889"}},
		{"images", []string{
			"https://media.getty.edu/iiif/image/irises/full/full/0/default.jpg",
			"https://media.getty.edu/iiif/image/irises/full/600,/0/default.jpg",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultCatalog.Run(e, tt.name, irises, Options{})
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if !reflect.DeepEqual(texts(got), tt.want) {
				t.Errorf("Run(%s) = %v, want %v", tt.name, texts(got), tt.want)
			}
		})
	}

	if _, err := DefaultCatalog.Run(e, "nope", irises, Options{}); err == nil {
		t.Errorf("Run(nope) should fail")
	}
}

func TestCatalogList(t *testing.T) {
	names := NewCatalog().List()
	if len(names) != len(builtins) {
		t.Errorf("List() = %d names, want %d", len(names), len(builtins))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() is not sorted: %v", names)
			break
		}
	}
}
