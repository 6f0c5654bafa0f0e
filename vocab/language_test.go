package vocab

import "testing"

const (
	englishAAT = "http://vocab.getty.edu/aat/300388277"
	spanishAAT = "http://vocab.getty.edu/aat/300389311"
)

func TestNormalizeLanguageID(t *testing.T) {
	table := Default()
	custom := map[string]string{"english": englishAAT}

	tests := []struct {
		name   string
		tag    string
		lookup map[string]string
		want   string
	}{
		{"empty", "", nil, NoLanguage},
		{"aat id passes through", spanishAAT, nil, spanishAAT},
		{"language URL", "http://vocab.getty.edu/language/en", nil, englishAAT},
		{"iso code", "en", nil, englishAAT},
		{"upper-case iso code", "EN", nil, englishAAT},
		{"empty lookup map", "en", map[string]string{}, "en"},
		{"custom lookup map", "english", custom, englishAAT},
		{"unmatched", "english", nil, "english"},
		{"sentinel", NoLanguage, nil, NoLanguage},
		{"https aat id", "https://vocab.getty.edu/aat/300389311", nil, spanishAAT},
		{"short aat id", "aat:300389311", nil, spanishAAT},
		{"short lookup value", "spanish", map[string]string{"spanish": "aat:300389311"}, spanishAAT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.NormalizeLanguageID(tt.tag, tt.lookup); got != tt.want {
				t.Errorf("NormalizeLanguageID(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestLookupAATFromISO(t *testing.T) {
	table := Default()
	if got, ok := table.LookupAATFromISO("es"); !ok || got != spanishAAT {
		t.Errorf("LookupAATFromISO(es) = (%q, %v), want (%q, true)", got, ok, spanishAAT)
	}
	if got, ok := table.LookupAATFromISO("http://vocab.getty.edu/language/EN"); !ok || got != englishAAT {
		t.Errorf("LookupAATFromISO(language URL) = (%q, %v), want (%q, true)", got, ok, englishAAT)
	}
	if _, ok := table.LookupAATFromISO("xx"); ok {
		t.Errorf("LookupAATFromISO(xx) should not be found")
	}
}

func TestLookupISOFromAAT(t *testing.T) {
	table := Default()
	for _, id := range []string{englishAAT, "https://vocab.getty.edu/aat/300388277", "aat:300388277"} {
		if got, ok := table.LookupISOFromAAT(id); !ok || got != "en" {
			t.Errorf("LookupISOFromAAT(%q) = (%q, %v), want (en, true)", id, got, ok)
		}
	}
	if _, ok := table.LookupISOFromAAT("http://vocab.getty.edu/aat/1"); ok {
		t.Errorf("LookupISOFromAAT of an unknown id should not be found")
	}
	if _, ok := table.LookupISOFromAAT(""); ok {
		t.Errorf("LookupISOFromAAT(\"\") should not be found")
	}
}
