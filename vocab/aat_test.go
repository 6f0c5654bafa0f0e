package vocab

import "testing"

func TestNormalizeAATID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aat:300404670", "http://vocab.getty.edu/aat/300404670"},
		{"AAT:300404670", "http://vocab.getty.edu/aat/300404670"},
		{"http://vocab.getty.edu/aat/300404670", "aat:300404670"},
		{"https://vocab.getty.edu/aat/300404670", "aat:300404670"},
		{"HTTP://VOCAB.GETTY.EDU/aat/300404670", "aat:300404670"},
		{"https://data.getty.edu/local/thesaurus/camera-bearing", "https://data.getty.edu/local/thesaurus/camera-bearing"},
		{"http://vocab.getty.edu/aat/not_an_id", "http://vocab.getty.edu/aat/not_an_id"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAATID(tt.in); got != tt.want {
			t.Errorf("NormalizeAATID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAATRoundTrip(t *testing.T) {
	table := Default()
	var ids []string
	for _, id := range table.Terms {
		ids = append(ids, id)
	}
	for _, id := range table.Languages {
		ids = append(ids, id)
	}

	for _, url := range ids {
		if !IsAATID(url) {
			continue
		}
		short := ShortAATID(url)
		if got := NormalizeAATID(short); got != url {
			t.Errorf("NormalizeAATID(%q) = %q, want %q", short, got, url)
		}
		if got := NormalizeAATID(url); got != short {
			t.Errorf("NormalizeAATID(%q) = %q, want %q", url, got, short)
		}
		https := "https" + url[len("http"):]
		if NormalizeAATID(https) != NormalizeAATID(url) {
			t.Errorf("https and http forms of %q normalize differently", url)
		}
		if CanonicalAATID(https) != url || CanonicalAATID(short) != url {
			t.Errorf("CanonicalAATID does not converge on %q", url)
		}
	}
}
