package document

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lehigh-university-libraries/linkedart/extract"
	"github.com/lehigh-university-libraries/linkedart/value"
)

func testdataPaths(names ...string) []string {
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join("testdata", n)
	}
	return paths
}

func TestBatchRun(t *testing.T) {
	b := &Batch{Names: []string{"name", "accession", "work-types"}, Workers: 4}
	paths := testdataPaths("coin.json", "list.json", "irises.json", "missing.json", "coin.json")

	results, err := b.Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("Run() returned %d results, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("results[%d].Path = %s, want %s", i, res.Path, paths[i])
		}
	}

	coin := results[0]
	if coin.Failed() {
		t.Fatalf("coin failed: %v", coin.Err)
	}
	if got := coin.Values["accession"]; !reflect.DeepEqual(got, []any{"1944.100.51606"}) {
		t.Errorf("coin accession = %v", got)
	}
	if got := value.IDs(coin.Values["work-types"]); !reflect.DeepEqual(got, []string{"http://nomisma.org/id/stater", "aat:300037222"}) {
		t.Errorf("coin work types = %v", got)
	}
	if !errors.Is(results[1].Err, ErrNotObject) {
		t.Errorf("list.json error = %v, want ErrNotObject", results[1].Err)
	}
	if got := results[2].Values["name"]; !reflect.DeepEqual(got, []any{"Irises"}) {
		t.Errorf("irises name = %v", got)
	}
	if !results[3].Failed() {
		t.Errorf("missing.json should fail")
	}
	if !reflect.DeepEqual(results[4].Values, coin.Values) {
		t.Errorf("repeated document gave different values")
	}
}

func TestBatchSingleWorkerContinuesAfterFailure(t *testing.T) {
	b := &Batch{Names: []string{"accession"}, Workers: 1}
	paths := testdataPaths("list.json", "missing.json", "coin.json", "irises.json")

	results, err := b.Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !results[0].Failed() || !results[1].Failed() {
		t.Errorf("list.json and missing.json should fail")
	}
	if got := results[2].Values["accession"]; !reflect.DeepEqual(got, []any{"1944.100.51606"}) {
		t.Errorf("coin accession = %v", got)
	}
	if got := results[3].Values["accession"]; !reflect.DeepEqual(got, []any{"90.PA.20"}) {
		t.Errorf("irises accession = %v", got)
	}
}

func TestBatchValidate(t *testing.T) {
	if _, err := (&Batch{}).Run(context.Background(), testdataPaths("coin.json")); err == nil {
		t.Errorf("Run() without extractors should fail")
	}
	if _, err := (&Batch{Names: []string{"nope"}}).Run(context.Background(), testdataPaths("coin.json")); err == nil {
		t.Errorf("Run() with an unknown extractor should fail")
	}
	results, err := (&Batch{Names: []string{"name"}}).Run(context.Background(), nil)
	if err != nil || len(results) != 0 {
		t.Errorf("Run(no paths) = (%v, %v), want empty", results, err)
	}
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Batch{Names: []string{"name"}, Workers: 2}
	results, err := b.Run(ctx, testdataPaths("coin.json", "irises.json", "coin.json"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	for _, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("%s error = %v, want context.Canceled", res.Path, res.Err)
		}
	}
}

func TestBatchOptions(t *testing.T) {
	b := &Batch{
		Names:     []string{"names"},
		Options:   extract.Options{Language: "fr"},
		Extractor: extract.New(nil),
	}
	res := b.Evaluate("irises", mustLoad(t, "irises.json"))
	if got := res.Values["names"]; !reflect.DeepEqual(got, []any{"Les Iris"}) {
		t.Errorf("names in french = %v", got)
	}
	if res.ID == "" {
		t.Errorf("Evaluate() should record the document id")
	}
}

func mustLoad(t *testing.T, name string) map[string]any {
	t.Helper()
	doc, err := Load(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}
