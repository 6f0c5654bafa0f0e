package classify

import "github.com/lehigh-university-libraries/linkedart/vocab"

func std() *Matcher {
	return New(vocab.Default())
}

// Match evaluates q with the bundled vocabulary table.
func Match(resources any, q Query) []any {
	return std().Match(resources, q)
}

// ClassifiedAs returns the resources classified_as every one of ids.
func ClassifiedAs(resources any, ids ...string) []any {
	return std().ClassifiedAs(resources, ids...)
}

// ClassifiedBy returns the resources classified_by every one of ids.
func ClassifiedBy(resources any, ids ...string) []any {
	return std().ClassifiedBy(resources, ids...)
}

// ClassificationsByNestedClass uses the bundled vocabulary table.
func ClassificationsByNestedClass(resources any, q Query) []any {
	return std().ClassificationsByNestedClass(resources, q)
}

// ObjectsByNestedClass uses the bundled vocabulary table.
func ObjectsByNestedClass(resources any, q Query) []any {
	return std().ObjectsByNestedClass(resources, q)
}

// ValueByClassification uses the bundled vocabulary table.
func ValueByClassification(resources any, q Query) (any, bool) {
	return std().ValueByClassification(resources, q)
}

// ValuesByClassification uses the bundled vocabulary table.
func ValuesByClassification(resources any, q Query) []any {
	return std().ValuesByClassification(resources, q)
}

// ReferredToByClassification uses the bundled vocabulary table.
func ReferredToByClassification(resource any, q Query) (any, bool) {
	return std().ReferredToByClassification(resource, q)
}

// FieldValuesByClassifications uses the bundled vocabulary table.
func FieldValuesByClassifications(resource any, field string, q Query) []any {
	return std().FieldValuesByClassifications(resource, field, q)
}
