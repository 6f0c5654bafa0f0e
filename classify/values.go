package classify

import (
	"github.com/lehigh-university-libraries/linkedart/value"
)

// ValueByClassification returns the value or content of the first resource
// matching q. A value of 0 is returned as found.
func (m *Matcher) ValueByClassification(resources any, q Query) (any, bool) {
	matches := m.Match(resources, q)
	if len(matches) == 0 {
		return nil, false
	}
	return value.ValueOrContent(matches[0])
}

// ValuesByClassification returns the value or content of every resource
// matching q, skipping matches that have neither.
func (m *Matcher) ValuesByClassification(resources any, q Query) []any {
	values := []any{}
	for _, match := range m.Match(resources, q) {
		if v, ok := value.ValueOrContent(match); ok {
			values = append(values, v)
		}
	}
	return values
}

// ReferredToByClassification returns the first value among the statements
// that refer to resource and match q.
func (m *Matcher) ReferredToByClassification(resource any, q Query) (any, bool) {
	statements := value.Seq(resource, ReferredToByField)
	if len(statements) == 0 {
		return nil, false
	}
	return m.ValueByClassification(statements, q)
}

// FieldValuesByClassifications returns the values of the entries of
// resource[field] that match q.
func (m *Matcher) FieldValuesByClassifications(resource any, field string, q Query) []any {
	entries := value.Seq(resource, field)
	if len(entries) == 0 {
		return []any{}
	}
	return m.ValuesByClassification(entries, q)
}

// Attributed returns what the resource's attribute assignments (attributed_by)
// assigned to property.
func Attributed(resource any, property string) []any {
	return assignedProperty(value.Seq(resource, "attributed_by"), property)
}

// Assigned returns what the resource's assigned_by assignments assigned to
// property.
func Assigned(resource any, property string) []any {
	return assignedProperty(value.Seq(resource, "assigned_by"), property)
}

func assignedProperty(assignments []any, property string) []any {
	results := []any{}
	for _, a := range assignments {
		p, _ := value.Field(a, "assigned_property")
		if p != property {
			continue
		}
		if assigned, ok := value.Field(a, "assigned"); ok {
			results = append(results, assigned)
		}
	}
	return results
}

// ObjectParts returns the parts of resource[field]. See value.Parts.
func ObjectParts(resource any, field string) []any {
	return value.Parts(resource, field)
}

// FieldPartSubfield returns subfield of every part of resource[field]. For a
// production event, FieldPartSubfield(obj, "produced_by", "carried_out_by")
// lists the producers of all of its parts.
func FieldPartSubfield(resource any, field, subfield string) []any {
	results := []any{}
	for _, part := range value.Parts(resource, field) {
		results = append(results, value.Seq(part, subfield)...)
	}
	return results
}
