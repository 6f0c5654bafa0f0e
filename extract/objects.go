package extract

import (
	"slices"

	"github.com/lehigh-university-libraries/linkedart/classify"
	"github.com/lehigh-university-libraries/linkedart/value"
	"github.com/lehigh-university-libraries/linkedart/vocab"
)

// DigitalImages returns image URLs for a resource.
//
// A representation classified as a digital image contributes its own id.
// Digital objects under a representation's digitally_shown_by contribute
// their access points, or their own id when they have none. URLs are
// returned once, in document order.
func (e *Extractor) DigitalImages(resource any, opts Options) []string {
	q := e.query(opts, vocab.DigitalImage)
	representations := value.Seq(resource, RepresentationField)

	urls := []string{}
	add := func(id string) {
		if id != "" && !slices.Contains(urls, id) {
			urls = append(urls, id)
		}
	}

	for _, image := range e.match.Match(representations, q) {
		add(value.ID(image))
	}
	for _, rep := range representations {
		for _, obj := range e.match.Match(value.Seq(rep, DigitallyShownBy), q) {
			points := value.Seq(obj, AccessPointField)
			if len(points) == 0 {
				add(value.ID(obj))
				continue
			}
			for _, p := range points {
				add(value.ID(p))
			}
		}
	}
	return urls
}

// RightsAssertions returns the Right resources in subject_to classified as
// copyright.
func (e *Extractor) RightsAssertions(resource any, opts Options) []any {
	return e.match.Match(value.Seq(resource, SubjectToField), e.query(opts, vocab.Copyright))
}

// ClearanceLevels returns the classifications of subject_to rights that are
// themselves classified as clearance levels.
func (e *Extractor) ClearanceLevels(resource any, opts Options) []any {
	return e.match.ClassificationsByNestedClass(value.Seq(resource, SubjectToField), e.query(opts, vocab.ClearanceLevel))
}

// WorkTypes returns the classifications of a resource that are themselves
// classified as a type of work.
func (e *Extractor) WorkTypes(resource any, opts Options) []any {
	return e.match.ClassificationsByNestedClass(resource, e.query(opts, vocab.TypeOfWork))
}

// Classifications returns the classifications of a resource that are
// themselves classified as a classification (e.g. a department's
// object category).
func (e *Extractor) Classifications(resource any, opts Options) []any {
	return e.match.ClassificationsByNestedClass(resource, e.query(opts, vocab.Classification))
}

func eventField(opts Options) string {
	if opts.Field == "" {
		return ProducedByField
	}
	return opts.Field
}

// CarriedOutBy returns the actors who carried out each part of the
// production, or of opts.Field when set.
func (e *Extractor) CarriedOutBy(resource any, opts Options) []any {
	return classify.FieldPartSubfield(resource, eventField(opts), CarriedOutByField)
}

// ProductionTimespans returns the timespans of each part of the production,
// or of opts.Field when set.
func (e *Extractor) ProductionTimespans(resource any, opts Options) []any {
	return classify.FieldPartSubfield(resource, eventField(opts), TimespanField)
}

// ProductionDates renders ProductionTimespans as EDTF strings, skipping
// timespans with no usable dates.
func (e *Extractor) ProductionDates(resource any, opts Options) []string {
	dates := []string{}
	for _, span := range e.ProductionTimespans(resource, opts) {
		ts, ok := value.TimespanFromResource(span)
		if !ok {
			continue
		}
		if edtf := ts.EDTF(); edtf != "" {
			dates = append(dates, edtf)
		}
	}
	return dates
}
