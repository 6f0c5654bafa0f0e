package value

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DatePrecision indicates the granularity of a date.
type DatePrecision int

const (
	PrecisionUnknown DatePrecision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
)

// Date is a calendar date with a precision.
type Date struct {
	Year      int
	Month     int
	Day       int
	Precision DatePrecision

	// midnight is set for timestamps at 00:00:00, which as an end bound
	// exclude the day they name
	midnight bool
}

// IsZero returns true if the date has no meaningful value.
func (d Date) IsZero() bool {
	return d.Precision == PrecisionUnknown
}

// String formats the date to its precision (EDTF level 0).
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(padInt(d.Year, 4))
	if d.Precision >= PrecisionMonth {
		sb.WriteString("-")
		sb.WriteString(padInt(d.Month, 2))
	}
	if d.Precision >= PrecisionDay {
		sb.WriteString("-")
		sb.WriteString(padInt(d.Day, 2))
	}
	return sb.String()
}

func padInt(n, width int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// Timestamps seen in TimeSpan bounds, zoned and unzoned.
var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

var isoDateRegex = regexp.MustCompile(`^(-?\d{1,4})(?:-(\d{2})(?:-(\d{2}))?)?$`)

// ParseDate parses a TimeSpan boundary. Accepts RFC 3339 timestamps (with or
// without fractional seconds), timestamps without a zone, and ISO dates of
// year, month or day precision.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			midnight := t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
			return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day(), Precision: PrecisionDay, midnight: midnight}, true
		}
	}
	m := isoDateRegex.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	d := Date{Precision: PrecisionYear}
	d.Year, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		d.Month, _ = strconv.Atoi(m[2])
		d.Precision = PrecisionMonth
	}
	if m[3] != "" {
		d.Day, _ = strconv.Atoi(m[3])
		d.Precision = PrecisionDay
	}
	return d, true
}

// Timespan is a Linked.Art TimeSpan reduced to its outer bounds.
type Timespan struct {
	Begin Date
	End   Date
	Label string
}

// TimespanFromResource reads begin_of_the_begin and end_of_the_end from a
// TimeSpan node. The label comes from _label/label, else from the first
// identified_by name.
func TimespanFromResource(resource any) (Timespan, bool) {
	m := Resource(resource)
	if m == nil {
		return Timespan{}, false
	}
	var ts Timespan
	if s, ok := m["begin_of_the_begin"].(string); ok {
		ts.Begin, _ = ParseDate(s)
	}
	if s, ok := m["end_of_the_end"].(string); ok {
		ts.End, _ = ParseDate(s)
	}
	ts.Label = RefFromMap(m).Label
	if ts.Label == "" {
		for _, name := range Seq(m, "identified_by") {
			if c, ok := ValueOrContent(name); ok {
				ts.Label = Text(c)
				break
			}
		}
	}
	if ts.Begin.IsZero() && ts.End.IsZero() && ts.Label == "" {
		return Timespan{}, false
	}
	return ts, true
}

// EDTF renders the bounds as an EDTF date or interval. A begin on January
// 1st or an end on December 31st collapses to its year. An end at midnight
// on January 1st is exclusive and collapses to the year before it. An
// interval within a single year collapses to that year.
func (ts Timespan) EDTF() string {
	begin := beginBound(ts.Begin)
	end := endBound(ts.End)
	if !begin.IsZero() && !end.IsZero() && end.Year < begin.Year {
		// A zero-length span at midnight on January 1st.
		end = begin
	}
	switch {
	case begin.IsZero() && end.IsZero():
		return ""
	case end.IsZero():
		return begin.String() + "/.."
	case begin.IsZero():
		return "../" + end.String()
	case begin.String() == end.String():
		return begin.String()
	default:
		return begin.String() + "/" + end.String()
	}
}

func beginBound(d Date) Date {
	if d.Precision == PrecisionDay && d.Month == 1 && d.Day == 1 {
		return Date{Year: d.Year, Precision: PrecisionYear}
	}
	return d
}

func endBound(d Date) Date {
	if d.Precision != PrecisionDay {
		return d
	}
	switch {
	case d.Month == 12 && d.Day == 31:
		return Date{Year: d.Year, Precision: PrecisionYear}
	case d.Month == 1 && d.Day == 1 && d.midnight:
		return Date{Year: d.Year - 1, Precision: PrecisionYear}
	}
	return d
}
