package vitae

import "regexp"

// DateRange holds the tokens extracted from a free-text meta line such as
// "Jan 2020 — Present · 3 yrs". Extraction is lexical: the matched tokens
// are kept verbatim and never validated against a calendar.
type DateRange struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// IsZero reports whether no tokens were extracted.
func (d DateRange) IsZero() bool {
	return d.StartDate == "" && d.EndDate == "" && d.Duration == ""
}

var (
	// "<Month Year> <dash-or-"to"> <Present | Month Year>"; the dash may be
	// an em-dash, a hyphen, or the word "to".
	dateRangeRe = regexp.MustCompile(`(?i)([A-Za-z]{3,}\s?\d{4})\s*(?:\x{2014}|-|to)\s*(Present|[A-Za-z]{3,}\s?\d{4})`)

	// A duration token: number plus unit, preceded by a middle-dot separator.
	durationRe = regexp.MustCompile(`(?i)\x{B7}\s*([\d\s,.]+(?:mos?|yrs?|years?|months?))`)

	// "Issued <Month Year>" / "Expedido <Month Year>".
	issuedRe    = regexp.MustCompile(`(?i)(?:Issued|Expedid[oa])\s+([A-Za-z]{3,}\s+\d{4})`)
	monthYearRe = regexp.MustCompile(`\b([A-Za-z]{3,}\s+\d{4})\b`)

	fullDateRe = regexp.MustCompile(`[A-Za-z]{3,}\s+\d{1,2},?\s*\d{4}`)
	yearRe     = regexp.MustCompile(`\b\d{4}\b`)
)

// ParseDateRange extracts start/end/duration tokens from a meta line.
// The range and duration matches are independent; either, both, or neither
// may be present. No match yields a zero DateRange, not an error.
func ParseDateRange(meta string) DateRange {
	if meta == "" {
		return DateRange{}
	}
	text := NormalizeWhitespace(meta)
	var d DateRange
	if m := dateRangeRe.FindStringSubmatch(text); m != nil {
		d.StartDate = NormalizeWhitespace(m[1])
		d.EndDate = NormalizeWhitespace(m[2])
	}
	if m := durationRe.FindStringSubmatch(text); m != nil {
		d.Duration = NormalizeWhitespace(m[1])
	}
	return d
}

// ParseIssuedDate normalizes an "Issued/Expedido <Month Year>" phrase to
// just "<Month Year>", falling back to a bare month-year token anywhere in
// the text. Returns "" when nothing matches.
func ParseIssuedDate(text string) string {
	if text == "" {
		return ""
	}
	if m := issuedRe.FindStringSubmatch(text); m != nil {
		return NormalizeWhitespace(m[1])
	}
	if m := monthYearRe.FindStringSubmatch(text); m != nil {
		return NormalizeWhitespace(m[1])
	}
	return ""
}

// ParseMonthOrYear extracts a "<Month Year>" token, falling back to a bare
// year. Returns "" when nothing matches.
func ParseMonthOrYear(text string) string {
	if text == "" {
		return ""
	}
	if m := monthYearRe.FindString(text); m != "" {
		return NormalizeWhitespace(m)
	}
	if m := yearRe.FindString(text); m != "" {
		return NormalizeWhitespace(m)
	}
	return ""
}

// ParseDateToken extracts the most specific date token present: a full
// "<Month Day, Year>" date, then "<Month Year>", then a bare year.
// Returns "" when nothing matches.
func ParseDateToken(text string) string {
	if text == "" {
		return ""
	}
	if m := fullDateRe.FindString(text); m != "" {
		return NormalizeWhitespace(m)
	}
	if m := monthYearRe.FindString(text); m != "" {
		return NormalizeWhitespace(m)
	}
	if m := yearRe.FindString(text); m != "" {
		return NormalizeWhitespace(m)
	}
	return ""
}
