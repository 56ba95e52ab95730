package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// Education meta lines carry bare years ("2015 - 2019", "2020 - Present");
// a loose year capture is deliberate here, unlike the month-year ranges in
// experience rows.
var educationYearsRe = regexp.MustCompile(`(?i)(\d{4}).*?(Present|\d{4})`)

// EducationExtractor extracts education rows into typed entries.
type EducationExtractor struct {
	locator *Locator
}

// NewEducationExtractor creates an EducationExtractor.
func NewEducationExtractor(locator *Locator) *EducationExtractor {
	return &EducationExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *EducationExtractor) Category() vitae.Category { return vitae.CategoryEducation }

// Extract locates the education section and builds one entry per row with a
// non-empty school name.
func (e *EducationExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategoryEducation)
	if sec == nil {
		return nil
	}

	rows := firstNonEmpty(sec, "li", "article")
	if rows == nil {
		return nil
	}

	var entries []vitae.EducationEntry
	rows.Each(func(_ int, row *goquery.Selection) {
		school := normText(row.Find("h3"))
		if school == "" {
			school = normText(row.Find("a span"))
		}
		if school == "" {
			return
		}

		entry := vitae.EducationEntry{
			School: vitae.DedupeText(school),
			Degree: vitae.NormalizeWhitespace(pickVisibleText(row.Find("span.t-14.t-normal:not(.t-black--light)"))),
		}
		meta := normText(row.Find("span.t-14.t-normal.t-black--light"))
		if m := educationYearsRe.FindStringSubmatch(meta); m != nil {
			entry.StartDate = m[1]
			entry.EndDate = m[2]
		}
		entries = append(entries, entry)
	})

	if len(entries) == 0 {
		return nil
	}
	return func(p *vitae.Profile) { p.Education = entries }
}
