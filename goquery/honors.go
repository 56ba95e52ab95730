package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// HonorsExtractor extracts honors and awards.
type HonorsExtractor struct {
	locator *Locator
}

// NewHonorsExtractor creates a HonorsExtractor.
func NewHonorsExtractor(locator *Locator) *HonorsExtractor {
	return &HonorsExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *HonorsExtractor) Category() vitae.Category { return vitae.CategoryHonors }

// Extract locates the honors section and builds one entry per row with a
// non-empty title. Dates are loose month-year or bare-year tokens.
func (e *HonorsExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategoryHonors)
	if sec == nil {
		return nil
	}

	rows := firstNonEmpty(sec, "li", "article")
	if rows == nil {
		return nil
	}

	var entries []vitae.HonorEntry
	rows.Each(func(_ int, row *goquery.Selection) {
		title := vitae.NormalizeWhitespace(pickVisibleText(row.Find(`h3, a span, .t-bold span[aria-hidden='true']`)))
		if title == "" {
			title = vitae.NormalizeWhitespace(pickVisibleText(row.Find(".t-bold, h3, a span")))
		}
		title = vitae.DedupeText(title)
		if title == "" {
			return
		}

		issuer := vitae.NormalizeWhitespace(pickVisibleText(row.Find(`span.t-14.t-normal span[aria-hidden='true']`)))
		if issuer == "" {
			issuer = vitae.NormalizeWhitespace(pickVisibleText(row.Find("span.t-14.t-normal:not(.t-black--light)")))
		}

		meta := normText(row.Find("span.t-14.t-normal.t-black--light"))
		entries = append(entries, vitae.HonorEntry{
			Title:  title,
			Issuer: issuer,
			Date:   vitae.ParseMonthOrYear(meta),
		})
	})

	if len(entries) == 0 {
		return nil
	}
	return func(p *vitae.Profile) { p.Honors = entries }
}
