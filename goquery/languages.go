package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// LanguagesExtractor extracts languages with optional proficiency.
type LanguagesExtractor struct {
	locator *Locator
}

// NewLanguagesExtractor creates a LanguagesExtractor.
func NewLanguagesExtractor(locator *Locator) *LanguagesExtractor {
	return &LanguagesExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *LanguagesExtractor) Category() vitae.Category { return vitae.CategoryLanguages }

// Extract locates the languages section and builds one entry per row with a
// non-empty language name.
func (e *LanguagesExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategoryLanguages)
	if sec == nil {
		return nil
	}

	rows := firstNonEmpty(sec, "li", "article")
	if rows == nil {
		return nil
	}

	var entries []vitae.LanguageEntry
	rows.Each(func(_ int, row *goquery.Selection) {
		language := vitae.NormalizeWhitespace(pickVisibleText(row.Find(`h3, a span, .t-bold span[aria-hidden='true']`)))
		if language == "" {
			language = vitae.NormalizeWhitespace(pickVisibleText(row.Find(".t-bold, h3, a span")))
		}
		language = vitae.DedupeText(language)
		if language == "" {
			return
		}

		entries = append(entries, vitae.LanguageEntry{
			Language:    language,
			Proficiency: vitae.NormalizeWhitespace(pickVisibleText(row.Find("span.t-14.t-normal, span.t-12, .t-black--light"))),
		})
	})

	if len(entries) == 0 {
		return nil
	}
	return func(p *vitae.Profile) { p.Languages = entries }
}
