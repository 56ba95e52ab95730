package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

var showPublicationRe = regexp.MustCompile(`(?i)show publication`)

// PublicationsExtractor extracts publications.
type PublicationsExtractor struct {
	locator *Locator
}

// NewPublicationsExtractor creates a PublicationsExtractor.
func NewPublicationsExtractor(locator *Locator) *PublicationsExtractor {
	return &PublicationsExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *PublicationsExtractor) Category() vitae.Category { return vitae.CategoryPublications }

// Extract locates the publications section and builds one entry per row
// with a non-empty title. The meta line splits on the middle-dot separator
// into source and date when two parts are present, else a trailing date
// token is pulled out and the remainder becomes the source.
func (e *PublicationsExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategoryPublications)
	if sec == nil {
		return nil
	}

	rows := firstNonEmpty(sec, "li.artdeco-list__item", "li", "article")
	if rows == nil {
		return nil
	}

	var entries []vitae.PublicationEntry
	rows.Each(func(_ int, row *goquery.Selection) {
		title := vitae.DedupeText(vitae.NormalizeWhitespace(
			pickVisibleText(row.Find(`.t-bold span[aria-hidden='true'], h3, a span, .t-bold`))))
		if title == "" || showPublicationRe.MatchString(title) {
			return
		}

		meta := vitae.NormalizeWhitespace(
			pickVisibleText(row.Find(`span.t-14.t-normal span[aria-hidden='true'], span.t-14.t-normal`)))
		source, date := splitPublicationMeta(meta)

		description := vitae.DedupeText(normText(
			row.Find(".inline-show-more-text, .pv-shared-text-with-see-more, p").First()))

		url, _ := row.Find(`a.optional-action-target-wrapper[href^='http']`).First().Attr("href")

		entries = append(entries, vitae.PublicationEntry{
			Title:       title,
			Source:      source,
			Date:        date,
			URL:         url,
			Description: description,
		})
	})

	if len(entries) == 0 {
		return nil
	}
	return func(p *vitae.Profile) { p.Publications = entries }
}

// splitPublicationMeta splits "Source · Date" meta lines. With fewer than
// two parts it falls back to extracting a date token and treating the
// remainder as the source.
func splitPublicationMeta(meta string) (source, date string) {
	if meta == "" {
		return "", ""
	}

	var parts []string
	for _, p := range strings.Split(meta, "·") {
		if v := vitae.NormalizeWhitespace(p); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) >= 2 {
		return parts[0], strings.Join(parts[1:], " · ")
	}

	token := vitae.ParseDateToken(meta)
	if token == "" {
		return "", ""
	}
	leftover := vitae.NormalizeWhitespace(strings.ReplaceAll(strings.Replace(meta, token, "", 1), "·", ""))
	return leftover, token
}
