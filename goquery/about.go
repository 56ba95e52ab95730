package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

var aboutPrefixRe = regexp.MustCompile(`(?i)^about\s*`)

// AboutExtractor extracts the free-text about section.
type AboutExtractor struct {
	locator *Locator
}

// NewAboutExtractor creates an AboutExtractor.
func NewAboutExtractor(locator *Locator) *AboutExtractor {
	return &AboutExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *AboutExtractor) Category() vitae.Category { return vitae.CategoryAbout }

// Extract locates the about section and returns its deduplicated body text.
func (e *AboutExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategoryAbout)
	if sec == nil {
		return nil
	}

	node := aboutContentNode(sec)
	if node == nil {
		return nil
	}

	// The content block usually holds visible/accessible duplicate spans.
	raw := pickVisibleText(node.Find("span"))
	if raw == "" {
		raw = text(node)
	}

	txt := vitae.NormalizeWhitespace(raw)
	txt = vitae.StripTruncationArtifacts(txt)
	txt = vitae.DedupeSentences(txt)
	// The section heading sometimes ends up glued to the body text.
	txt = vitae.NormalizeWhitespace(aboutPrefixRe.ReplaceAllString(txt, ""))
	if txt == "" {
		return nil
	}
	return func(p *vitae.Profile) { p.About = txt }
}

// aboutContentNode returns the most likely content container, preferring
// the expandable text block, then layout containers without sub-headings,
// then a bare paragraph.
func aboutContentNode(sec *goquery.Selection) *goquery.Selection {
	if n := sec.Find(".inline-show-more-text"); n.Length() > 0 {
		return n.First()
	}
	if n := sec.Find("div.display-flex.full-width"); n.Length() > 0 {
		return n.First()
	}
	var noHeading *goquery.Selection
	sec.Find("div").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		if div.Find("h2, h3").Length() == 0 && text(div) != "" {
			noHeading = div
			return false
		}
		return true
	})
	if noHeading != nil {
		return noHeading
	}
	if n := sec.Find("p"); n.Length() > 0 {
		return n.First()
	}
	return nil
}
