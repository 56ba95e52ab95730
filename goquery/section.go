package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// Locator finds the subtree representing a named category. Sections are
// discovered fresh per extraction call and never cached; the underlying
// page may have changed between calls.
type Locator struct {
	patterns map[vitae.Category]vitae.SectionPattern
}

// NewLocator creates a Locator backed by the default pattern table.
func NewLocator() *Locator {
	return &Locator{patterns: vitae.SectionPatterns}
}

// FindSection returns the first section in document order whose nearest
// heading matches the category's pattern, falling back to id-fragment and
// accessible-label matches. Returns nil when nothing matches; sections are
// assumed not to repeat, so the first match wins.
func (l *Locator) FindSection(doc *goquery.Document, category vitae.Category) *goquery.Selection {
	pattern, ok := l.patterns[category]
	if !ok {
		return nil
	}

	var found *goquery.Selection
	doc.Find(`section, main section, div[role='region']`).EachWithBreak(func(_ int, sec *goquery.Selection) bool {
		heading := sec.Find("h2, h3, header h2, header h3").First()
		if pattern.Heading.MatchString(text(heading)) {
			found = sec
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	if found = matchAttrFragment(doc, "id", pattern.IDFragments); found != nil {
		return found
	}
	return matchAttrFragment(doc, "aria-label", pattern.LabelFragments)
}

// matchAttrFragment returns the first section-like node whose attribute
// contains one of the fragments, compared case-insensitively.
func matchAttrFragment(doc *goquery.Document, attr string, fragments []string) *goquery.Selection {
	if len(fragments) == 0 {
		return nil
	}
	var found *goquery.Selection
	doc.Find("section[" + attr + "], div[" + attr + "]").EachWithBreak(func(_ int, sec *goquery.Selection) bool {
		v, _ := sec.Attr(attr)
		v = strings.ToLower(v)
		for _, frag := range fragments {
			if strings.Contains(v, frag) {
				found = sec
				return false
			}
		}
		return true
	})
	return found
}
