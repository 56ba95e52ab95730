// Package goquery implements the profile extraction engine on top of
// goquery document trees. The document is read-only for the whole pass;
// nothing here mutates or navigates the underlying page.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// text returns the trimmed text content of the first node in sel.
func text(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.First().Text())
}

// normText returns the whitespace-normalized text of the first node in sel.
func normText(sel *goquery.Selection) string {
	return vitae.NormalizeWhitespace(text(sel))
}

// firstNonEmpty tries each selector against root in order and returns the
// first non-empty selection. The ordering encodes real-world markup-variant
// priority across document versions, not accidental preference.
func firstNonEmpty(root *goquery.Selection, selectors ...string) *goquery.Selection {
	for _, s := range selectors {
		if found := root.Find(s); found.Length() > 0 {
			return found
		}
	}
	return nil
}
