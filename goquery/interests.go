package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

var interestsChromeRe = regexp.MustCompile(`(?i)show all|followers`)

// InterestsExtractor extracts followed people, companies and groups.
type InterestsExtractor struct {
	locator *Locator
}

// NewInterestsExtractor creates an InterestsExtractor.
func NewInterestsExtractor(locator *Locator) *InterestsExtractor {
	return &InterestsExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *InterestsExtractor) Category() vitae.Category { return vitae.CategoryInterests }

// Extract collects interest link text, dropping control chrome, follower
// counters and very short tokens, capped at MaxInterests.
func (e *InterestsExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategoryInterests)
	if sec == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var interests []string
	sec.Find(`a[href*='/in/'], a[href*='/company/'], a[href*='/groups/']`).
		Each(func(_ int, a *goquery.Selection) {
			s := normText(a)
			if s == "" || interestsChromeRe.MatchString(s) {
				return
			}
			if utf8.RuneCountInString(s) <= 2 {
				return
			}
			key := strings.ToLower(s)
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			if len(interests) < vitae.MaxInterests {
				interests = append(interests, vitae.Capitalize(key))
			}
		})

	if len(interests) == 0 {
		return nil
	}
	return func(p *vitae.Profile) { p.Interests = interests }
}
