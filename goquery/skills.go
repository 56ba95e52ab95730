package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

var (
	skillsHeadingRe = regexp.MustCompile(`(?i)^skills$`)
	skillsChromeRe  = regexp.MustCompile(`(?i)show all|endorse`)
)

// SkillsExtractor extracts skill pill text.
type SkillsExtractor struct {
	locator *Locator
}

// NewSkillsExtractor creates a SkillsExtractor.
func NewSkillsExtractor(locator *Locator) *SkillsExtractor {
	return &SkillsExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *SkillsExtractor) Category() vitae.Category { return vitae.CategorySkills }

// Extract collects skill link/pill text, dropping control chrome and very
// short tokens, deduplicated case-insensitively in encounter order. Tokens
// are lower-cased and re-capitalized for display consistency.
func (e *SkillsExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategorySkills)
	if sec == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var skills []string
	sec.Find(`a[href*='/skills/'], a[href*='/skill/'], span[aria-hidden='true'], span.artdeco-pill__text`).
		Each(func(_ int, n *goquery.Selection) {
			s := normText(n)
			if s == "" || skillsHeadingRe.MatchString(s) || skillsChromeRe.MatchString(s) {
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
			skills = append(skills, vitae.Capitalize(key))
		})

	if len(skills) == 0 {
		return nil
	}
	return func(p *vitae.Profile) { p.Skills = skills }
}
