package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// ExperienceExtractor extracts experience rows into typed entries.
type ExperienceExtractor struct {
	locator *Locator
}

// NewExperienceExtractor creates an ExperienceExtractor.
func NewExperienceExtractor(locator *Locator) *ExperienceExtractor {
	return &ExperienceExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *ExperienceExtractor) Category() vitae.Category { return vitae.CategoryExperience }

// Extract locates the experience section and builds one entry per row.
// Rows nested under a shared company container are flattened; structurally
// indistinguishable rows (same title and dates) collapse to one entry.
func (e *ExperienceExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategoryExperience)
	if sec == nil {
		return nil
	}

	rows := firstNonEmpty(sec,
		`div[data-test-id='experience-list-item']`,
		"li.artdeco-list__item",
		"li",
		"article",
	)
	if rows == nil {
		return nil
	}

	var entries []vitae.ExperienceEntry
	seen := make(map[string]struct{})

	collect := func(_ int, row *goquery.Selection) {
		entry, ok := experienceRow(row)
		if !ok {
			return
		}
		key := strings.Join([]string{
			strings.ToLower(entry.Title),
			entry.StartDate,
			entry.EndDate,
			entry.Duration,
		}, "|")
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		entries = append(entries, entry)
	}

	rows.Each(collect)
	// Profiles grouping multiple roles under one company nest a second list
	// inside the row; flatten those as additional rows.
	rows.Each(func(_ int, row *goquery.Selection) {
		row.ChildrenFiltered("ul").ChildrenFiltered("li").Each(collect)
	})

	if len(entries) == 0 {
		return nil
	}
	return func(p *vitae.Profile) { p.Experiences = entries }
}

// experienceRow builds a single entry from a row-like node. Returns false
// when the row has no usable title after normalization.
func experienceRow(row *goquery.Selection) (vitae.ExperienceEntry, bool) {
	title := vitae.NormalizeWhitespace(text(pickRoleNode(row)))
	// The meta span carries the same t-14/t-normal classes; exclude it so a
	// row without a company span does not pick up its dates as the company.
	company := vitae.NormalizeWhitespace(pickVisibleText(
		row.Find("span.t-14.t-normal:not(.t-black--light), a.app-aware-link")))

	meta := normText(row.Find("span.t-14.t-normal.t-black--light, .pvs-entity__caption-wrapper").First())
	if meta == "" {
		meta = normText(row.Find(".t-black--light").First())
	}
	dates := vitae.ParseDateRange(meta)

	var bullets []string
	row.Find("ul li").Each(func(_ int, li *goquery.Selection) {
		bullets = append(bullets, vitae.DedupeText(normText(li)))
	})
	bullets = vitae.UniqueCaseInsensitive(bullets)

	description := vitae.DedupeText(normText(row.Find("p, .inline-show-more-text, .pv-shared-text-with-see-more").First()))
	// A description identical to the joined bullets is the same content in
	// two shapes; keep only the bullets.
	if description != "" && len(bullets) > 0 && description == strings.Join(bullets, " ") {
		description = ""
	}

	// Combine title and company only when the company is not already part
	// of the title, to avoid "Engineer — Engineer" redundancy.
	line := title
	if company != "" && (title == "" || !strings.Contains(strings.ToLower(title), strings.ToLower(company))) {
		if title == "" {
			line = company
		} else {
			line = title + " — " + company
		}
	}
	line = vitae.DedupeText(line)
	if line == "" {
		return vitae.ExperienceEntry{}, false
	}

	return vitae.ExperienceEntry{
		Title:       line,
		StartDate:   dates.StartDate,
		EndDate:     dates.EndDate,
		Duration:    dates.Duration,
		Bullets:     bullets,
		Description: description,
	}, true
}
