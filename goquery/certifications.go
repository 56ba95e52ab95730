package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// CertificationsExtractor extracts licenses and certifications.
type CertificationsExtractor struct {
	locator *Locator
}

// NewCertificationsExtractor creates a CertificationsExtractor.
func NewCertificationsExtractor(locator *Locator) *CertificationsExtractor {
	return &CertificationsExtractor{locator: locator}
}

// Category returns the category this extractor populates.
func (e *CertificationsExtractor) Category() vitae.Category { return vitae.CategoryCertifications }

// Extract locates the certifications section and builds one entry per row
// with a non-empty name. "Issued <Month Year>" phrases are normalized to
// the bare month-year token.
func (e *CertificationsExtractor) Extract(doc *goquery.Document) ApplyFunc {
	sec := e.locator.FindSection(doc, vitae.CategoryCertifications)
	if sec == nil {
		return nil
	}

	rows := firstNonEmpty(sec, "li.artdeco-list__item", "li", "article")
	if rows == nil {
		return nil
	}

	var entries []vitae.CertificationEntry
	rows.Each(func(_ int, row *goquery.Selection) {
		name := vitae.NormalizeWhitespace(pickVisibleText(row.Find(`.t-bold span[aria-hidden='true']`)))
		if name == "" {
			name = vitae.NormalizeWhitespace(pickVisibleText(row.Find("h3, a span")))
		}
		name = vitae.DedupeText(name)
		if name == "" {
			return
		}

		issuer := vitae.NormalizeWhitespace(pickVisibleText(row.Find(`span.t-14.t-normal span[aria-hidden='true']`)))
		if issuer == "" {
			issuer = vitae.NormalizeWhitespace(pickVisibleText(row.Find("span.t-14.t-normal:not(.t-black--light)")))
		}

		issuedRaw := normText(row.Find(".t-14.t-normal.t-black--light .pvs-entity__caption-wrapper"))
		if issuedRaw == "" {
			issuedRaw = normText(row.Find(".t-14.t-normal.t-black--light"))
		}
		if issuedRaw == "" {
			issuedRaw = normText(row)
		}

		entries = append(entries, vitae.CertificationEntry{
			Name:   name,
			Issuer: issuer,
			Issued: vitae.ParseIssuedDate(issuedRaw),
		})
	})

	if len(entries) == 0 {
		return nil
	}
	return func(p *vitae.Profile) { p.Certifications = entries }
}
