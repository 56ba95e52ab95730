// Package gofpdf renders extracted profiles as PDF documents.
package gofpdf

import (
	"bytes"
	"strings"

	"github.com/fwojciec/vitae"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Renderer implements vitae.Renderer at compile time.
var _ vitae.Renderer = (*Renderer)(nil)

// Renderer produces a minimal single-column PDF. Layout is intentionally
// simple: headings, meta lines and bullet lists, in the same section order
// as the HTML renderer.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Ext returns "pdf".
func (r *Renderer) Ext() string { return "pdf" }

// Render produces the PDF document bytes.
func (r *Renderer) Render(profile *vitae.Profile, settings vitae.Settings) ([]byte, error) {
	if profile == nil {
		return nil, vitae.Errorf(vitae.EINVALID, "profile required")
	}

	doc := newDoc()

	if settings.ProfileHeader {
		doc.title(profile.Name)
		doc.meta(profile.Headline)
		doc.meta(joinDot(profile.Location, profile.Slug))
	}

	if settings.Contact && !profile.Contact.IsZero() {
		doc.heading("Contact")
		doc.link(profile.Contact.PublicProfileURL)
		doc.line(profile.Contact.Email)
		for _, w := range profile.Contact.Websites {
			doc.link(w)
		}
	}

	if settings.About && profile.About != "" {
		doc.heading("Summary")
		doc.paragraph(profile.About)
	}

	if settings.Experience && len(profile.Experiences) > 0 {
		doc.heading("Experience")
		for _, e := range profile.Experiences {
			doc.itemHead(e.Title)
			doc.meta(joinDot(joinDash(e.StartDate, e.EndDate), e.Duration))
			doc.paragraph(e.Description)
			doc.bullets(e.Bullets)
			doc.gap()
		}
	}

	if settings.Education && len(profile.Education) > 0 {
		doc.heading("Education")
		for _, e := range profile.Education {
			doc.itemHead(e.School)
			doc.meta(joinDot(e.Degree, joinDash(e.StartDate, e.EndDate)))
			doc.gap()
		}
	}

	if settings.Certifications && len(profile.Certifications) > 0 {
		doc.heading("Certifications")
		for _, c := range profile.Certifications {
			doc.itemHead(joinDash(c.Name, c.Issuer))
			if c.Issued != "" {
				doc.meta("Issued " + c.Issued)
			}
			doc.gap()
		}
	}

	if settings.Skills && len(profile.Skills) > 0 {
		doc.heading("Top Skills")
		doc.bullets(profile.Skills)
	}

	if settings.Languages && len(profile.Languages) > 0 {
		doc.heading("Languages")
		for _, l := range profile.Languages {
			doc.line(joinDash(l.Language, l.Proficiency))
		}
	}

	if settings.Honors && len(profile.Honors) > 0 {
		doc.heading("Honors & Awards")
		for _, h := range profile.Honors {
			doc.itemHead(joinDash(h.Title, h.Issuer))
			doc.meta(h.Date)
			doc.gap()
		}
	}

	if settings.Publications && len(profile.Publications) > 0 {
		doc.heading("Publications")
		for _, p := range profile.Publications {
			doc.itemHead(joinDash(p.Title, p.Source))
			doc.meta(p.Date)
			doc.link(p.URL)
			doc.paragraph(p.Description)
			doc.gap()
		}
	}

	if settings.Interests && len(profile.Interests) > 0 {
		doc.heading("Interests")
		doc.bullets(profile.Interests)
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// doc wraps gofpdf with the handful of text styles the layout needs.
type doc struct {
	pdf *gofpdf.Fpdf
	// tr maps UTF-8 to the core-font codepage; meta lines carry em dashes
	// and middle dots that would otherwise render as mojibake.
	tr func(string) string
}

func newDoc() *doc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()
	return &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (d *doc) title(s string) {
	if s == "" {
		return
	}
	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.CellFormat(0, 9, d.tr(s), "", 1, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 11)
}

func (d *doc) heading(s string) {
	d.pdf.Ln(3)
	d.pdf.SetFont("Helvetica", "B", 13)
	d.pdf.CellFormat(0, 8, d.tr(s), "", 1, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 11)
}

func (d *doc) itemHead(s string) {
	if s == "" {
		return
	}
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.MultiCell(0, 5, d.tr(s), "", "L", false)
	d.pdf.SetFont("Helvetica", "", 11)
}

func (d *doc) meta(s string) {
	if s == "" {
		return
	}
	d.pdf.SetFont("Helvetica", "I", 10)
	d.pdf.MultiCell(0, 5, d.tr(s), "", "L", false)
	d.pdf.SetFont("Helvetica", "", 11)
}

func (d *doc) line(s string) {
	if s == "" {
		return
	}
	d.pdf.MultiCell(0, 5, d.tr(s), "", "L", false)
}

// link writes a clickable URL line.
func (d *doc) link(s string) {
	if s == "" {
		return
	}
	d.pdf.SetTextColor(0, 0, 238)
	d.pdf.WriteLinkString(5, d.tr(s), s)
	d.pdf.Ln(5)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *doc) paragraph(s string) {
	if s == "" {
		return
	}
	d.pdf.MultiCell(0, 5, d.tr(s), "", "L", false)
}

func (d *doc) bullets(items []string) {
	for _, it := range items {
		if it == "" {
			continue
		}
		d.pdf.MultiCell(0, 5, d.tr("- "+it), "", "L", false)
	}
}

func (d *doc) gap() {
	d.pdf.Ln(2)
}

func joinDash(parts ...string) string { return joinNonEmpty(" — ", parts) }
func joinDot(parts ...string) string  { return joinNonEmpty(" · ", parts) }

func joinNonEmpty(sep string, parts []string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
