package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// header holds the hero fields resolved from the top of the page.
type header struct {
	Name         string
	Headline     string
	Location     string
	ProfileImage string
}

var (
	urlTokenRe    = regexp.MustCompile(`(?i)\bhttps?://`)
	domainTokenRe = regexp.MustCompile(`(?i)\.com\b`)
)

// cleanLocation rejects location candidates that look like contact info
// ("@") or a website (URL/domain token); both indicate a selector false
// positive, not a real location.
func cleanLocation(loc string) string {
	v := vitae.NormalizeWhitespace(loc)
	if v == "" {
		return ""
	}
	if urlTokenRe.MatchString(v) || domainTokenRe.MatchString(v) {
		return ""
	}
	if strings.Contains(v, "@") {
		return ""
	}
	return v
}

// extractHeader resolves name, headline, location and profile image from
// the hero block, with ordered selector fallbacks per field.
func extractHeader(doc *goquery.Document) header {
	var h header

	h.Name = text(firstNonEmpty(doc.Selection,
		`[data-test-id='hero__name']`,
		"header h1",
		"h1",
	))

	h.Headline = text(firstNonEmpty(doc.Selection,
		`[data-test-id='hero__headline']`,
		"div.text-body-medium.break-words",
	))

	h.Location = cleanLocation(text(firstNonEmpty(doc.Selection,
		".text-body-small.inline.t-black--light.break-words",
		`[data-test-id='hero__location']`,
		"section div.inline-flex span.inline.t-14.t-normal.t-black--light",
		".pv-text-details__left-panel span.t-14.t-black--light",
		".pv-text-details__left-panel div.inline-flex span.t-14",
		"li.t-16.t-black.t-normal.inline-block",
	)))

	img := firstNonEmpty(doc.Selection,
		"img.pv-top-card-profile-picture__image",
		".pv-top-card-profile-picture img",
		".pv-top-card__photo img",
		`img[src*='profile-displayphoto']`,
		`img[alt*='profile']`,
		".presence-entity__image img, .ivm-view-attr__img--centered",
	)
	h.ProfileImage = pickImageURL(img)
	if h.ProfileImage == "" {
		h.ProfileImage = openGraphImage(doc)
	}

	return h
}

// pickImageURL resolves the best URL from an image node: a delayed-load
// attribute first, then the last (largest) srcset entry, then src.
func pickImageURL(img *goquery.Selection) string {
	if img == nil || img.Length() == 0 {
		return ""
	}
	img = img.First()
	if v, ok := img.Attr("data-delayed-url"); ok && v != "" {
		return v
	}
	if v, ok := img.Attr("data-test-src"); ok && v != "" {
		return v
	}
	if srcset, ok := img.Attr("srcset"); ok && srcset != "" {
		entries := strings.Split(srcset, ",")
		last := strings.TrimSpace(entries[len(entries)-1])
		if fields := strings.Fields(last); len(fields) > 0 {
			return fields[0]
		}
	}
	src, _ := img.Attr("src")
	return src
}

// openGraphImage returns the og:image or twitter:image metadata URL.
func openGraphImage(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[property='og:image']`).First().Attr("content"); ok && v != "" {
		return v
	}
	v, _ := doc.Find(`meta[name='twitter:image']`).First().Attr("content")
	return v
}
