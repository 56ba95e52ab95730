package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// urlCandidates returns the URL sources for slug and public-profile
// resolution in preference order: canonical link, open-graph URL, then the
// caller-supplied page URL.
func urlCandidates(doc *goquery.Document, pageURL string) []string {
	var out []string
	if v, ok := doc.Find(`link[rel='canonical']`).First().Attr("href"); ok && v != "" {
		out = append(out, v)
	}
	if v, ok := doc.Find(`meta[property='og:url']`).First().Attr("content"); ok && v != "" {
		out = append(out, v)
	}
	if pageURL != "" {
		out = append(out, pageURL)
	}
	return out
}

// resolvePublicProfileURL returns the first candidate URL on the profile
// host whose path matches the expected profile-path shape.
func (e *Extractor) resolvePublicProfileURL(doc *goquery.Document, pageURL string) string {
	for _, href := range urlCandidates(doc, pageURL) {
		u, err := url.Parse(href)
		if err != nil {
			continue
		}
		host := strings.ToLower(u.Hostname())
		onHost := host == e.HostDomain || strings.HasSuffix(host, "."+e.HostDomain)
		if onHost && e.profilePathRe.MatchString(u.Path) {
			return u.String()
		}
	}
	return ""
}

// resolveSlug derives the profile slug from the first candidate URL whose
// path matches the profile-path shape.
func (e *Extractor) resolveSlug(doc *goquery.Document, pageURL string) string {
	for _, href := range urlCandidates(doc, pageURL) {
		u, err := url.Parse(href)
		if err != nil {
			continue
		}
		m := e.profilePathRe.FindStringSubmatch(u.Path)
		if m == nil {
			continue
		}
		if slug, err := url.PathUnescape(m[1]); err == nil && slug != "" {
			return slug
		}
	}
	return ""
}
