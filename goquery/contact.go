package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// extractContact collects every mail-to and http(s) link on the page,
// deduplicated case-insensitively in encounter order. The first mail-to
// becomes the email; http(s) links resolving to the profile host's own
// domain or its short-link domain are excluded, and the remainder is
// capped at MaxWebsites.
func extractContact(doc *goquery.Document, hostDomain, shortLinkDomain string) vitae.Contact {
	var hrefs []string
	doc.Find(`a[href^='mailto:'], a[href^='https://'], a[href^='http://']`).
		Each(func(_ int, a *goquery.Selection) {
			if href, ok := a.Attr("href"); ok && href != "" {
				hrefs = append(hrefs, href)
			}
		})
	hrefs = vitae.UniqueCaseInsensitive(hrefs)

	var contact vitae.Contact
	for _, href := range hrefs {
		lower := strings.ToLower(href)
		switch {
		case strings.HasPrefix(lower, "mailto:"):
			if contact.Email == "" {
				contact.Email = href[len("mailto:"):]
			}
		case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
			if isOwnDomain(href, hostDomain, shortLinkDomain) {
				continue
			}
			if len(contact.Websites) < vitae.MaxWebsites {
				contact.Websites = append(contact.Websites, href)
			}
		}
	}
	return contact
}

// isOwnDomain reports whether the link resolves to the profile host itself
// or its short-link domain; those are navigation, not the person's sites.
func isOwnDomain(href, hostDomain, shortLinkDomain string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == hostDomain ||
		strings.HasSuffix(host, "."+hostDomain) ||
		host == shortLinkDomain
}
