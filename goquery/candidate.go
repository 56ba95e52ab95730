package goquery

import "github.com/PuerkitoBio/goquery"

// The markup renders the same content twice: a visible, possibly truncated
// copy and an aria-hidden duplicate carrying the complete text. Picking the
// hidden duplicate first is deliberate; the naive "pick what's visible"
// choice silently truncates or doubles output.

// pickVisibleText returns the authoritative text among duplicate candidate
// nodes: the aria-hidden="true" duplicate when present, else the first node.
func pickVisibleText(nodes *goquery.Selection) string {
	if nodes == nil || nodes.Length() == 0 {
		return ""
	}
	var hidden *goquery.Selection
	nodes.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, ok := sel.Attr("aria-hidden"); ok && v == "true" {
			hidden = sel
			return false
		}
		return true
	})
	if hidden != nil {
		return text(hidden)
	}
	return text(nodes.First())
}

// pickRoleNode returns the node carrying a row's primary title: a
// sub-heading when present, then the aria-hidden duplicate span, then any
// span, in that fixed fallback order.
func pickRoleNode(container *goquery.Selection) *goquery.Selection {
	if container == nil {
		return nil
	}
	if h := container.Find("h3"); h.Length() > 0 {
		return h.First()
	}
	if s := container.Find(`span[aria-hidden='true']`); s.Length() > 0 {
		return s.First()
	}
	if s := container.Find("span"); s.Length() > 0 {
		return s.First()
	}
	return nil
}
