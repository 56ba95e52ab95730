package goquery

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestPickVisibleText(t *testing.T) {
	t.Parallel()

	t.Run("prefers the aria-hidden duplicate", func(t *testing.T) {
		t.Parallel()

		// The visible copy is truncated; the hidden duplicate is complete.
		doc := parse(t, `<div>
			<span class="visually-hidden">Senior Software…</span>
			<span aria-hidden="true">Senior Software Engineer</span>
		</div>`)

		got := pickVisibleText(doc.Find("div span"))
		assert.Equal(t, "Senior Software Engineer", got)
	})

	t.Run("falls back to the first node", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><span>First</span><span>Second</span></div>`)

		got := pickVisibleText(doc.Find("div span"))
		assert.Equal(t, "First", got)
	})

	t.Run("empty selection yields empty string", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div></div>`)
		assert.Empty(t, pickVisibleText(doc.Find("span")))
	})
}

func TestPickRoleNode(t *testing.T) {
	t.Parallel()

	t.Run("prefers a sub-heading", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<li><h3>Engineer</h3><span aria-hidden="true">Other</span></li>`)

		assert.Equal(t, "Engineer", text(pickRoleNode(doc.Find("li"))))
	})

	t.Run("then the aria-hidden span", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<li><span>Visible</span><span aria-hidden="true">Hidden</span></li>`)

		assert.Equal(t, "Hidden", text(pickRoleNode(doc.Find("li"))))
	})

	t.Run("then any span", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<li><span>Only</span></li>`)

		assert.Equal(t, "Only", text(pickRoleNode(doc.Find("li"))))
	})

	t.Run("nothing matches yields nil", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<li>bare text</li>`)

		assert.Nil(t, pickRoleNode(doc.Find("li")))
	})
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	t.Run("applies selectors in order, first non-empty wins", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<section><li class="b">row</li></section>`)

		sel := firstNonEmpty(doc.Find("section"), "li.a", "li.b", "li")
		require.NotNil(t, sel)
		assert.Equal(t, "row", text(sel))
	})

	t.Run("no match yields nil", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<section></section>`)
		assert.Nil(t, firstNonEmpty(doc.Find("section"), "li", "article"))
	})
}
