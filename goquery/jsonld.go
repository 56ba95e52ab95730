package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// embeddedPerson is the structured-data fallback used when DOM heuristics
// yield nothing for the header fields.
type embeddedPerson struct {
	Name     string
	Headline string
	Location string
}

// extractEmbeddedPerson scans embedded JSON-LD blocks for a Person-typed
// record. Payloads may be a single object or an array of objects. A block
// that fails to parse is skipped; the scan never aborts the pass.
func extractEmbeddedPerson(doc *goquery.Document) embeddedPerson {
	var person embeddedPerson
	doc.Find(`script[type='application/ld+json']`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		raw := sel.Text()
		if !strings.Contains(strings.ToLower(raw), "person") {
			return true
		}
		var payload any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return true
		}
		obj := findPersonObject(payload)
		if obj == nil {
			return true
		}
		person.Name = stringField(obj, "name")
		person.Headline = stringField(obj, "jobTitle")
		if person.Headline == "" {
			person.Headline = stringField(obj, "description")
		}
		if addr, ok := obj["address"].(map[string]any); ok {
			person.Location = stringField(addr, "addressLocality")
		}
		return false
	})
	return person
}

// findPersonObject returns the first object in payload with @type "Person".
func findPersonObject(payload any) map[string]any {
	switch v := payload.(type) {
	case map[string]any:
		if v["@type"] == "Person" {
			return v
		}
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok && obj["@type"] == "Person" {
				return obj
			}
		}
	}
	return nil
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}
