package render

import (
	"encoding/json"

	"github.com/fwojciec/vitae"
)

// Ensure JSONRenderer implements vitae.Renderer at compile time.
var _ vitae.Renderer = (*JSONRenderer)(nil)

// JSONRenderer emits the raw profile record. Settings do not apply: the JSON
// export is the record itself, not a print view of it.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

// Ext returns "json".
func (r *JSONRenderer) Ext() string { return "json" }

// Render marshals the profile with indentation.
func (r *JSONRenderer) Render(profile *vitae.Profile, _ vitae.Settings) ([]byte, error) {
	if profile == nil {
		return nil, vitae.Errorf(vitae.EINVALID, "profile required")
	}
	return json.MarshalIndent(profile, "", "  ")
}
