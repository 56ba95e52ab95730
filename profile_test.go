package vitae_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	t.Parallel()

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{}
		err := p.Validate()
		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})

	t.Run("rejects more than five websites", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{
			Name: "Jane Doe",
			Contact: vitae.Contact{
				Websites: []string{"a", "b", "c", "d", "e", "f"},
			},
		}
		err := p.Validate()
		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})

	t.Run("placeholder-only record is valid", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{Name: vitae.PlaceholderName}
		assert.NoError(t, p.Validate())
	})
}

func TestProfileJSON(t *testing.T) {
	t.Parallel()

	t.Run("absent fields are omitted, not empty", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{Name: "Jane Doe"}
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))

		assert.Contains(t, m, "name")
		assert.NotContains(t, m, "languages")
		assert.NotContains(t, m, "experiences")
		assert.NotContains(t, m, "contact")
		assert.NotContains(t, m, "headline")
	})

	t.Run("contact key appears once any contact field is set", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{
			Name:    "Jane Doe",
			Contact: vitae.Contact{Email: "jane@example.com"},
		}
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Contains(t, m, "contact")
	})
}
