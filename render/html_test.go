package render_test

import (
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *vitae.Profile {
	return &vitae.Profile{
		Name:     "Jane Doe",
		Headline: "Staff Engineer",
		Location: "Warsaw, Poland",
		Slug:     "jane-doe",
		About:    "I build distributed systems.",
		Contact: vitae.Contact{
			PublicProfileURL: "https://www.linkedin.com/in/jane-doe/",
			Email:            "jane@example.com",
			Websites:         []string{"https://janedoe.dev"},
		},
		Experiences: []vitae.ExperienceEntry{
			{
				Title:     "Software Engineer — Acme Corp",
				StartDate: "Jan 2020",
				EndDate:   "Present",
				Duration:  "2 yrs",
				Bullets:   []string{"Built X"},
			},
		},
		Education: []vitae.EducationEntry{
			{School: "Warsaw University", Degree: "MSc", StartDate: "2012", EndDate: "2017"},
		},
		Skills:    []string{"Golang"},
		Languages: []vitae.LanguageEntry{{Language: "Polish", Proficiency: "Native"}},
		Interests: []string{"Acme corp"},
	}
}

func TestHTMLRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders all toggled-on sections", func(t *testing.T) {
		t.Parallel()

		out, err := render.NewHTMLRenderer().Render(sampleProfile(), vitae.DefaultSettings())
		require.NoError(t, err)

		html := string(out)
		assert.Contains(t, html, "<h1><a href=\"https://www.linkedin.com/in/jane-doe/\">Jane Doe</a></h1>")
		assert.Contains(t, html, "Staff Engineer")
		assert.Contains(t, html, "<h2>Contact</h2>")
		assert.Contains(t, html, "<h2>Summary</h2>")
		assert.Contains(t, html, "Software Engineer — Acme Corp")
		assert.Contains(t, html, "Jan 2020 — Present · 2 yrs")
		assert.Contains(t, html, "<li>Built X</li>")
		assert.Contains(t, html, "<h2>Education</h2>")
		assert.Contains(t, html, "MSc · 2012 — 2017")
		assert.Contains(t, html, "<h2>Top Skills</h2>")
		assert.Contains(t, html, "<h2>Languages</h2>")
		assert.Contains(t, html, "<h2>Interests</h2>")
	})

	t.Run("toggled-off sections are omitted", func(t *testing.T) {
		t.Parallel()

		settings := vitae.DefaultSettings()
		settings.Experience = false
		settings.Contact = false

		out, err := render.NewHTMLRenderer().Render(sampleProfile(), settings)
		require.NoError(t, err)

		html := string(out)
		assert.NotContains(t, html, "<h2>Experience</h2>")
		assert.NotContains(t, html, "<h2>Contact</h2>")
		assert.Contains(t, html, "<h2>Summary</h2>")
	})

	t.Run("empty sections are omitted even when toggled on", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{Name: "Jane Doe"}
		out, err := render.NewHTMLRenderer().Render(p, vitae.DefaultSettings())
		require.NoError(t, err)

		html := string(out)
		assert.NotContains(t, html, "<h2>Experience</h2>")
		assert.NotContains(t, html, "<h2>Contact</h2>")
		assert.NotContains(t, html, "<h2>Publications</h2>")
	})

	t.Run("profile URL is rebuilt from the slug when contact lacks one", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{Name: "Jane Doe", Slug: "jane-doe"}
		out, err := render.NewHTMLRenderer().Render(p, vitae.DefaultSettings())
		require.NoError(t, err)

		assert.Contains(t, string(out), `<a href="https://www.linkedin.com/in/jane-doe/">Jane Doe</a>`)
	})

	t.Run("photo honors the toggle", func(t *testing.T) {
		t.Parallel()

		p := sampleProfile()
		p.ProfileImage = "https://cdn.example.com/jane.jpg"

		out, err := render.NewHTMLRenderer().Render(p, vitae.DefaultSettings())
		require.NoError(t, err)
		assert.Contains(t, string(out), `<img class="profile-photo"`)

		settings := vitae.DefaultSettings()
		settings.WithPhoto = false
		out, err = render.NewHTMLRenderer().Render(p, settings)
		require.NoError(t, err)
		assert.NotContains(t, string(out), `<img class="profile-photo"`)
	})

	t.Run("markup in extracted text is escaped", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{Name: "Jane <script>alert(1)</script>"}
		out, err := render.NewHTMLRenderer().Render(p, vitae.DefaultSettings())
		require.NoError(t, err)
		assert.NotContains(t, string(out), "<script>alert(1)</script>")
	})

	t.Run("nil profile is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := render.NewHTMLRenderer().Render(nil, vitae.DefaultSettings())
		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})

	t.Run("reports the html extension", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "html", render.NewHTMLRenderer().Ext())
	})
}
