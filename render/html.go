// Package render produces printable documents from extracted profiles.
package render

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"

	"github.com/fwojciec/vitae"
)

// Ensure HTMLRenderer implements vitae.Renderer at compile time.
var _ vitae.Renderer = (*HTMLRenderer)(nil)

// DefaultProfileBaseURL is the prefix used to rebuild a public profile URL
// from a bare slug when the contact block did not carry one.
const DefaultProfileBaseURL = "https://www.linkedin.com/in/"

// HTMLRenderer renders a profile as a self-contained printable HTML page.
// Sections render in a fixed order and are individually gated by Settings;
// a section that is toggled on but has no content is omitted entirely.
type HTMLRenderer struct {
	// ProfileBaseURL prefixes the slug when no public profile URL is known.
	ProfileBaseURL string

	tmpl *template.Template
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"dash": joinNonEmpty(" — "),
		"dot":  joinNonEmpty(" · "),
	}
	return &HTMLRenderer{
		ProfileBaseURL: DefaultProfileBaseURL,
		tmpl:           template.Must(template.New("profile").Funcs(funcs).Parse(profileTemplate)),
	}
}

// Ext returns "html".
func (r *HTMLRenderer) Ext() string { return "html" }

// Render produces the printable HTML document.
func (r *HTMLRenderer) Render(profile *vitae.Profile, settings vitae.Settings) ([]byte, error) {
	if profile == nil {
		return nil, vitae.Errorf(vitae.EINVALID, "profile required")
	}

	data := templateData{
		Profile:    profile,
		Settings:   settings,
		ProfileURL: r.profileURL(profile),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// profileURL prefers the extracted public profile URL and falls back to
// rebuilding one from the slug.
func (r *HTMLRenderer) profileURL(profile *vitae.Profile) string {
	if profile.Contact.PublicProfileURL != "" {
		return profile.Contact.PublicProfileURL
	}
	if profile.Slug != "" {
		return r.ProfileBaseURL + url.PathEscape(profile.Slug) + "/"
	}
	return ""
}

type templateData struct {
	Profile    *vitae.Profile
	Settings   vitae.Settings
	ProfileURL string
}

// joinNonEmpty returns a template helper joining its non-empty arguments
// with the given separator.
func joinNonEmpty(sep string) func(parts ...string) string {
	return func(parts ...string) string {
		var kept []string
		for _, p := range parts {
			if p != "" {
				kept = append(kept, p)
			}
		}
		return strings.Join(kept, sep)
	}
}

const profileTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Profile.Name}}</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; color: #1a1a1a; }
h1 { margin-bottom: 0.1rem; }
h2 { border-bottom: 1px solid #ccc; padding-bottom: 0.2rem; }
.headline { font-size: 1.1rem; color: #444; }
.meta { color: #666; font-size: 0.9rem; }
.item { margin-bottom: 0.8rem; }
.role, .school { font-weight: bold; }
.header { display: flex; justify-content: space-between; }
.profile-photo { width: 96px; height: 96px; border-radius: 50%; object-fit: cover; }
@media print { body { margin: 0; } a { color: inherit; } }
</style>
</head>
<body>
{{if .Settings.ProfileHeader}}<section class="header section">
<div class="left">
<h1>{{if .ProfileURL}}<a href="{{.ProfileURL}}">{{.Profile.Name}}</a>{{else}}{{.Profile.Name}}{{end}}</h1>
{{with .Profile.Headline}}<div class="headline">{{.}}</div>{{end}}
{{with dot .Profile.Location .Profile.Slug .Profile.LastUpdated}}<div class="meta">{{.}}</div>{{end}}
</div>
{{if and .Settings.WithPhoto .Profile.ProfileImage}}<div class="right"><img class="profile-photo" src="{{.Profile.ProfileImage}}" alt="Profile photo"></div>{{end}}
</section>{{end}}
{{if and .Settings.Contact (not .Profile.Contact.IsZero)}}<section class="section"><h2>Contact</h2>
{{with .Profile.Contact.PublicProfileURL}}<div class="item"><a href="{{.}}">{{.}}</a></div>{{end}}
{{with .Profile.Contact.Email}}<div class="item"><a href="mailto:{{.}}">{{.}}</a></div>{{end}}
{{with .Profile.Contact.Websites}}<ul>{{range .}}<li><a href="{{.}}">{{.}}</a></li>{{end}}</ul>{{end}}
</section>{{end}}
{{if and .Settings.About .Profile.About}}<section class="section"><h2>Summary</h2><p>{{.Profile.About}}</p></section>{{end}}
{{if and .Settings.Experience .Profile.Experiences}}<section class="section"><h2>Experience</h2>
{{range .Profile.Experiences}}<div class="item">
<div class="role">{{.Title}}</div>
{{with dot (dash .StartDate .EndDate) .Duration}}<div class="meta">{{.}}</div>{{end}}
{{with .Description}}<p>{{.}}</p>{{end}}
{{with .Bullets}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}</section>{{end}}
{{if and .Settings.Education .Profile.Education}}<section class="section"><h2>Education</h2>
{{range .Profile.Education}}<div class="item">
<div class="school">{{.School}}</div>
{{with dot .Degree (dash .StartDate .EndDate)}}<div class="meta">{{.}}</div>{{end}}
</div>
{{end}}</section>{{end}}
{{if and .Settings.Certifications .Profile.Certifications}}<section class="section"><h2>Certifications</h2>
{{range .Profile.Certifications}}<div class="item">
<div class="role">{{dash .Name .Issuer}}</div>
{{with .Issued}}<div class="meta">Issued {{.}}</div>{{end}}
</div>
{{end}}</section>{{end}}
{{if and .Settings.Skills .Profile.Skills}}<section class="section"><h2>Top Skills</h2>
<ul>{{range .Profile.Skills}}<li>{{.}}</li>{{end}}</ul>
</section>{{end}}
{{if and .Settings.Languages .Profile.Languages}}<section class="section"><h2>Languages</h2>
{{range .Profile.Languages}}<div class="item">
<div class="role">{{.Language}}</div>
{{with .Proficiency}}<div class="meta">{{.}}</div>{{end}}
</div>
{{end}}</section>{{end}}
{{if and .Settings.Honors .Profile.Honors}}<section class="section"><h2>Honors &amp; Awards</h2>
{{range .Profile.Honors}}<div class="item">
<div class="role">{{dash .Title .Issuer}}</div>
{{with .Date}}<div class="meta">{{.}}</div>{{end}}
</div>
{{end}}</section>{{end}}
{{if and .Settings.Publications .Profile.Publications}}<section class="section"><h2>Publications</h2>
{{range .Profile.Publications}}<div class="item">
<div class="role">{{if .URL}}<a href="{{.URL}}">{{dash .Title .Source}}</a>{{else}}{{dash .Title .Source}}{{end}}</div>
{{with .Date}}<div class="meta">{{.}}</div>{{end}}
{{with .Description}}<p>{{.}}</p>{{end}}
</div>
{{end}}</section>{{end}}
{{if and .Settings.Interests .Profile.Interests}}<section class="section"><h2>Interests</h2>
<ul>{{range .Profile.Interests}}<li>{{.}}</li>{{end}}</ul>
</section>{{end}}
</body>
</html>
`
