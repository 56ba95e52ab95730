package vitae

import "context"

// PlaceholderName is used when no name could be resolved from the page.
// A downstream renderer always receives a non-empty name.
const PlaceholderName = "Untitled Profile"

// MaxWebsites caps the number of external website links kept in Contact.
const MaxWebsites = 5

// MaxInterests caps the number of interest entries kept in a Profile.
const MaxInterests = 40

// Profile is the structured record assembled from one extraction pass.
// A field is present only if non-empty: nil slices and empty strings mean
// "not found", which is distinct from "found but blank" (the normalizer is
// the only place allowed to coerce blank into absence). The record is
// immutable once returned.
type Profile struct {
	Name         string  `json:"name"`
	Headline     string  `json:"headline,omitempty"`
	Location     string  `json:"location,omitempty"`
	Slug         string  `json:"slug,omitempty"`
	ProfileImage string  `json:"profileImage,omitempty"`
	Contact      Contact `json:"contact,omitzero"`
	About        string  `json:"about,omitempty"`

	Experiences    []ExperienceEntry    `json:"experiences,omitempty"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	Skills         []string             `json:"skills,omitempty"`
	Languages      []LanguageEntry      `json:"languages,omitempty"`
	Honors         []HonorEntry         `json:"honors,omitempty"`
	Publications   []PublicationEntry   `json:"publications,omitempty"`
	Interests      []string             `json:"interests,omitempty"`

	// LastUpdated is stamped exactly once, at the end of the extraction
	// pass that produced the record. RFC 3339.
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// Contact holds the contact block extracted from the page.
type Contact struct {
	PublicProfileURL string   `json:"publicProfileUrl,omitempty"`
	Email            string   `json:"email,omitempty"`
	Websites         []string `json:"websites,omitempty"`
}

// IsZero reports whether the contact block is empty. Used by encoding/json
// to omit the contact key entirely when nothing was found.
func (c Contact) IsZero() bool {
	return c.PublicProfileURL == "" && c.Email == "" && len(c.Websites) == 0
}

// ExperienceEntry is one role extracted from the experience section.
type ExperienceEntry struct {
	Title       string   `json:"title"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
	Description string   `json:"description,omitempty"`
}

// EducationEntry is one school extracted from the education section.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// CertificationEntry is one license or certification.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Issued string `json:"issued,omitempty"`
}

// LanguageEntry is one language with optional proficiency.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// HonorEntry is one honor or award.
type HonorEntry struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// PublicationEntry is one publication.
type PublicationEntry struct {
	Title       string `json:"title"`
	Source      string `json:"source,omitempty"`
	Date        string `json:"date,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// Validate returns an error if the profile violates record invariants.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if len(p.Contact.Websites) > MaxWebsites {
		return Errorf(EINVALID, "contact websites exceed cap of %d", MaxWebsites)
	}
	return nil
}

// ProfileExtractor turns a rendered page snapshot into a Profile.
// Implementations never mutate the snapshot and never fail hard: heuristic
// misses surface as absent fields, and an unexpected failure during the pass
// yields a minimal record carrying just the placeholder name.
type ProfileExtractor interface {
	// Extract runs one extraction pass over the rendered HTML snapshot.
	// pageURL is an optional already-known canonical URL used only as a
	// slug/URL-resolution fallback; it may be empty.
	Extract(ctx context.Context, html string, pageURL string) (*Profile, error)
}

// Fetcher retrieves rendered HTML snapshots from URLs.
// Implementations use browser automation and must let the page fully settle,
// including any reveal-hidden-content step, before reading; otherwise
// truncated fields are captured silently.
type Fetcher interface {
	// Fetch navigates to the URL, reveals lazy/truncated content, waits
	// for rendering to settle, and returns the rendered HTML.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	Close() error
}
