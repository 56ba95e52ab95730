package goquery

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements vitae.ProfileExtractor at compile time.
var _ vitae.ProfileExtractor = (*Extractor)(nil)

// Default profile host configuration. The contact extractor excludes links
// on these domains, and slug resolution expects the profile-path shape.
const (
	DefaultHostDomain      = "linkedin.com"
	DefaultShortLinkDomain = "lnkd.in"
)

var defaultProfilePathRe = regexp.MustCompile(`(?i)/in/([^/?#]+)`)

// Extractor runs one extraction pass over a rendered page snapshot and
// assembles a Profile. It is stateless across calls: every invocation
// re-derives everything from the snapshot it is given.
type Extractor struct {
	// HostDomain is the profile host's own domain; links resolving to it
	// are excluded from contact websites.
	HostDomain string

	// ShortLinkDomain is the host's URL shortener, treated as internal.
	ShortLinkDomain string

	locator       *Locator
	registry      *Registry
	profilePathRe *regexp.Regexp
	now           func() time.Time
}

// NewExtractor creates an Extractor with the default host configuration and
// all nine category extractors registered in render order.
func NewExtractor() *Extractor {
	locator := NewLocator()
	registry := NewRegistry()
	registry.Register(NewAboutExtractor(locator))
	registry.Register(NewExperienceExtractor(locator))
	registry.Register(NewEducationExtractor(locator))
	registry.Register(NewCertificationsExtractor(locator))
	registry.Register(NewSkillsExtractor(locator))
	registry.Register(NewLanguagesExtractor(locator))
	registry.Register(NewHonorsExtractor(locator))
	registry.Register(NewPublicationsExtractor(locator))
	registry.Register(NewInterestsExtractor(locator))

	return &Extractor{
		HostDomain:      DefaultHostDomain,
		ShortLinkDomain: DefaultShortLinkDomain,
		locator:         locator,
		registry:        registry,
		profilePathRe:   defaultProfilePathRe,
		now:             time.Now,
	}
}

// Registry returns the extractor's category registry.
func (e *Extractor) Registry() *Registry {
	return e.registry
}

// Extract runs the full pass: header (DOM primary, structured-data
// fallback), slug and public-profile URL, contact, then the registered
// category extractors. Category extractors run concurrently but their
// results are applied in registration order, so output is deterministic.
//
// Extract never fails hard: an unexpected panic during the pass yields a
// minimal record carrying just the placeholder name, so a downstream
// consumer never receives a broken shape.
func (e *Extractor) Extract(ctx context.Context, html string, pageURL string) (profile *vitae.Profile, err error) {
	defer func() {
		if r := recover(); r != nil {
			profile = &vitae.Profile{Name: vitae.PlaceholderName}
			err = nil
		}
	}()

	doc, parseErr := goquery.NewDocumentFromReader(strings.NewReader(html))
	if parseErr != nil {
		return &vitae.Profile{Name: vitae.PlaceholderName}, nil
	}

	hero := extractHeader(doc)
	person := extractEmbeddedPerson(doc)

	profile = &vitae.Profile{
		Name:         firstNonBlank(hero.Name, person.Name, vitae.PlaceholderName),
		Headline:     firstNonBlank(hero.Headline, person.Headline),
		Location:     firstNonBlank(hero.Location, cleanLocation(person.Location)),
		ProfileImage: hero.ProfileImage,
		Slug:         e.resolveSlug(doc, pageURL),
	}

	contact := extractContact(doc, e.HostDomain, e.ShortLinkDomain)
	contact.PublicProfileURL = e.resolvePublicProfileURL(doc, pageURL)
	profile.Contact = contact

	extractors := e.registry.Extractors()
	applies := make([]ApplyFunc, len(extractors))
	panics := make([]any, len(extractors))
	g, _ := errgroup.WithContext(ctx)
	for i, ext := range extractors {
		g.Go(func() error {
			// The group does not recover panics, so a panicking extractor
			// would crash the process instead of reaching the recover above.
			// Capture it here and re-raise on the calling goroutine.
			defer func() { panics[i] = recover() }()
			applies[i] = ext.Extract(doc)
			return nil
		})
	}
	// Extractors only read the document and never return errors.
	_ = g.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}

	for _, apply := range applies {
		if apply != nil {
			apply(profile)
		}
	}

	profile.LastUpdated = e.now().UTC().Format(time.RFC3339)
	return profile, nil
}

// firstNonBlank returns the first value that normalizes to a non-empty
// string, normalized. This is the single point where "found but blank" is
// coerced into absence.
func firstNonBlank(values ...string) string {
	for _, v := range values {
		if t := vitae.NormalizeWhitespace(v); t != "" {
			return t
		}
	}
	return ""
}
