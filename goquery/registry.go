package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// ApplyFunc writes one category's extraction result into the profile being
// assembled. A nil ApplyFunc means the category was absent.
type ApplyFunc func(*vitae.Profile)

// SectionExtractor produces entries for one profile category. Extractors
// are pure over the document: they read the snapshot, never mutate it, and
// have no data dependency on each other.
type SectionExtractor interface {
	// Category returns the category this extractor populates.
	Category() vitae.Category

	// Extract reads the document and returns an ApplyFunc carrying the
	// result, or nil when the category was not found.
	Extract(doc *goquery.Document) ApplyFunc
}

// Registry holds an ordered list of section extractors. Registration is
// explicit: registering a category twice replaces the earlier entry in
// place rather than silently shadowing it, and iteration order is the
// registration order.
type Registry struct {
	extractors []SectionExtractor
	index      map[vitae.Category]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[vitae.Category]int)}
}

// Register adds an extractor. An extractor already registered for the same
// category is replaced at its original position.
func (r *Registry) Register(e SectionExtractor) {
	if i, ok := r.index[e.Category()]; ok {
		r.extractors[i] = e
		return
	}
	r.index[e.Category()] = len(r.extractors)
	r.extractors = append(r.extractors, e)
}

// Extractors returns the registered extractors in registration order.
func (r *Registry) Extractors() []SectionExtractor {
	out := make([]SectionExtractor, len(r.extractors))
	copy(out, r.extractors)
	return out
}

// List returns all registered categories in registration order.
func (r *Registry) List() []vitae.Category {
	categories := make([]vitae.Category, 0, len(r.extractors))
	for _, e := range r.extractors {
		categories = append(categories, e.Category())
	}
	return categories
}
