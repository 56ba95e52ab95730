// Package vitae extracts structured professional-profile records from
// rendered profile pages. The extraction engine is a best-effort heuristic
// tuned to a known, evolving markup shape: it discovers sections by heading
// text, disambiguates visible vs accessibility-duplicate nodes, deduplicates
// repeated text, and assembles a typed Profile record suitable for rendering
// and export.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package vitae
