package vitae

import (
	"regexp"
	"strings"
	"unicode"
)

// The source markup renders the same content twice (once for screen readers,
// once visually) and appends truncation chrome ("…see more"). Every extractor
// routes its text through these helpers, so they must be idempotent: applying
// any of them twice is a no-op.

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of whitespace to a single space and
// trims both ends.
func NormalizeWhitespace(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

var truncationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\x{2026}?\s*see more`),
	regexp.MustCompile(`(?i)\x{2026}?\s*show more`),
	regexp.MustCompile(`(?i)\x{2026}?\s*show all`),
	regexp.MustCompile(`(?i)\x{2026}?\s*mostrar m[aá]s`),
	regexp.MustCompile(`(?i)\x{2026}?\s*ver m[aá]s`),
	regexp.MustCompile(`\s*\.\.\.\s*$`),
	regexp.MustCompile(`\s*\x{2026}\s*$`),
}

// StripTruncationArtifacts removes "see more"/"show more" style truncation
// chrome (English and Spanish variants, with or without a leading ellipsis)
// and a trailing bare ellipsis.
func StripTruncationArtifacts(s string) string {
	if s == "" {
		return ""
	}
	for _, re := range truncationRes {
		s = re.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// splitSentences splits on sentence boundaries: '.', '!' or '?' followed by
// whitespace, or a newline. The terminator stays with its fragment.
func splitSentences(s string) []string {
	var parts []string
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			parts = append(parts, b.String())
			b.Reset()
			continue
		}
		b.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			parts = append(parts, b.String())
			b.Reset()
		}
	}
	parts = append(parts, b.String())
	return parts
}

// collapseDoubledHalf collapses "TitleTitle" artifacts: when a fragment's
// length is even and it equals two identical back-to-back halves, one half
// is kept. Doubled phrases separated by a space ("Foo Bar Foo Bar") are
// intentionally not handled here; the sentence-level dedup catches those.
func collapseDoubledHalf(s string) string {
	if n := len(s); n > 0 && n%2 == 0 {
		half := s[:n/2]
		if half != "" && s == half+half {
			return half
		}
	}
	return s
}

// DedupeSentences splits s on sentence boundaries, collapses doubled-half
// fragments, drops fragments whose case-insensitive form was already kept
// (preserving first-seen order), and rejoins with single spaces.
func DedupeSentences(s string) string {
	if s == "" {
		return ""
	}
	seen := make(map[string]struct{})
	var out []string
	for _, part := range splitSentences(s) {
		v := collapseDoubledHalf(NormalizeWhitespace(part))
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return strings.Join(out, " ")
}

// DedupeText is the lighter dedup tier used on titles and bullet lines:
// it collapses doubled-half fragments and drops only consecutive repeats,
// leaving non-adjacent legitimate repetition alone.
func DedupeText(s string) string {
	if s == "" {
		return ""
	}
	var out []string
	last := ""
	for _, part := range splitSentences(s) {
		v := collapseDoubledHalf(NormalizeWhitespace(part))
		if v == "" || v == last {
			continue
		}
		out = append(out, v)
		last = v
	}
	return strings.Join(out, " ")
}

// UniqueCaseInsensitive returns items in original order, keeping only the
// first occurrence per case-insensitive, whitespace-normalized key. Blank
// items are dropped.
func UniqueCaseInsensitive(items []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range items {
		t := NormalizeWhitespace(v)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Capitalize upper-cases the first rune of s. Used for display consistency
// after lower-casing pill text.
func Capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
