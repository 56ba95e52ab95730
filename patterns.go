package vitae

import "regexp"

// Category identifies one extractable profile section.
type Category string

// Extractable categories, in the order extractors run.
const (
	CategoryAbout          Category = "about"
	CategoryExperience     Category = "experience"
	CategoryEducation      Category = "education"
	CategoryCertifications Category = "certifications"
	CategorySkills         Category = "skills"
	CategoryLanguages      Category = "languages"
	CategoryHonors         Category = "honors"
	CategoryPublications   Category = "publications"
	CategoryInterests      Category = "interests"
)

// SectionPattern describes how a category's section is recognized. Heading
// patterns are the primary path; id and accessible-label fragments are the
// fallbacks used when no heading matches. The pattern set is data, not code,
// so new locales are additive.
type SectionPattern struct {
	Category Category

	// Heading matches the section's nearest h2/h3 text.
	Heading *regexp.Regexp

	// IDFragments match against element id attributes, lower-cased.
	IDFragments []string

	// LabelFragments match against aria-label attributes, lower-cased.
	LabelFragments []string
}

// SectionPatterns is the locale-tolerant pattern table, keyed by category.
var SectionPatterns = map[Category]SectionPattern{
	CategoryAbout: {
		Category:    CategoryAbout,
		Heading:     regexp.MustCompile(`(?i)about|acerca de`),
		IDFragments: []string{"about"},
	},
	CategoryExperience: {
		Category:       CategoryExperience,
		Heading:        regexp.MustCompile(`(?i)experience|experiencia`),
		IDFragments:    []string{"experience"},
		LabelFragments: []string{"experience"},
	},
	CategoryEducation: {
		Category:       CategoryEducation,
		Heading:        regexp.MustCompile(`(?i)education|educaci[oó]n`),
		IDFragments:    []string{"education"},
		LabelFragments: []string{"education"},
	},
	CategoryCertifications: {
		Category:       CategoryCertifications,
		Heading:        regexp.MustCompile(`(?i)licenses? *&* *certifications?|licencias|certificaciones`),
		IDFragments:    []string{"licenses", "certifications"},
		LabelFragments: []string{"certification"},
	},
	CategorySkills: {
		Category:       CategorySkills,
		Heading:        regexp.MustCompile(`(?i)skills|aptitudes`),
		IDFragments:    []string{"skills"},
		LabelFragments: []string{"skill"},
	},
	CategoryLanguages: {
		Category:       CategoryLanguages,
		Heading:        regexp.MustCompile(`(?i)languages|idiomas`),
		IDFragments:    []string{"languages"},
		LabelFragments: []string{"language"},
	},
	CategoryHonors: {
		Category:       CategoryHonors,
		Heading:        regexp.MustCompile(`(?i)honors|awards|logros|distinciones`),
		IDFragments:    []string{"honors", "awards"},
		LabelFragments: []string{"honor", "award"},
	},
	CategoryPublications: {
		Category:       CategoryPublications,
		Heading:        regexp.MustCompile(`(?i)publications|publicaciones`),
		IDFragments:    []string{"publications"},
		LabelFragments: []string{"publication"},
	},
	CategoryInterests: {
		Category:       CategoryInterests,
		Heading:        regexp.MustCompile(`(?i)interests|intereses`),
		IDFragments:    []string{"interests"},
		LabelFragments: []string{"interest"},
	},
}
