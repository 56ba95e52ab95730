package vitae

// Settings selects which sections of a Profile the renderers include.
// Persisted by the caller (YAML config file in the CLI); the core never
// reads or writes it during extraction.
type Settings struct {
	ProfileHeader  bool `yaml:"profileHeader" json:"profileHeader"`
	Contact        bool `yaml:"contact" json:"contact"`
	WithPhoto      bool `yaml:"withPhoto" json:"withPhoto"`
	About          bool `yaml:"about" json:"about"`
	Experience     bool `yaml:"experience" json:"experience"`
	Education      bool `yaml:"education" json:"education"`
	Certifications bool `yaml:"certifications" json:"certifications"`
	Skills         bool `yaml:"skills" json:"skills"`
	Languages      bool `yaml:"languages" json:"languages"`
	Honors         bool `yaml:"honors" json:"honors"`
	Publications   bool `yaml:"publications" json:"publications"`
	Interests      bool `yaml:"interests" json:"interests"`
}

// DefaultSettings returns the default render settings: everything on.
func DefaultSettings() Settings {
	return Settings{
		ProfileHeader:  true,
		Contact:        true,
		WithPhoto:      true,
		About:          true,
		Experience:     true,
		Education:      true,
		Certifications: true,
		Skills:         true,
		Languages:      true,
		Honors:         true,
		Publications:   true,
		Interests:      true,
	}
}
