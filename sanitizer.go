package drivetext

// Rules is the data driving the Sanitizer. Patterns use RE2 syntax.
type Rules struct {
	// MinLength is the character count a line must exceed to be kept.
	MinLength int `yaml:"min_length"`

	// MinSpaces is the number of spaces a kept line must contain.
	MinSpaces int `yaml:"min_spaces"`

	// Shapes are whole-line patterns, matched case-sensitively, that mark a
	// line as noise (lone words, acronym pairs, page indicators).
	Shapes []string `yaml:"shapes"`

	// Noise patterns are matched case-insensitively anywhere in a line:
	// tracking hosts, viewer config markers, script literals.
	Noise []string `yaml:"noise"`

	// UIPhrases are localized viewer action labels, matched case-sensitively.
	UIPhrases []string `yaml:"ui_phrases"`

	// DisplayModes are viewer display-mode labels, matched case-insensitively.
	DisplayModes []string `yaml:"display_modes"`

	// Fragments are removed from the filtered text in order. They match
	// case-sensitively unless the pattern carries its own (?i) flag.
	Fragments []string `yaml:"fragments"`
}

// DefaultRules returns the rules tuned against the Indonesian-locale Drive
// viewer.
func DefaultRules() Rules {
	return Rules{
		MinLength: 15,
		MinSpaces: 2,
		Shapes: []string{
			`^[A-Z][a-z]+$`,
			`^[A-Z]{2,}\s+[A-Z]{2,}$`,
			`^\d+\s+dari\s+\d+$`,
		},
		Noise: []string{
			`gstatic`,
			`google\.com`,
			`_DRIVE`,
			`og\.asy`,
			`_initStaticViewer`,
			`AA2YrT`,
			`CONFIG`,
			`\{.*?\}`,
			`= \[.*\]`,
		},
		UIPhrases: []string{
			`Pencetakan`,
			`Zoom`,
			`Sembunyikan`,
			`Tampilkan panel`,
			`Lihat Detail`,
			`Minta peninjauan`,
		},
		DisplayModes: []string{
			`Simple View`,
			`Fit to Width`,
			`Full Screen`,
			`Actual Size`,
		},
		Fragments: []string{
			`\{.*?"id".*?"mimeType".*?\}`,
			`(?i)\[.*\];Halaman \d+ dari \d+`,
			`(?i)= \[.*\];`,
			`(?i)[\p{L}\p{N}_]+\[.*?\]=.*?;`,
			`(?i)Sheet samping.*?Tutup`,
		},
	}
}

// Validate returns an error if the rules contain invalid thresholds.
func (r *Rules) Validate() error {
	if r.MinLength < 0 {
		return Errorf(EINVALID, "min length must not be negative")
	}
	if r.MinSpaces < 0 {
		return Errorf(EINVALID, "min spaces must not be negative")
	}
	return nil
}

// Sanitizer turns raw viewer text into clean document text.
// Sanitize is total and deterministic: it never fails, and cleaning an
// already cleaned text returns it unchanged.
type Sanitizer interface {
	Sanitize(raw string) string
}
