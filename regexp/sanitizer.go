// Package regexp implements the text sanitizer with RE2 regular expressions.
package regexp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/drivetext"
	"golang.org/x/text/unicode/norm"
)

// Ensure Sanitizer implements drivetext.Sanitizer at compile time.
var _ drivetext.Sanitizer = (*Sanitizer)(nil)

// blankRuns matches two or more consecutive blank lines.
var blankRuns = regexp.MustCompile(`\n\s*\n\s*\n`)

// Sanitizer classifies lines as content or noise, then strips structured
// fragments from the surviving text.
type Sanitizer struct {
	minLength int
	minSpaces int

	shapes       []*regexp.Regexp
	noise        *regexp.Regexp
	uiPhrases    *regexp.Regexp
	displayModes *regexp.Regexp
	fragments    []*regexp.Regexp
}

// NewSanitizer compiles rules into a Sanitizer.
// Returns EINVALID if a threshold is negative or a pattern does not compile.
func NewSanitizer(rules drivetext.Rules) (*Sanitizer, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	s := &Sanitizer{
		minLength: rules.MinLength,
		minSpaces: rules.MinSpaces,
	}

	var err error
	if s.shapes, err = compileEach(rules.Shapes, ""); err != nil {
		return nil, err
	}
	if s.noise, err = compileAny(rules.Noise, "(?i)"); err != nil {
		return nil, err
	}
	if s.uiPhrases, err = compileAny(rules.UIPhrases, ""); err != nil {
		return nil, err
	}
	if s.displayModes, err = compileAny(rules.DisplayModes, "(?i)"); err != nil {
		return nil, err
	}
	if s.fragments, err = compileEach(rules.Fragments, ""); err != nil {
		return nil, err
	}
	return s, nil
}

// NewDefaultSanitizer returns a Sanitizer built from drivetext.DefaultRules.
func NewDefaultSanitizer() *Sanitizer {
	s, err := NewSanitizer(drivetext.DefaultRules())
	if err != nil {
		panic(err)
	}
	return s
}

// Sanitize returns the content lines of raw with viewer noise removed.
// The cleaning pass is repeated until the text stops changing, so that
// removing a fragment can never leave behind a line the filter would reject
// on a later call.
func (s *Sanitizer) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	// After the first pass the text is normalized and every later pass can
	// only shorten it, so the loop ends.
	out := s.pass(raw)
	for {
		next := s.pass(out)
		if next == out || len(next) >= len(out) {
			return next
		}
		out = next
	}
}

// pass runs normalization, the line filter, and the fragment removals once.
func (s *Sanitizer) pass(text string) string {
	text = norm.NFKC.String(strings.ToValidUTF8(text, "\uFFFD"))

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")

		// Blank lines separate paragraphs and survive until runs are collapsed.
		if line == "" || s.keep(line) {
			kept = append(kept, line)
		}
	}

	out := strings.Join(kept, "\n")
	for _, re := range s.fragments {
		out = re.ReplaceAllLiteralString(out, "")
	}
	out = blankRuns.ReplaceAllLiteralString(out, "\n\n")

	return strings.TrimSpace(out)
}

// keep reports whether a whitespace-normalized, non-blank line is content.
func (s *Sanitizer) keep(line string) bool {
	if utf8.RuneCountInString(line) <= s.minLength {
		return false
	}
	if strings.Count(line, " ") < s.minSpaces {
		return false
	}
	for _, re := range s.shapes {
		if re.MatchString(line) {
			return false
		}
	}
	if matches(s.noise, line) || matches(s.uiPhrases, line) || matches(s.displayModes, line) {
		return false
	}
	return !isUpper(line)
}

func matches(re *regexp.Regexp, line string) bool {
	return re != nil && re.MatchString(line)
}

// isUpper reports whether s has at least one cased letter and no lowercase
// or titlecase letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// compileEach compiles every pattern separately, preserving order.
func compileEach(patterns []string, flags string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(flags + p)
		if err != nil {
			return nil, drivetext.Errorf(drivetext.EINVALID, "invalid pattern %q: %v", p, err)
		}
		res = append(res, re)
	}
	return res, nil
}

// compileAny compiles patterns into a single alternation.
// Returns nil when there are no patterns.
func compileAny(patterns []string, flags string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	alts := make([]string, len(patterns))
	for i, p := range patterns {
		if _, err := regexp.Compile(p); err != nil {
			return nil, drivetext.Errorf(drivetext.EINVALID, "invalid pattern %q: %v", p, err)
		}
		alts[i] = "(?:" + p + ")"
	}
	return regexp.MustCompile(flags + strings.Join(alts, "|")), nil
}
