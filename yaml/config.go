// Package yaml loads extraction rules from YAML files.
package yaml

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/drivetext"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable rules of an extraction run. Keys left out of the
// file keep their defaults; a list given in the file replaces the default
// list entirely.
type Config struct {
	Frames    []drivetext.MatchRule `yaml:"frames"`
	Sanitizer drivetext.Rules       `yaml:"sanitizer"`
}

// DefaultConfig returns the built-in rules.
func DefaultConfig() Config {
	return Config{
		Frames:    drivetext.DefaultMatchRules(),
		Sanitizer: drivetext.DefaultRules(),
	}
}

// Load reads and validates the rules file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, drivetext.Errorf(drivetext.ENOTFOUND, "rules file %q not found", path)
		}
		return Config{}, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes rules from r over the defaults and validates them.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, drivetext.Errorf(drivetext.EINVALID, "parsing rules: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks frame selectors and sanitizer thresholds.
func (c *Config) Validate() error {
	if len(c.Frames) == 0 {
		return drivetext.Errorf(drivetext.EINVALID, "at least one frame rule required")
	}
	for i, rule := range c.Frames {
		if rule.Selector == "" {
			return drivetext.Errorf(drivetext.EINVALID, "frame rule %d: selector required", i+1)
		}
		if _, err := cascadia.Compile(rule.Selector); err != nil {
			return drivetext.Errorf(drivetext.EINVALID, "frame rule %d: invalid selector %q: %v", i+1, rule.Selector, err)
		}
		if rule.Name == "" {
			c.Frames[i].Name = rule.Selector
		}
	}
	return c.Sanitizer.Validate()
}
