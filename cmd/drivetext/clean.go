package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/drivetext"
	"github.com/fwojciec/drivetext/extract"
	"github.com/fwojciec/drivetext/fs"
	"github.com/fwojciec/drivetext/regexp"
	dtslog "github.com/fwojciec/drivetext/slog"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.RawFile)
	if err != nil {
		return fmt.Errorf("reading raw text: %w", err)
	}

	sanitizer, err := newSanitizer(deps)
	if err != nil {
		return err
	}

	pipeline := &extract.Pipeline{
		Sanitizer: sanitizer,
		Store:     dtslog.NewLoggingStore(fs.NewStore("."), deps.Logger),
		CleanName: c.OutputClean,
		Logger:    deps.Logger,
	}

	clean, err := pipeline.Clean(deps.Ctx, string(raw))
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Clean text: %s (%d chars)\n", c.OutputClean, utf8.RuneCountInString(clean))
	return nil
}

// newSanitizer compiles the configured sanitizer rules.
func newSanitizer(deps *Dependencies) (drivetext.Sanitizer, error) {
	s, err := regexp.NewSanitizer(deps.Config.Sanitizer)
	if err != nil {
		return nil, err
	}
	return dtslog.NewLoggingSanitizer(s, deps.Logger), nil
}
