package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/drivetext"
)

// Ensure LoggingSanitizer implements drivetext.Sanitizer.
var _ drivetext.Sanitizer = (*LoggingSanitizer)(nil)

// LoggingSanitizer wraps a Sanitizer and logs how much text it removed.
type LoggingSanitizer struct {
	next   drivetext.Sanitizer
	logger *slog.Logger
}

// NewLoggingSanitizer creates a new LoggingSanitizer.
func NewLoggingSanitizer(next drivetext.Sanitizer, logger *slog.Logger) *LoggingSanitizer {
	return &LoggingSanitizer{next: next, logger: logger}
}

// Sanitize delegates to the wrapped sanitizer.
func (s *LoggingSanitizer) Sanitize(raw string) (clean string) {
	defer func(begin time.Time) {
		s.logger.Info("sanitize",
			"chars_in", utf8.RuneCountInString(raw),
			"chars_out", utf8.RuneCountInString(clean),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Sanitize(raw)
}
