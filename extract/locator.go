// Package extract drives a Browser through a view-only document viewer and
// recovers the rendered text.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/drivetext"
)

// FrameLocator finds the element hosting the document viewer by trying an
// ordered list of match rules until one matches.
type FrameLocator struct {
	// Rules are tried in order. Defaults to drivetext.DefaultMatchRules.
	Rules []drivetext.MatchRule

	// Timeout is how long each rule may wait for a match.
	Timeout time.Duration

	Logger *slog.Logger
}

// Locate tries each rule in turn and returns the first match. A rule that
// times out is logged and skipped; when every rule times out the result has
// status FrameNotFound and a nil error. An error is returned only when the
// browser itself fails.
func (l *FrameLocator) Locate(ctx context.Context, b drivetext.Browser) (drivetext.FrameResult, error) {
	logger := loggerOrDiscard(l.Logger)

	rules := l.Rules
	if rules == nil {
		rules = drivetext.DefaultMatchRules()
	}

	for _, rule := range rules {
		el, found, err := b.FindElement(ctx, rule.Selector, l.Timeout)
		if err != nil {
			return drivetext.FrameResult{Status: drivetext.FrameNotSearched}, fmt.Errorf("locating frame with rule %q: %w", rule.Name, err)
		}
		if found {
			logger.Info("viewer frame found", "rule", rule.Name, "selector", rule.Selector)
			return drivetext.FrameResult{
				Status:  drivetext.FrameFound,
				Element: el,
				Rule:    rule,
			}, nil
		}
		logger.Info("frame rule did not match, trying next",
			"rule", rule.Name,
			"selector", rule.Selector,
			"timeout", l.Timeout,
		)
	}

	return drivetext.FrameResult{Status: drivetext.FrameNotFound}, nil
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
