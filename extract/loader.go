package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/drivetext"
	"golang.org/x/time/rate"
)

// IncrementalLoader forces the viewer to render more of the document by
// sending a fixed number of advance signals.
//
// The loop is not content-aware: it never stops early at the end of the
// document, and a pages count that is too small truncates the text without
// any error.
type IncrementalLoader struct {
	Settler drivetext.Settler

	// Settle bounds the wait after each advance signal.
	Settle time.Duration

	// Interval is the minimum spacing between two advance signals.
	Interval time.Duration

	Logger *slog.Logger
}

// Load sends exactly pages advance signals to the current context, settling
// after each one and reporting progress. It returns the number of signals
// that were sent.
func (l *IncrementalLoader) Load(ctx context.Context, b drivetext.Browser, pages int, progress drivetext.ProgressFunc) (int, error) {
	logger := loggerOrDiscard(l.Logger)
	settler := l.Settler
	if settler == nil {
		settler = &FixedSettler{}
	}

	// Burst of 1: the first signal goes out immediately, later ones are
	// spaced by at least Interval.
	limiter := rate.NewLimiter(rate.Every(l.Interval), 1)

	logger.Info("scrolling viewer", "pages", pages)
	for i := 0; i < pages; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return i, err
		}
		if err := b.SendAdvance(ctx); err != nil {
			return i, fmt.Errorf("sending advance %d of %d: %w", i+1, pages, err)
		}
		if err := settler.Settle(ctx, b, l.Settle); err != nil {
			return i + 1, fmt.Errorf("settling after advance %d of %d: %w", i+1, pages, err)
		}

		logger.Debug("advanced", "completed", i+1, "total", pages)
		if progress != nil {
			progress(drivetext.Progress{
				Stage:     drivetext.StageScrolling,
				Completed: i + 1,
				Total:     pages,
			})
		}
	}

	return pages, nil
}
