package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/drivetext"
)

// ContentExtractor reads the rendered document text from the top-level
// browsing context.
type ContentExtractor struct {
	Settler drivetext.Settler

	// Settle bounds the wait before the text is read.
	Settle time.Duration
}

// Extract switches back to the top-level context, waits for it to settle,
// and reads the body text once. An empty result is not an error here.
func (e *ContentExtractor) Extract(ctx context.Context, b drivetext.Browser) (string, error) {
	settler := e.Settler
	if settler == nil {
		settler = &FixedSettler{}
	}

	if err := b.SwitchToTopLevel(ctx); err != nil {
		return "", fmt.Errorf("switching to top-level document: %w", err)
	}
	if err := settler.Settle(ctx, b, e.Settle); err != nil {
		return "", fmt.Errorf("settling before read: %w", err)
	}

	return b.BodyText(ctx)
}
