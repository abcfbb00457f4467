package drivetext

import (
	"context"
	"time"
)

// Element is an opaque handle to a DOM element owned by a Browser.
type Element interface {
	// Selector returns the CSS selector that located the element.
	Selector() string
}

// Browser is a remote-controlled browser session addressing one browsing
// context at a time: either the top-level document or an embedded frame.
// Every method blocks until the browser responds.
type Browser interface {
	// Navigate loads the URL in the top-level context.
	Navigate(ctx context.Context, url string) error

	// FindElement waits up to timeout for an element matching selector in the
	// current context. It returns found=false when the timeout elapses without
	// a match; a non-nil error is reserved for browser failures.
	FindElement(ctx context.Context, selector string, timeout time.Duration) (el Element, found bool, err error)

	// SwitchToFrame addresses subsequent calls to the document inside el.
	SwitchToFrame(ctx context.Context, el Element) error

	// SwitchToTopLevel addresses subsequent calls to the top-level document.
	SwitchToTopLevel(ctx context.Context) error

	// SendAdvance simulates one "next page" keystroke in the current context.
	SendAdvance(ctx context.Context) error

	// BodyText returns the rendered text content of the current context's
	// document body.
	BodyText(ctx context.Context) (string, error)

	// Close terminates the browser session.
	// Close is safe to call multiple times.
	Close() error
}

// BrowserLauncher starts browser sessions.
type BrowserLauncher interface {
	// Launch starts a new session. The caller owns the returned Browser and
	// must Close it.
	Launch(ctx context.Context) (Browser, error)
}

// Settler waits for the viewer to finish rendering between steps.
type Settler interface {
	// Settle blocks until the current context looks settled or max elapses.
	// Reaching max is not an error.
	Settle(ctx context.Context, b Browser, max time.Duration) error
}
