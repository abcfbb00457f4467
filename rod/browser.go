package rod

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/drivetext"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
)

// Ensure Browser implements drivetext.Browser at compile time.
var _ drivetext.Browser = (*Browser)(nil)

// bodyTextJS reads the same text a user sees, including hidden nodes, as
// Element.textContent does.
const bodyTextJS = `() => document.body ? document.body.textContent : ""`

// Browser is a single Chrome tab driven through the DevTools protocol.
// Browser is not safe for concurrent use.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher

	// page is the top-level tab; current is page or a frame inside it.
	page    *rod.Page
	current *rod.Page

	logger *slog.Logger
	closed atomic.Bool
}

// element wraps a rod element with the selector that found it.
type element struct {
	el       *rod.Element
	selector string
}

func (e *element) Selector() string {
	return e.selector
}

// Navigate loads url in the tab and waits for the load event.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	page := b.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// FindElement polls the current context for selector until timeout.
// A zero timeout checks once without waiting.
func (b *Browser) FindElement(ctx context.Context, selector string, timeout time.Duration) (drivetext.Element, bool, error) {
	if err := b.checkOpen(); err != nil {
		return nil, false, err
	}

	if timeout <= 0 {
		has, el, err := b.current.Context(ctx).Has(selector)
		if err != nil || !has {
			return nil, false, err
		}
		return &element{el: el, selector: selector}, true, nil
	}

	findCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	el, err := b.current.Context(findCtx).Element(selector)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	// Rebind to the caller's context so the handle outlives the search.
	return &element{el: el.Context(ctx), selector: selector}, true, nil
}

// SwitchToFrame addresses the document inside the iframe el.
func (b *Browser) SwitchToFrame(ctx context.Context, el drivetext.Element) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	e, ok := el.(*element)
	if !ok {
		return drivetext.Errorf(drivetext.EINVALID, "element %q does not belong to this browser", el.Selector())
	}

	frame, err := e.el.Context(ctx).Frame()
	if err != nil {
		return err
	}

	// Key events are delivered to the focused frame. A frame that refuses
	// focus is still entered, but advances then reach the top level only.
	if err := e.el.Context(ctx).Focus(); err != nil {
		b.logger.Debug("focusing frame", "selector", e.selector, "err", err)
	} else {
		b.logger.Debug("focused frame", "selector", e.selector)
	}

	b.current = frame
	return nil
}

// SwitchToTopLevel addresses the tab's top-level document.
func (b *Browser) SwitchToTopLevel(ctx context.Context) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.current = b.page
	return nil
}

// SendAdvance presses PageDown.
func (b *Browser) SendAdvance(ctx context.Context) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.page.Keyboard.Type(input.PageDown)
}

// BodyText returns document.body.textContent of the current context.
func (b *Browser) BodyText(ctx context.Context) (string, error) {
	if err := b.checkOpen(); err != nil {
		return "", err
	}

	res, err := b.current.Context(ctx).Eval(bodyTextJS)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// Close closes the browser and kills the launched process.
// Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	err := b.browser.Close()
	b.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	return b.launcher.PID()
}

func (b *Browser) checkOpen() error {
	if b.closed.Load() {
		return drivetext.Errorf(drivetext.EINVALID, "browser is closed")
	}
	return nil
}
