package mock

import (
	"context"
	"time"

	"github.com/fwojciec/drivetext"
)

// Compile-time interface verification.
var (
	_ drivetext.Browser         = (*Browser)(nil)
	_ drivetext.BrowserLauncher = (*BrowserLauncher)(nil)
	_ drivetext.Element         = (*Element)(nil)
	_ drivetext.Settler         = (*Settler)(nil)
)

// Browser is a mock implementation of drivetext.Browser.
type Browser struct {
	NavigateFn         func(ctx context.Context, url string) error
	FindElementFn      func(ctx context.Context, selector string, timeout time.Duration) (drivetext.Element, bool, error)
	SwitchToFrameFn    func(ctx context.Context, el drivetext.Element) error
	SwitchToTopLevelFn func(ctx context.Context) error
	SendAdvanceFn      func(ctx context.Context) error
	BodyTextFn         func(ctx context.Context) (string, error)
	CloseFn            func() error
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	return b.NavigateFn(ctx, url)
}

func (b *Browser) FindElement(ctx context.Context, selector string, timeout time.Duration) (drivetext.Element, bool, error) {
	return b.FindElementFn(ctx, selector, timeout)
}

func (b *Browser) SwitchToFrame(ctx context.Context, el drivetext.Element) error {
	return b.SwitchToFrameFn(ctx, el)
}

func (b *Browser) SwitchToTopLevel(ctx context.Context) error {
	return b.SwitchToTopLevelFn(ctx)
}

func (b *Browser) SendAdvance(ctx context.Context) error {
	return b.SendAdvanceFn(ctx)
}

func (b *Browser) BodyText(ctx context.Context) (string, error) {
	return b.BodyTextFn(ctx)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}

// BrowserLauncher is a mock implementation of drivetext.BrowserLauncher.
type BrowserLauncher struct {
	LaunchFn func(ctx context.Context) (drivetext.Browser, error)
}

func (l *BrowserLauncher) Launch(ctx context.Context) (drivetext.Browser, error) {
	return l.LaunchFn(ctx)
}

// Element is a mock implementation of drivetext.Element.
type Element struct {
	SelectorValue string
}

func (e *Element) Selector() string {
	return e.SelectorValue
}

// Settler is a mock implementation of drivetext.Settler.
type Settler struct {
	SettleFn func(ctx context.Context, b drivetext.Browser, max time.Duration) error
}

func (s *Settler) Settle(ctx context.Context, b drivetext.Browser, max time.Duration) error {
	return s.SettleFn(ctx, b, max)
}
