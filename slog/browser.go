package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/drivetext"
)

// Ensure types implement the browser interfaces at compile time.
var (
	_ drivetext.BrowserLauncher = (*LoggingLauncher)(nil)
	_ drivetext.Browser         = (*LoggingBrowser)(nil)
)

// LoggingLauncher wraps a BrowserLauncher so every launched browser logs
// its operations.
type LoggingLauncher struct {
	next   drivetext.BrowserLauncher
	logger *slog.Logger
}

// NewLoggingLauncher creates a new LoggingLauncher.
func NewLoggingLauncher(next drivetext.BrowserLauncher, logger *slog.Logger) *LoggingLauncher {
	return &LoggingLauncher{next: next, logger: logger}
}

// Launch logs the launch and wraps the returned browser.
func (l *LoggingLauncher) Launch(ctx context.Context) (b drivetext.Browser, err error) {
	defer func(begin time.Time) {
		l.logger.Info("launch browser",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	b, err = l.next.Launch(ctx)
	if err != nil {
		return nil, err
	}
	return NewLoggingBrowser(b, l.logger), nil
}

// LoggingBrowser wraps a Browser with logging. Page-level operations log at
// info, per-element and per-signal operations at debug.
type LoggingBrowser struct {
	next   drivetext.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next drivetext.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

func (b *LoggingBrowser) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		b.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Navigate(ctx, url)
}

func (b *LoggingBrowser) FindElement(ctx context.Context, selector string, timeout time.Duration) (el drivetext.Element, found bool, err error) {
	defer func(begin time.Time) {
		b.logger.Debug("find element",
			"selector", selector,
			"timeout", timeout,
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.FindElement(ctx, selector, timeout)
}

func (b *LoggingBrowser) SwitchToFrame(ctx context.Context, el drivetext.Element) (err error) {
	defer func() {
		b.logger.Debug("switch to frame", "selector", el.Selector(), "err", err)
	}()
	return b.next.SwitchToFrame(ctx, el)
}

func (b *LoggingBrowser) SwitchToTopLevel(ctx context.Context) (err error) {
	defer func() {
		b.logger.Debug("switch to top level", "err", err)
	}()
	return b.next.SwitchToTopLevel(ctx)
}

func (b *LoggingBrowser) SendAdvance(ctx context.Context) (err error) {
	defer func() {
		b.logger.Debug("advance", "err", err)
	}()
	return b.next.SendAdvance(ctx)
}

// BodyText is sampled repeatedly while settling, so it logs at debug.
func (b *LoggingBrowser) BodyText(ctx context.Context) (text string, err error) {
	defer func(begin time.Time) {
		b.logger.Debug("body text",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.BodyText(ctx)
}

func (b *LoggingBrowser) Close() (err error) {
	defer func() {
		b.logger.Info("close browser", "err", err)
	}()
	return b.next.Close()
}
