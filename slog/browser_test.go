package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/drivetext"
	"github.com/fwojciec/drivetext/mock"
	dtslog "github.com/fwojciec/drivetext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingLauncher_Launch(t *testing.T) {
	t.Parallel()

	t.Run("wraps launched browser", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Browser{
			NavigateFn: func(context.Context, string) error { return nil },
		}
		launcher := dtslog.NewLoggingLauncher(&mock.BrowserLauncher{
			LaunchFn: func(context.Context) (drivetext.Browser, error) { return inner, nil },
		}, debugLogger(&buf))

		b, err := launcher.Launch(context.Background())
		require.NoError(t, err)
		require.NoError(t, b.Navigate(context.Background(), "https://example.com/doc"))

		assert.IsType(t, &dtslog.LoggingBrowser{}, b)
		output := buf.String()
		assert.Contains(t, output, "launch browser")
		assert.Contains(t, output, "url=https://example.com/doc")
	})

	t.Run("logs launch error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		launcher := dtslog.NewLoggingLauncher(&mock.BrowserLauncher{
			LaunchFn: func(context.Context) (drivetext.Browser, error) {
				return nil, errors.New("chrome not found")
			},
		}, debugLogger(&buf))

		b, err := launcher.Launch(context.Background())

		require.Error(t, err)
		assert.Nil(t, b)
		assert.Contains(t, buf.String(), "err=\"chrome not found\"")
	})
}

func TestLoggingBrowser(t *testing.T) {
	t.Parallel()

	t.Run("logs find element result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		b := dtslog.NewLoggingBrowser(&mock.Browser{
			FindElementFn: func(context.Context, string, time.Duration) (drivetext.Element, bool, error) {
				return nil, false, nil
			},
		}, debugLogger(&buf))

		_, found, err := b.FindElement(context.Background(), "iframe", time.Second)

		require.NoError(t, err)
		assert.False(t, found)
		output := buf.String()
		assert.Contains(t, output, "find element")
		assert.Contains(t, output, "selector=iframe")
		assert.Contains(t, output, "found=false")
	})

	t.Run("logs body text size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		b := dtslog.NewLoggingBrowser(&mock.Browser{
			BodyTextFn: func(context.Context) (string, error) { return "hello", nil },
		}, debugLogger(&buf))

		text, err := b.BodyText(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "hello", text)
		assert.Contains(t, buf.String(), "bytes=5")
	})

	t.Run("delegates frame switching", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var switched drivetext.Element
		b := dtslog.NewLoggingBrowser(&mock.Browser{
			SwitchToFrameFn: func(_ context.Context, el drivetext.Element) error {
				switched = el
				return nil
			},
			SwitchToTopLevelFn: func(context.Context) error { return nil },
			SendAdvanceFn:      func(context.Context) error { return nil },
		}, debugLogger(&buf))
		el := &mock.Element{SelectorValue: "iframe.viewer"}

		require.NoError(t, b.SwitchToFrame(context.Background(), el))
		require.NoError(t, b.SendAdvance(context.Background()))
		require.NoError(t, b.SwitchToTopLevel(context.Background()))

		assert.Same(t, el, switched)
		output := buf.String()
		assert.Contains(t, output, "selector=iframe.viewer")
		assert.Contains(t, output, "advance")
		assert.Contains(t, output, "switch to top level")
	})

	t.Run("logs close error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		b := dtslog.NewLoggingBrowser(&mock.Browser{
			CloseFn: func() error { return errors.New("already gone") },
		}, debugLogger(&buf))

		err := b.Close()

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"already gone\"")
	})
}
