package extract_test

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/drivetext"
	"github.com/fwojciec/drivetext/mock"
)

// viewer is a scripted document viewer. The top-level body shows one more
// page for every advance signal received inside the viewer frame.
type viewer struct {
	pages []string

	// frameSelector is the only selector that finds an element.
	frameSelector string

	inFrame  bool
	advances int
	closes   int
	finds    []string
	switched int
}

func (v *viewer) browser() *mock.Browser {
	return &mock.Browser{
		NavigateFn: func(ctx context.Context, url string) error {
			return ctx.Err()
		},
		FindElementFn: func(_ context.Context, selector string, _ time.Duration) (drivetext.Element, bool, error) {
			v.finds = append(v.finds, selector)
			if v.frameSelector != "" && selector == v.frameSelector {
				return &mock.Element{SelectorValue: selector}, true, nil
			}
			return nil, false, nil
		},
		SwitchToFrameFn: func(_ context.Context, _ drivetext.Element) error {
			v.inFrame = true
			v.switched++
			return nil
		},
		SwitchToTopLevelFn: func(_ context.Context) error {
			v.inFrame = false
			return nil
		},
		SendAdvanceFn: func(_ context.Context) error {
			if v.inFrame {
				v.advances++
			}
			return nil
		},
		BodyTextFn: func(_ context.Context) (string, error) {
			n := min(v.advances+1, len(v.pages))
			return strings.Join(v.pages[:n], "\n"), nil
		},
		CloseFn: func() error {
			v.closes++
			return nil
		},
	}
}

func launcherFor(b drivetext.Browser) *mock.BrowserLauncher {
	return &mock.BrowserLauncher{
		LaunchFn: func(_ context.Context) (drivetext.Browser, error) {
			return b, nil
		},
	}
}

func noSettle() *mock.Settler {
	return &mock.Settler{
		SettleFn: func(ctx context.Context, _ drivetext.Browser, _ time.Duration) error {
			return ctx.Err()
		},
	}
}

func documentPages(n int) []string {
	pages := make([]string, n)
	for i := range pages {
		pages[i] = "Page " + string(rune('A'+i)) + " holds a sentence of document text."
	}
	return pages
}
