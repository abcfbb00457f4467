package rod

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/drivetext"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Launcher implements drivetext.BrowserLauncher at compile time.
var _ drivetext.BrowserLauncher = (*Launcher)(nil)

// Launcher starts Chrome sessions through rod's launcher, which finds a
// local Chrome or downloads one.
type Launcher struct {
	headless  bool
	noSandbox bool
	bin       string
	logger    *slog.Logger
}

// LauncherOption configures a Launcher.
type LauncherOption func(*Launcher)

// WithHeadless controls whether the browser window is hidden.
// Defaults to true.
func WithHeadless(headless bool) LauncherOption {
	return func(l *Launcher) {
		l.headless = headless
	}
}

// WithNoSandbox disables the Chrome sandbox, which is required in most
// containers.
func WithNoSandbox(noSandbox bool) LauncherOption {
	return func(l *Launcher) {
		l.noSandbox = noSandbox
	}
}

// WithBin sets the Chrome binary to launch instead of the auto-detected one.
func WithBin(path string) LauncherOption {
	return func(l *Launcher) {
		l.bin = path
	}
}

// WithLogger sets the logger for launched browsers.
func WithLogger(logger *slog.Logger) LauncherOption {
	return func(l *Launcher) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLauncher creates a new Launcher.
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{
		headless: true,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts Chrome, connects to it, and opens a blank tab.
// Close must be called on the returned Browser.
func (l *Launcher) Launch(ctx context.Context) (drivetext.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr := launcher.New().
		Set("disable-extensions").
		Set("disable-plugins").
		Set("disable-dev-shm-usage").
		Set("start-maximized").
		Set("window-size", "1920,1080").
		Leakless(true).
		Headless(l.headless).
		NoSandbox(l.noSandbox)
	if l.bin != "" {
		lnchr = lnchr.Bin(l.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("opening tab: %w", err)
	}

	return &Browser{
		browser:  browser,
		launcher: lnchr,
		page:     page,
		current:  page,
		logger:   l.logger,
	}, nil
}
