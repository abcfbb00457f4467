package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/drivetext"
	"github.com/fwojciec/drivetext/yaml"
)

// version is reported by --version.
const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Timing bounds the waits of an extraction run.
	Timing drivetext.Timing

	// Launcher replaces the browser backend selected by flags.
	// Set before calling Run() in tests.
	Launcher drivetext.BrowserLauncher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Timing: drivetext.DefaultTiming(),
	}
}

// Run executes the CLI with the given arguments. A returned error has
// already been reported on stderr.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorText(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Help and version request an exit; record it instead of exiting so that
	// nothing runs after them wherever they appear on the command line.
	var exited bool

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("drivetext"),
		kong.Description("Extract the text of a view-only document from its web viewer"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{"version": "drivetext version: " + version},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no document URL specified. Run 'drivetext --help' for usage")
	}

	if args[0] == "help" {
		args = []string{"--help"}
	}

	kongCtx, err := parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	cfg := yaml.DefaultConfig()
	if cli.Rules != "" {
		if cfg, err = yaml.Load(cli.Rules); err != nil {
			return err
		}
		logger.Info("loaded rules", "path", cli.Rules, "frames", len(cfg.Frames))
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Config:   cfg,
		Timing:   m.Timing,
		Launcher: m.Launcher,
		Animate:  !cli.Verbose,
	}

	return kongCtx.Run(deps)
}

// errorText returns the message of an application error and the full
// error chain otherwise.
func errorText(err error) string {
	var e *drivetext.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
