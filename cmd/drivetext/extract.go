package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/drivetext"
	"github.com/fwojciec/drivetext/extract"
	"github.com/fwojciec/drivetext/fs"
	"github.com/fwojciec/drivetext/goquery"
	"github.com/fwojciec/drivetext/rod"
	dtslog "github.com/fwojciec/drivetext/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	sanitizer, err := newSanitizer(deps)
	if err != nil {
		return err
	}

	launcher := deps.Launcher
	if launcher == nil {
		launcher = c.launcher(deps)
	}

	pipeline := &extract.Pipeline{
		Extractor: &extract.Extractor{
			Launcher: dtslog.NewLoggingLauncher(launcher, deps.Logger),
			Rules:    deps.Config.Frames,
			Timing:   deps.Timing,
			Settler:  c.settler(deps),
			Logger:   deps.Logger,
		},
		Sanitizer: sanitizer,
		Store:     dtslog.NewLoggingStore(fs.NewStore("."), deps.Logger),
		RawName:   c.OutputRaw,
		CleanName: c.OutputClean,
		Logger:    deps.Logger,
	}

	progress, stop := newProgress(deps.Stderr, deps.Animate)
	res, err := pipeline.Run(deps.Ctx, c.URL, c.Pages, progress)
	stop()
	if err != nil {
		return err
	}

	if res.RawSaved {
		fmt.Fprintf(deps.Stdout, "Raw text:   %s (%d chars)\n", c.OutputRaw, utf8.RuneCountInString(res.Raw))
	} else {
		fmt.Fprintf(deps.Stderr, "warning: raw text could not be saved to %s\n", c.OutputRaw)
	}

	if res.CleanSaved {
		fmt.Fprintf(deps.Stdout, "Clean text: %s (%d chars)\n", c.OutputClean, utf8.RuneCountInString(res.Clean))
	} else if res.Clean == "" {
		fmt.Fprintln(deps.Stderr, "warning: cleaning removed all text; only the raw text is available")
	} else {
		fmt.Fprintf(deps.Stderr, "warning: clean text could not be saved to %s\n", c.OutputClean)
	}

	return nil
}

func (c *ExtractCmd) launcher(deps *Dependencies) drivetext.BrowserLauncher {
	if c.Snapshot {
		return goquery.NewLauncher()
	}
	return rod.NewLauncher(
		rod.WithHeadless(!c.ShowBrowser),
		rod.WithNoSandbox(c.NoSandbox),
		rod.WithBin(c.BrowserBin),
		rod.WithLogger(deps.Logger),
	)
}

func (c *ExtractCmd) settler(deps *Dependencies) drivetext.Settler {
	if c.Settle == "fixed" {
		return extract.FixedSettler{}
	}
	return &extract.StableSettler{Logger: deps.Logger}
}
