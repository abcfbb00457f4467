package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/drivetext"
	"github.com/fwojciec/drivetext/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config yaml.Config
	Timing drivetext.Timing

	// Launcher, when set, is used instead of the backend the flags select.
	Launcher drivetext.BrowserLauncher

	// Animate enables the progress spinner on terminals.
	Animate bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Print version and exit"`
	Verbose bool             `env:"DRIVETEXT_VERBOSE" help:"Log debug details to stderr"`
	Rules   string           `env:"DRIVETEXT_RULES" placeholder:"FILE" help:"YAML file overriding frame and sanitizer rules"`

	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract a document and save raw and clean text (default)"`
	Clean   CleanCmd   `cmd:"" help:"Re-clean a previously saved raw text file"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL         string `arg:"" help:"Document viewer URL, or a saved HTML file with --snapshot"`
	Pages       int    `short:"p" default:"25" env:"DRIVETEXT_PAGES" help:"Number of page advances to send to the viewer"`
	OutputRaw   string `short:"r" name:"output-raw" default:"materi_raw.txt" help:"Raw text output file"`
	OutputClean string `short:"o" name:"output-clean" default:"materi_clean.txt" help:"Clean text output file"`
	Settle      string `enum:"stable,fixed" default:"stable" help:"Wait strategy: stable polls until the text stops changing, fixed sleeps the full bound"`
	ShowBrowser bool   `help:"Show the browser window"`
	NoSandbox   bool   `env:"DRIVETEXT_NO_SANDBOX" help:"Disable the Chrome sandbox (needed in most containers)"`
	BrowserBin  string `env:"ROD_BROWSER_BIN" placeholder:"PATH" help:"Chrome binary to use instead of the detected one"`
	Snapshot    bool   `help:"Read a saved HTML page from disk instead of launching Chrome"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	RawFile     string `arg:"" help:"Raw text file to clean"`
	OutputClean string `short:"o" name:"output-clean" default:"materi_clean.txt" help:"Clean text output file"`
}
