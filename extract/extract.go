package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/drivetext"
	"github.com/google/uuid"
)

// Ensure Extractor implements drivetext.Extractor at compile time.
var _ drivetext.Extractor = (*Extractor)(nil)

// DefaultPages is the number of advance signals sent when the caller has no
// better estimate of the document length.
const DefaultPages = 25

// State is a step of one extraction run.
type State string

// State constants.
const (
	StateInit           State = "init"
	StatePageLoaded     State = "page loaded"
	StateFrameSearch    State = "frame search"
	StateContentLoading State = "content loading"
	StateExtracted      State = "extracted"
	StateFailed         State = "failed"
)

// Extractor sequences one extraction run: load the page, find the viewer
// frame, scroll it, and read the text back from the top-level document.
// The browser is launched per run and closed exactly once on every path.
type Extractor struct {
	Launcher drivetext.BrowserLauncher

	// Rules for the viewer frame search. Defaults to drivetext.DefaultMatchRules.
	Rules []drivetext.MatchRule

	Timing drivetext.Timing

	// Settler used for every wait. Defaults to a StableSettler.
	Settler drivetext.Settler

	Logger *slog.Logger
}

// session is the transient state of one run.
type session struct {
	id       string
	state    State
	frame    drivetext.FrameStatus
	scrolled int
	logger   *slog.Logger
}

func (s *session) enter(state State) {
	s.logger.Debug("state", "from", s.state, "to", state)
	s.state = state
}

// Extract runs the viewer against url and returns the raw text.
func (x *Extractor) Extract(ctx context.Context, url string, pages int, progress drivetext.ProgressFunc) (raw string, err error) {
	if url == "" {
		return "", drivetext.Errorf(drivetext.EINVALID, "document URL required")
	}
	if pages <= 0 {
		return "", drivetext.Errorf(drivetext.EINVALID, "pages must be positive, got %d", pages)
	}

	s := &session{
		id:    uuid.NewString(),
		state: StateInit,
		frame: drivetext.FrameNotSearched,
	}
	s.logger = loggerOrDiscard(x.Logger).With("run", s.id)

	report := func(stage drivetext.Stage) {
		if progress != nil {
			progress(drivetext.Progress{Stage: stage})
		}
	}

	defer func() {
		if err != nil {
			failedAt := s.state
			s.enter(StateFailed)
			s.logger.Error("extraction failed",
				"state", failedAt,
				"frame", s.frame,
				"scrolled", s.scrolled,
				"err", err,
			)
		}
	}()

	s.logger.Info("starting extraction", "url", url, "pages", pages)

	report(drivetext.StageLaunching)
	b, err := x.Launcher.Launch(ctx)
	if err != nil {
		return "", fmt.Errorf("launching browser: %w", err)
	}
	defer func() {
		report(drivetext.StageDone)
		if cerr := b.Close(); cerr != nil {
			s.logger.Warn("closing browser", "err", cerr)
			return
		}
		s.logger.Info("browser closed")
	}()

	settler := x.settler(s.logger)

	report(drivetext.StageLoading)
	if err := b.Navigate(ctx, url); err != nil {
		return "", fmt.Errorf("navigating to document: %w", err)
	}
	if err := settler.Settle(ctx, b, x.Timing.PageLoad); err != nil {
		return "", fmt.Errorf("waiting for viewer to load: %w", err)
	}
	s.enter(StatePageLoaded)

	report(drivetext.StageSearching)
	s.enter(StateFrameSearch)
	locator := &FrameLocator{
		Rules:   x.Rules,
		Timeout: x.Timing.LocateTimeout,
		Logger:  s.logger,
	}
	frame, err := locator.Locate(ctx, b)
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		s.logger.Warn("frame search failed, using top-level document", "err", err)
		frame = drivetext.FrameResult{Status: drivetext.FrameNotFound}
	}
	s.frame = frame.Status

	if frame.Status == drivetext.FrameFound {
		s.enter(StateContentLoading)
		if err := x.loadFrame(ctx, b, frame, pages, progress, settler, s); err != nil {
			if ctx.Err() != nil {
				return "", err
			}
			s.logger.Warn("loading viewer content stopped early", "scrolled", s.scrolled, "pages", pages, "err", err)
		}
	} else {
		s.logger.Warn("viewer frame not found, extracting from top-level document")
	}

	report(drivetext.StageExtracting)
	content := &ContentExtractor{Settler: settler, Settle: x.Timing.ExtractSettle}
	raw, err = content.Extract(ctx, b)
	if err != nil {
		return "", fmt.Errorf("reading document text: %w", err)
	}
	s.enter(StateExtracted)

	if strings.TrimSpace(raw) == "" {
		return "", drivetext.Errorf(drivetext.ENOCONTENT, "no text retrieved from document")
	}

	s.logger.Info("extracted raw text",
		"chars", utf8.RuneCountInString(raw),
		"frame", s.frame,
		"scrolled", s.scrolled,
	)
	return raw, nil
}

// loadFrame enters the viewer frame and scrolls it.
func (x *Extractor) loadFrame(
	ctx context.Context,
	b drivetext.Browser,
	frame drivetext.FrameResult,
	pages int,
	progress drivetext.ProgressFunc,
	settler drivetext.Settler,
	s *session,
) error {
	if err := b.SwitchToFrame(ctx, frame.Element); err != nil {
		return fmt.Errorf("switching to viewer frame: %w", err)
	}
	s.logger.Info("switched to viewer frame", "rule", frame.Rule.Name)

	if err := settler.Settle(ctx, b, x.Timing.FrameSettle); err != nil {
		return fmt.Errorf("waiting for viewer frame: %w", err)
	}

	loader := &IncrementalLoader{
		Settler:  settler,
		Settle:   x.Timing.AdvanceSettle,
		Interval: x.Timing.AdvanceInterval,
		Logger:   s.logger,
	}
	n, err := loader.Load(ctx, b, pages, progress)
	s.scrolled = n
	return err
}

func (x *Extractor) settler(logger *slog.Logger) drivetext.Settler {
	if x.Settler != nil {
		return x.Settler
	}
	return &StableSettler{Logger: logger}
}
