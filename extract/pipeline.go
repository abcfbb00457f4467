package extract

import (
	"context"
	"log/slog"

	"github.com/fwojciec/drivetext"
)

// Result describes what a pipeline run produced.
type Result struct {
	Raw   string
	Clean string

	RawSaved   bool
	CleanSaved bool
}

// Degraded reports whether only the raw artifact is usable.
func (r *Result) Degraded() bool {
	return !r.CleanSaved
}

// Pipeline extracts a document, cleans the text, and persists both
// artifacts. Persistence is best effort: a failed save is logged and the
// run continues with whatever could be written.
type Pipeline struct {
	Extractor drivetext.Extractor
	Sanitizer drivetext.Sanitizer
	Store     drivetext.TextStore

	// RawName and CleanName are the artifact names passed to Store.
	RawName   string
	CleanName string

	Logger *slog.Logger
}

// Run extracts url and persists the raw and cleaned text.
// Returns an error when extraction fails or when no artifact could be saved.
func (p *Pipeline) Run(ctx context.Context, url string, pages int, progress drivetext.ProgressFunc) (*Result, error) {
	logger := loggerOrDiscard(p.Logger)

	raw, err := p.Extractor.Extract(ctx, url, pages, progress)
	if err != nil {
		return nil, err
	}

	res := &Result{Raw: raw}
	res.RawSaved = p.save(ctx, logger, p.RawName, raw)

	res.Clean = p.Sanitizer.Sanitize(raw)
	if res.Clean == "" {
		logger.Warn("cleaning produced empty text, only the raw artifact is usable", "raw", p.RawName)
	} else {
		res.CleanSaved = p.save(ctx, logger, p.CleanName, res.Clean)
	}

	if !res.RawSaved && !res.CleanSaved {
		return res, drivetext.Errorf(drivetext.EINTERNAL, "no artifact could be saved")
	}
	return res, nil
}

// Clean sanitizes previously saved raw text and persists the result.
// Returns ENOCONTENT when cleaning leaves nothing to save.
func (p *Pipeline) Clean(ctx context.Context, raw string) (string, error) {
	clean := p.Sanitizer.Sanitize(raw)
	if clean == "" {
		return "", drivetext.Errorf(drivetext.ENOCONTENT, "cleaning produced empty text")
	}
	if err := p.Store.Save(ctx, p.CleanName, clean); err != nil {
		return clean, err
	}
	return clean, nil
}

func (p *Pipeline) save(ctx context.Context, logger *slog.Logger, name, content string) bool {
	if err := p.Store.Save(ctx, name, content); err != nil {
		logger.Error("saving artifact", "name", name, "err", err)
		return false
	}
	return true
}
