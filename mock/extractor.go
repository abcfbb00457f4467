package mock

import (
	"context"

	"github.com/fwojciec/drivetext"
)

var _ drivetext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of drivetext.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string, pages int, progress drivetext.ProgressFunc) (string, error)
}

func (e *Extractor) Extract(ctx context.Context, url string, pages int, progress drivetext.ProgressFunc) (string, error) {
	return e.ExtractFn(ctx, url, pages, progress)
}
