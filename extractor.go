package drivetext

import "context"

// Extractor retrieves the raw text of a document shown in the viewer.
type Extractor interface {
	// Extract loads url, scrolls the viewer pages times, and returns the
	// rendered text. Returns ENOCONTENT when no text could be read and
	// EINVALID when pages is not positive.
	Extract(ctx context.Context, url string, pages int, progress ProgressFunc) (string, error)
}
