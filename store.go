package drivetext

import "context"

// TextStore persists text artifacts as UTF-8 files.
type TextStore interface {
	// Save writes content under name, replacing any previous artifact.
	Save(ctx context.Context, name, content string) error
}
