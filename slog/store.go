package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/drivetext"
)

// Ensure LoggingStore implements drivetext.TextStore.
var _ drivetext.TextStore = (*LoggingStore)(nil)

// LoggingStore wraps a TextStore with logging.
type LoggingStore struct {
	next   drivetext.TextStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next drivetext.TextStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save logs the artifact name and size and delegates to the wrapped store.
func (s *LoggingStore) Save(ctx context.Context, name, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save",
			"name", name,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, name, content)
}
