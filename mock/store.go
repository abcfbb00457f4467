package mock

import (
	"context"

	"github.com/fwojciec/drivetext"
)

var _ drivetext.TextStore = (*TextStore)(nil)

// TextStore is a mock implementation of drivetext.TextStore.
type TextStore struct {
	SaveFn func(ctx context.Context, name, content string) error
}

func (s *TextStore) Save(ctx context.Context, name, content string) error {
	return s.SaveFn(ctx, name, content)
}
