package mock

import "github.com/fwojciec/drivetext"

var _ drivetext.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of drivetext.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(raw string) string
}

func (s *Sanitizer) Sanitize(raw string) string {
	return s.SanitizeFn(raw)
}
