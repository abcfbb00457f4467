package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/drivetext/mock"
	dtslog "github.com/fwojciec/drivetext/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Sanitizer{
		SanitizeFn: func(raw string) string { return "kept" },
	}

	s := dtslog.NewLoggingSanitizer(inner, logger)
	clean := s.Sanitize("kept and dropped")

	assert.Equal(t, "kept", clean)
	output := buf.String()
	assert.Contains(t, output, "sanitize")
	assert.Contains(t, output, "chars_in=16")
	assert.Contains(t, output, "chars_out=4")
}
