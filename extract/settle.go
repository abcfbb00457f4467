package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/drivetext"
)

// Ensure settlers implement drivetext.Settler at compile time.
var (
	_ drivetext.Settler = (*FixedSettler)(nil)
	_ drivetext.Settler = (*StableSettler)(nil)
)

// FixedSettler waits the full bound unconditionally.
type FixedSettler struct{}

// Settle sleeps for max or until ctx is done.
func (FixedSettler) Settle(ctx context.Context, _ drivetext.Browser, max time.Duration) error {
	if max <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(max):
		return nil
	}
}

// DefaultSettleDelays returns the polling backoff: 100ms doubling to 1.6s.
// The last delay repeats until the bound is reached.
func DefaultSettleDelays() []time.Duration {
	return []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
	}
}

// StableSettler polls the body text of the current context with backoff and
// returns as soon as two consecutive samples are identical and non-empty.
type StableSettler struct {
	// Delays between samples. Defaults to DefaultSettleDelays.
	Delays []time.Duration

	Logger *slog.Logger
}

// Settle returns when the text stops changing or max elapses, whichever is
// first. Reaching max is not an error.
func (s *StableSettler) Settle(ctx context.Context, b drivetext.Browser, max time.Duration) error {
	if max <= 0 {
		return ctx.Err()
	}
	logger := loggerOrDiscard(s.Logger)

	delays := s.Delays
	if len(delays) == 0 {
		delays = DefaultSettleDelays()
	}

	begin := time.Now()
	deadline := begin.Add(max)

	prev, err := s.sample(ctx, b)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			logger.Debug("settle bound reached", "bound", max, "samples", attempt+1)
			return nil
		}

		delay := delays[min(attempt, len(delays)-1)]
		if delay > remaining {
			delay = remaining
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		cur, err := s.sample(ctx, b)
		if err != nil {
			return err
		}
		if cur.size > 0 && cur == prev {
			logger.Debug("settled", "duration", time.Since(begin), "chars", cur.size)
			return nil
		}
		prev = cur
	}
}

// sample is a fingerprint of the text in the current context.
type sample struct {
	sum  uint64
	size int
}

func (s *StableSettler) sample(ctx context.Context, b drivetext.Browser) (sample, error) {
	text, err := b.BodyText(ctx)
	if err != nil {
		return sample{}, err
	}
	return sample{sum: xxhash.Sum64String(text), size: len(text)}, nil
}
