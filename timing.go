package drivetext

import "time"

// Timing bounds every wait performed during one extraction run.
type Timing struct {
	// LocateTimeout is how long each frame match rule may wait.
	LocateTimeout time.Duration

	// PageLoad bounds the wait after navigation for the viewer to bootstrap.
	PageLoad time.Duration

	// FrameSettle bounds the wait after entering the viewer frame.
	FrameSettle time.Duration

	// AdvanceSettle bounds the wait after each advance signal.
	AdvanceSettle time.Duration

	// ExtractSettle bounds the wait before reading the document text.
	ExtractSettle time.Duration

	// AdvanceInterval is the minimum spacing between two advance signals.
	AdvanceInterval time.Duration
}

// DefaultTiming returns the timings tuned against the Drive viewer.
func DefaultTiming() Timing {
	return Timing{
		LocateTimeout:   20 * time.Second,
		PageLoad:        10 * time.Second,
		FrameSettle:     8 * time.Second,
		AdvanceSettle:   1500 * time.Millisecond,
		ExtractSettle:   5 * time.Second,
		AdvanceInterval: 250 * time.Millisecond,
	}
}
