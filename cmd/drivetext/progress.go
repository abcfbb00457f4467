package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fwojciec/drivetext"
)

// newProgress returns a progress callback rendering to w and a function
// that stops rendering. Terminals get a spinner when animate is set; other
// writers get one line per stage.
func newProgress(w io.Writer, animate bool) (drivetext.ProgressFunc, func()) {
	if f, ok := w.(*os.File); ok && animate {
		return spinnerProgress(f)
	}
	return lineProgress(w), func() {}
}

func spinnerProgress(f *os.File) (drivetext.ProgressFunc, func()) {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriterFile(f))

	progress := func(p drivetext.Progress) {
		if p.Stage == drivetext.StageDone {
			s.Stop()
			return
		}
		s.Lock()
		s.Suffix = " " + describe(p)
		s.Unlock()
		if !s.Active() {
			s.Start()
		}
	}
	return progress, s.Stop
}

func lineProgress(w io.Writer) drivetext.ProgressFunc {
	var last drivetext.Stage
	return func(p drivetext.Progress) {
		if p.Stage == last && p.Stage != drivetext.StageScrolling {
			return
		}
		last = p.Stage
		fmt.Fprintln(w, describe(p))
	}
}

// describe renders p as a short status line.
func describe(p drivetext.Progress) string {
	if p.Stage == drivetext.StageScrolling && p.Total > 0 {
		return fmt.Sprintf("%s %d/%d", p.Stage, p.Completed, p.Total)
	}
	return string(p.Stage)
}
