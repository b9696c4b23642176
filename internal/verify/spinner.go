package verify

import (
	"fmt"
	"io"
	"time"

	"charm.land/bubbles/v2/spinner"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner animates a single-line status while a toolchain invocation is
// outstanding. The tick goroutine only redraws; it never touches runner
// state.
type Spinner struct {
	w    io.Writer
	msg  string
	stop chan struct{}
	done chan struct{}
}

func StartSpinner(w io.Writer, msg string) *Spinner {
	s := &Spinner{
		w:    w,
		msg:  msg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *Spinner) loop() {
	defer close(s.done)
	frames := spinner.MiniDot.Frames
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	i := 0
	fmt.Fprintf(s.w, "\r\x1b[2K%s %s", frames[0], s.msg)
	for {
		select {
		case <-s.stop:
			fmt.Fprintf(s.w, "\r\x1b[2K")
			return
		case <-ticker.C:
			i = (i + 1) % len(frames)
			fmt.Fprintf(s.w, "\r\x1b[2K%s %s", frames[i], s.msg)
		}
	}
}

// StopAndClear halts the animation and erases the status line.
func (s *Spinner) StopAndClear() {
	close(s.stop)
	<-s.done
}
