package verify

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"
)

const trackerWidth = 60

// Tracker renders the batch progress bar. Purely presentational; the
// runner owns position and message updates.
type Tracker struct {
	w     io.Writer
	bar   progress.Model
	pos   int
	total int
	msg   string
}

func NewTracker(w io.Writer, total int) *Tracker {
	bar := progress.New(
		progress.WithWidth(trackerWidth),
		progress.WithColors(lipgloss.Color("#67F0A8"), lipgloss.Color("#FF6F91"), lipgloss.Color("#FFC857")),
	)
	return &Tracker{w: w, bar: bar, total: total}
}

func (t *Tracker) SetPosition(n int) {
	t.pos = n
	t.render()
}

func (t *Tracker) Increment() {
	t.pos++
	t.render()
}

func (t *Tracker) SetMessage(msg string) {
	t.msg = msg
	t.render()
}

func (t *Tracker) Finish() {
	t.pos = t.total
	t.render()
	fmt.Fprintln(t.w)
}

func (t *Tracker) render() {
	percent := 1.0
	if t.total > 0 {
		percent = float64(t.pos) / float64(t.total)
	}
	fmt.Fprintf(t.w, "\r\x1b[2KProgress: %s %d/%d %s",
		t.bar.ViewAs(percent), t.pos, t.total, t.msg)
}
