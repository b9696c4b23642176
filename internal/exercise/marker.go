package exercise

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NotDoneMarker is the sentinel a learner removes to acknowledge an
// exercise as complete. Verification halts while it is still present.
const NotDoneMarker = "I AM NOT DONE"

const contextWindow = 2

// FileInspector reads exercise sources from the filesystem, resolving
// relative paths against Root.
type FileInspector struct {
	Root string
}

func NewInspector(root string) *FileInspector {
	return &FileInspector{Root: root}
}

// State scans the exercise source for the not-done marker. When the marker
// is present it returns the surrounding context lines, with the marker line
// flagged important.
func (i *FileInspector) State(ex Exercise) (State, error) {
	path := ex.Path
	if i.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(i.Root, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("inspect %s: %w", ex.Name, err)
	}
	defer f.Close()

	lines := []string{}
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return State{}, fmt.Errorf("inspect %s: %w", ex.Name, err)
	}

	marked := -1
	for idx, line := range lines {
		if strings.Contains(line, NotDoneMarker) {
			marked = idx
			break
		}
	}
	if marked < 0 {
		return State{Done: true}, nil
	}

	lo := marked - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := marked + contextWindow
	if hi > len(lines)-1 {
		hi = len(lines) - 1
	}
	context := make([]ContextLine, 0, hi-lo+1)
	for idx := lo; idx <= hi; idx++ {
		context = append(context, ContextLine{
			Number:    idx + 1,
			Text:      lines[idx],
			Important: idx == marked,
		})
	}
	return State{Done: false, Context: context}, nil
}
