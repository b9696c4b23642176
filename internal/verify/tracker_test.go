package verify

import (
	"bytes"
	"strings"
	"testing"
)

func TestTrackerRendersPositionAndMessage(t *testing.T) {
	var out bytes.Buffer
	tr := NewTracker(&out, 4)
	tr.SetPosition(1)
	tr.SetMessage("(25.0 %)")
	got := out.String()
	if !strings.Contains(got, "1/4") {
		t.Fatalf("expected position 1/4, got %q", got)
	}
	if !strings.Contains(got, "(25.0 %)") {
		t.Fatalf("expected message, got %q", got)
	}
}

func TestTrackerIncrementAndFinish(t *testing.T) {
	var out bytes.Buffer
	tr := NewTracker(&out, 2)
	tr.SetPosition(0)
	tr.Increment()
	tr.Finish()
	got := out.String()
	if !strings.Contains(got, "2/2") {
		t.Fatalf("expected finish at 2/2, got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("expected trailing newline after finish")
	}
}

func TestTrackerZeroTotalDoesNotPanic(t *testing.T) {
	var out bytes.Buffer
	tr := NewTracker(&out, 0)
	tr.SetPosition(0)
	tr.Finish()
	if !strings.Contains(out.String(), "0/0") {
		t.Fatalf("expected 0/0 render, got %q", out.String())
	}
}
