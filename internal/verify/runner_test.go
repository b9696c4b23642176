package verify

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gokata/internal/exercise"
)

type scriptedToolchain struct {
	calls   []string
	success map[string]bool
	stdout  map[string]string
	stderr  map[string]string
}

func (s *scriptedToolchain) Run(_ context.Context, ex exercise.Exercise) (exercise.RunResult, error) {
	s.calls = append(s.calls, ex.Name)
	return exercise.RunResult{
		ExitSuccess: s.success[ex.Name],
		Stdout:      []byte(s.stdout[ex.Name]),
		Stderr:      []byte(s.stderr[ex.Name]),
	}, nil
}

type mapInspector struct {
	done    map[string]bool
	context []exercise.ContextLine
}

func (m *mapInspector) State(ex exercise.Exercise) (exercise.State, error) {
	if m.done[ex.Name] {
		return exercise.State{Done: true}, nil
	}
	return exercise.State{Done: false, Context: m.context}, nil
}

func ex(name string, mode exercise.Mode) exercise.Exercise {
	return exercise.Exercise{Name: name, Path: "exercises/" + name + ".go", Mode: mode, Hint: "try harder"}
}

func TestVerifyZeroTotalIsAllDoneWithoutInvocations(t *testing.T) {
	tc := &scriptedToolchain{success: map[string]bool{}}
	var out bytes.Buffer
	r := NewRunner(tc, &mapInspector{done: map[string]bool{}}, &out, false)

	outcome, err := r.Verify(context.Background(), nil, 0, 0, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := outcome.(AllDone); !ok {
		t.Fatalf("expected AllDone, got %#v", outcome)
	}
	if len(tc.calls) != 0 {
		t.Fatalf("expected no toolchain calls, got %v", tc.calls)
	}
	if !strings.Contains(out.String(), "You completed all exercises!") {
		t.Fatalf("expected completion banner, got %q", out.String())
	}
}

func TestVerifyEmptyPendingIsAllDoneWithoutInvocations(t *testing.T) {
	tc := &scriptedToolchain{success: map[string]bool{}}
	var out bytes.Buffer
	r := NewRunner(tc, &mapInspector{done: map[string]bool{}}, &out, false)

	outcome, err := r.Verify(context.Background(), nil, 3, 3, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := outcome.(AllDone); !ok {
		t.Fatalf("expected AllDone, got %#v", outcome)
	}
	if len(tc.calls) != 0 {
		t.Fatalf("expected no toolchain calls, got %v", tc.calls)
	}
}

func TestVerifyHaltsAtFirstFailureAndSkipsRest(t *testing.T) {
	tc := &scriptedToolchain{
		success: map[string]bool{"a": true, "b": false, "c": true},
		stderr:  map[string]string{"b": "compile error: undefined x\n"},
	}
	insp := &mapInspector{done: map[string]bool{"a": true}}
	var out bytes.Buffer
	r := NewRunner(tc, insp, &out, false)

	pending := []exercise.Exercise{ex("a", exercise.ModeCompile), ex("b", exercise.ModeCompile), ex("c", exercise.ModeCompile)}
	outcome, err := r.Verify(context.Background(), pending, 0, 3, Options{})
	if err != nil {
		t.Fatal(err)
	}
	failed, ok := outcome.(Failed)
	if !ok {
		t.Fatalf("expected Failed, got %#v", outcome)
	}
	if failed.Exercise.Name != "b" {
		t.Fatalf("expected failure at b, got %s", failed.Exercise.Name)
	}
	if len(tc.calls) != 2 {
		t.Fatalf("expected exactly 2 invocations, got %v", tc.calls)
	}
	if !strings.Contains(out.String(), "compile error: undefined x") {
		t.Fatalf("expected captured stderr in output")
	}
}

func TestVerifyHaltsOnLingeringMarker(t *testing.T) {
	tc := &scriptedToolchain{success: map[string]bool{"a": true}}
	insp := &mapInspector{
		done: map[string]bool{},
		context: []exercise.ContextLine{
			{Number: 2, Text: "// I AM NOT DONE", Important: true},
			{Number: 3, Text: "func main() {"},
		},
	}
	var out bytes.Buffer
	r := NewRunner(tc, insp, &out, false)

	outcome, err := r.Verify(context.Background(), []exercise.Exercise{ex("a", exercise.ModeCompile)}, 0, 1, Options{})
	if err != nil {
		t.Fatal(err)
	}
	failed, ok := outcome.(Failed)
	if !ok || failed.Exercise.Name != "a" {
		t.Fatalf("expected Failed(a), got %#v", outcome)
	}
	got := out.String()
	if !strings.Contains(got, "The code is compiling!") {
		t.Fatalf("expected success banner before halt, got %q", got)
	}
	if !strings.Contains(got, "I AM NOT DONE") {
		t.Fatalf("expected context lines in output")
	}
}

func TestVerifyAdvancesPastAcknowledgedExercise(t *testing.T) {
	tc := &scriptedToolchain{
		success: map[string]bool{"a": true, "b": false},
		stderr:  map[string]string{"b": "boom\n"},
	}
	insp := &mapInspector{done: map[string]bool{"a": true}}
	var out bytes.Buffer
	r := NewRunner(tc, insp, &out, false)

	pending := []exercise.Exercise{ex("a", exercise.ModeTest), ex("b", exercise.ModeTest)}
	outcome, err := r.Verify(context.Background(), pending, 0, 2, Options{})
	if err != nil {
		t.Fatal(err)
	}
	failed, ok := outcome.(Failed)
	if !ok || failed.Exercise.Name != "b" {
		t.Fatalf("expected Failed(b), got %#v", outcome)
	}
	if len(tc.calls) != 2 || tc.calls[0] != "a" || tc.calls[1] != "b" {
		t.Fatalf("expected catalog-order calls a,b got %v", tc.calls)
	}
	if !strings.Contains(out.String(), "(50.0 %)") {
		t.Fatalf("expected 50%% progress label after first success, got %q", out.String())
	}
}

func TestVerifyAllPendingPass(t *testing.T) {
	tc := &scriptedToolchain{success: map[string]bool{"a": true, "b": true}}
	insp := &mapInspector{done: map[string]bool{"a": true, "b": true}}
	var out bytes.Buffer
	r := NewRunner(tc, insp, &out, false)

	pending := []exercise.Exercise{ex("a", exercise.ModeLint), ex("b", exercise.ModeCompile)}
	outcome, err := r.Verify(context.Background(), pending, 1, 3, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := outcome.(AllDone); !ok {
		t.Fatalf("expected AllDone, got %#v", outcome)
	}
	got := out.String()
	if !strings.Contains(got, "(100.0 %)") {
		t.Fatalf("expected final percentage, got %q", got)
	}
	if !strings.Contains(got, "You completed all exercises!") {
		t.Fatalf("expected completion banner")
	}
}

func TestVerifyVerboseEchoesTestOutput(t *testing.T) {
	tc := &scriptedToolchain{
		success: map[string]bool{"a": true},
		stdout:  map[string]string{"a": "ok  \tgokata/exercises\t0.01s\n"},
	}
	insp := &mapInspector{done: map[string]bool{"a": true}}
	var out bytes.Buffer
	r := NewRunner(tc, insp, &out, false)

	if _, err := r.Verify(context.Background(), []exercise.Exercise{ex("a", exercise.ModeTest)}, 0, 1, Options{Verbose: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "ok  \tgokata/exercises") {
		t.Fatalf("expected verbose test output, got %q", out.String())
	}
}

func TestVerifyShowsHintOnLingeringMarker(t *testing.T) {
	tc := &scriptedToolchain{success: map[string]bool{"a": true}}
	insp := &mapInspector{done: map[string]bool{}, context: []exercise.ContextLine{{Number: 1, Text: "// I AM NOT DONE", Important: true}}}
	var out bytes.Buffer
	r := NewRunner(tc, insp, &out, false)

	if _, err := r.Verify(context.Background(), []exercise.Exercise{ex("a", exercise.ModeCompile)}, 0, 1, Options{ShowHints: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Hints:") {
		t.Fatalf("expected hint block, got %q", out.String())
	}
}

func TestBannersEmojiToggleProducesDistinctLiterals(t *testing.T) {
	var plain, emoji bytes.Buffer
	NewBanners(&plain, false).Success(exercise.ModeTest)
	NewBanners(&emoji, true).Success(exercise.ModeTest)

	if plain.String() == emoji.String() {
		t.Fatalf("expected distinct banner renderings")
	}
	if !strings.Contains(plain.String(), "~*~ The code is compiling, and the tests pass! ~*~") {
		t.Fatalf("unexpected plain banner: %q", plain.String())
	}
	if !strings.Contains(emoji.String(), "🎉 🎉 The code is compiling, and the tests pass! 🎉 🎉") {
		t.Fatalf("unexpected emoji banner: %q", emoji.String())
	}
}
