package verify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"gokata/internal/exercise"
)

// Outcome is the runner's terminal result for one batch: either every
// pending exercise passed, or the batch halted at the first failure.
type Outcome interface{ isOutcome() }

type AllDone struct{}

type Failed struct {
	Exercise exercise.Exercise
}

func (AllDone) isOutcome() {}
func (Failed) isOutcome()  {}

type Options struct {
	// Verbose echoes captured test output even on success.
	Verbose bool
	// ShowHints prints the exercise hint alongside the success prompt.
	ShowHints bool
	// Animate enables the spinner while an invocation is outstanding.
	Animate bool
}

// Runner verifies pending exercises strictly in catalog order, halting at
// the first failing or unacknowledged exercise.
type Runner struct {
	toolchain exercise.Toolchain
	inspector exercise.Inspector
	out       io.Writer
	banners   *Banners
	markdown  *glamour.TermRenderer
}

func NewRunner(toolchain exercise.Toolchain, inspector exercise.Inspector, out io.Writer, emoji bool) *Runner {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(78),
	)
	if err != nil {
		renderer = nil
	}
	return &Runner{
		toolchain: toolchain,
		inspector: inspector,
		out:       out,
		banners:   NewBanners(out, emoji),
		markdown:  renderer,
	}
}

// Verify runs the batch. done/total are the already-completed count and
// the catalog size; a zero total means there is nothing to verify.
func (r *Runner) Verify(ctx context.Context, pending []exercise.Exercise, done, total int, opts Options) (Outcome, error) {
	if total == 0 {
		r.banners.AllDone()
		return AllDone{}, nil
	}

	tracker := NewTracker(r.out, total)
	percentage := float64(done) / float64(total) * 100.0
	tracker.SetPosition(done)
	tracker.SetMessage(fmt.Sprintf("(%.1f %%)", percentage))

	for _, ex := range pending {
		ok, err := r.Check(ctx, ex, opts)
		if err != nil {
			return nil, err
		}
		if !ok {
			return Failed{Exercise: ex}, nil
		}
		percentage += 100.0 / float64(total)
		tracker.Increment()
		tracker.SetMessage(fmt.Sprintf("(%.1f %%)", percentage))
	}

	tracker.Finish()
	r.banners.AllDone()
	return AllDone{}, nil
}

// Check verifies one exercise: invoke the toolchain for its mode, surface
// captured output on failure, then require the not-done marker to be gone.
// True means fully complete.
func (r *Runner) Check(ctx context.Context, ex exercise.Exercise, opts Options) (bool, error) {
	var label string
	switch ex.Mode {
	case exercise.ModeTest:
		label = fmt.Sprintf("Testing %s...", ex.Name)
	case exercise.ModeLint:
		label = fmt.Sprintf("Compiling %s...", ex.Name)
	default:
		label = fmt.Sprintf("Running %s...", ex.Name)
	}
	var sp *Spinner
	if opts.Animate {
		sp = StartSpinner(r.out, label)
	}
	res, err := r.toolchain.Run(ctx, ex)
	if sp != nil {
		sp.StopAndClear()
	}
	if err != nil {
		return false, fmt.Errorf("verify %s: %w", ex.Name, err)
	}

	if !res.ExitSuccess {
		switch ex.Mode {
		case exercise.ModeTest:
			r.banners.TestFailed(ex)
		case exercise.ModeLint:
			r.banners.LintFailed(ex)
		default:
			r.banners.RanWithErrors(ex)
		}
		if err := r.echo(res.Stdout, res.Stderr); err != nil {
			return false, err
		}
		return false, nil
	}

	if ex.Mode == exercise.ModeTest && opts.Verbose {
		if err := r.echo(res.Stdout, nil); err != nil {
			return false, err
		}
	}
	return r.promptForCompletion(ex, res, opts)
}

// promptForCompletion halts the batch when an otherwise-successful
// exercise still carries the not-done marker. The learner must remove the
// marker to acknowledge completion; this is deliberate, not a warning.
func (r *Runner) promptForCompletion(ex exercise.Exercise, res exercise.RunResult, opts Options) (bool, error) {
	st, err := r.inspector.State(ex)
	if err != nil {
		return false, err
	}
	if st.Done {
		return true, nil
	}

	r.banners.Ran(ex)
	r.banners.Success(ex.Mode)

	if ex.Mode == exercise.ModeCompile && len(res.Stdout) > 0 {
		sep := r.banners.Separator()
		fmt.Fprintf(r.out, "Output:\n%s\n", sep)
		if err := r.echo(res.Stdout, nil); err != nil {
			return false, err
		}
		fmt.Fprintf(r.out, "\n%s\n\n", sep)
	}
	if opts.ShowHints && strings.TrimSpace(ex.Hint) != "" {
		sep := r.banners.Separator()
		fmt.Fprintf(r.out, "Hints:\n%s\n%s\n%s\n\n", sep, r.renderHint(ex.Hint), sep)
	}
	r.banners.KeepWorking(st.Context)
	return false, nil
}

func (r *Runner) renderHint(hint string) string {
	if r.markdown == nil {
		return strings.TrimSpace(hint)
	}
	out, err := r.markdown.Render(hint)
	if err != nil {
		return strings.TrimSpace(hint)
	}
	return strings.TrimRight(out, "\n")
}

// echo surfaces captured toolchain output. Write failures are fatal to the
// operation since output can no longer be trusted.
func (r *Runner) echo(stdout, stderr []byte) error {
	if len(stdout) > 0 {
		if _, err := r.out.Write(stdout); err != nil {
			return fmt.Errorf("write captured output: %w", err)
		}
	}
	if len(stderr) > 0 {
		if _, err := r.out.Write(stderr); err != nil {
			return fmt.Errorf("write captured output: %w", err)
		}
	}
	return nil
}
