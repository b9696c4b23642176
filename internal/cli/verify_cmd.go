package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gokata/internal/catalog"
	"gokata/internal/exercise"
	"gokata/internal/state"
	"gokata/internal/verify"
)

func newVerifyCmd() *cobra.Command {
	var showHints bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify all pending exercises in catalog order, halting at the first failure",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			cs, err := a.store.Load(ctx, len(a.exercises))
			if err != nil {
				return err
			}
			return a.verifyBatch(ctx, cs, showHints)
		},
	}
	cmd.Flags().BoolVar(&showHints, "hints", false, "show exercise hints on the success prompt")
	return cmd
}

// verifyBatch runs one fail-fast pass over the pending exercises and
// persists whatever the batch accomplished.
func (a *App) verifyBatch(ctx context.Context, cs state.CompletionState, showHints bool) error {
	pendingIdx := cs.PendingFrom()
	pending := make([]exercise.Exercise, 0, len(pendingIdx))
	for _, idx := range pendingIdx {
		pending = append(pending, a.exercises[idx])
	}

	sessionID := uuid.NewString()
	start := time.Now()
	a.events.VerifyStarted(sessionID, len(pending), len(a.exercises))

	outcome, err := a.runner().Verify(ctx, pending, cs.DoneCount(), len(a.exercises), verify.Options{
		Verbose:   a.cfg.Verbose,
		ShowHints: showHints,
		Animate:   true,
	})
	if err != nil {
		return err
	}

	failedIdx := -1
	failedName := ""
	if failed, ok := outcome.(verify.Failed); ok {
		failedIdx = catalog.FindByName(a.exercises, failed.Exercise.Name)
		failedName = failed.Exercise.Name
	}
	cs = applyOutcome(cs, pendingIdx, outcome, failedIdx)

	if err := a.store.Save(ctx, cs); err != nil {
		return err
	}
	run := state.VerifyRun{
		SessionID:      sessionID,
		StartTS:        start,
		FinishTS:       time.Now(),
		AllDone:        failedIdx < 0,
		FailedExercise: failedName,
		DoneCount:      cs.DoneCount(),
		Total:          len(a.exercises),
	}
	if err := a.store.RecordVerifyRun(ctx, run); err != nil {
		a.logger.Warn("recording verify run", "err", err)
	}
	a.events.VerifyFinished(sessionID, failedName, cs.DoneCount(), len(a.exercises))
	return nil
}
