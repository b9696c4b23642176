package list

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"gokata/internal/exercise"
	"gokata/internal/state"
)

// Run drives the interactive list until the learner quits or picks a
// continue-at target. The program owns raw mode and the alternate screen
// for its whole lifetime; bubbletea restores both on every exit path,
// including errors and panics inside the model.
func Run(cs state.CompletionState, exercises []exercise.Exercise) (Result, error) {
	m := NewModel(cs, exercises)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("exercise list: %w", err)
	}
	fm, ok := final.(*Model)
	if !ok {
		return Result{}, fmt.Errorf("exercise list: unexpected final model %T", final)
	}
	return fm.Result(), nil
}
