package state

import (
	"context"
	"time"
)

type Store interface {
	EnsureSchema(ctx context.Context) error
	Load(ctx context.Context, total int) (CompletionState, error)
	Save(ctx context.Context, cs CompletionState) error
	RecordVerifyRun(ctx context.Context, run VerifyRun) error
	GetSummary(ctx context.Context) (Summary, error)
	Close() error
}

// CompletionState is the persisted progress vector plus the index of the
// next pending exercise. Invariant: 0 <= NextIndex <= len(Progress).
type CompletionState struct {
	Progress  []bool
	NextIndex int
}

// Default returns a fresh all-pending state for a catalog of the given size.
func Default(total int) CompletionState {
	return CompletionState{Progress: make([]bool, total), NextIndex: 0}
}

func (cs CompletionState) DoneCount() int {
	n := 0
	for _, done := range cs.Progress {
		if done {
			n++
		}
	}
	return n
}

// PendingFrom returns the indices of exercises not yet done, starting at
// NextIndex, in catalog order.
func (cs CompletionState) PendingFrom() []int {
	out := []int{}
	for i := cs.NextIndex; i < len(cs.Progress); i++ {
		if !cs.Progress[i] {
			out = append(out, i)
		}
	}
	return out
}

func (cs CompletionState) valid() bool {
	return cs.NextIndex >= 0 && cs.NextIndex <= len(cs.Progress)
}

// VerifyRun is one recorded verification batch.
type VerifyRun struct {
	SessionID      string
	StartTS        time.Time
	FinishTS       time.Time
	AllDone        bool
	FailedExercise string
	DoneCount      int
	Total          int
}

type Summary struct {
	VerifyRuns int
	Passes     int
}
