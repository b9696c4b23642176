package exercise

import "context"

// Invoker runs one verification mode against a single exercise.
type Invoker interface {
	Invoke(ctx context.Context, ex Exercise) (RunResult, error)
}

// Toolchain dispatches an exercise to the invoker for its mode.
type Toolchain interface {
	Run(ctx context.Context, ex Exercise) (RunResult, error)
}

// Inspector reports the completion state of an exercise's source.
type Inspector interface {
	State(ex Exercise) (State, error)
}
