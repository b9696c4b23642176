package exercise

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const invokeTimeout = 120 * time.Second

// GoToolchain verifies exercises with the local go tool. One invoker per
// mode; unknown modes are rejected before anything is executed.
type GoToolchain struct {
	registry map[Mode]Invoker
}

func NewGoToolchain(workDir string) *GoToolchain {
	t := &GoToolchain{registry: map[Mode]Invoker{}}
	t.registry[ModeCompile] = &CompileInvoker{WorkDir: workDir}
	t.registry[ModeTest] = &TestInvoker{WorkDir: workDir}
	t.registry[ModeLint] = &LintInvoker{WorkDir: workDir}
	return t
}

func (t *GoToolchain) Run(ctx context.Context, ex Exercise) (RunResult, error) {
	invoker, ok := t.registry[ex.Mode]
	if !ok {
		return RunResult{}, fmt.Errorf("no invoker for mode %q", ex.Mode)
	}
	return invoker.Invoke(ctx, ex)
}

// CompileInvoker builds the exercise and executes the resulting binary.
type CompileInvoker struct {
	WorkDir string
}

func (i *CompileInvoker) Invoke(ctx context.Context, ex Exercise) (RunResult, error) {
	return runGo(ctx, i.WorkDir, "run", ex.Path)
}

// TestInvoker builds and runs the exercise's test harness.
type TestInvoker struct {
	WorkDir string
}

func (i *TestInvoker) Invoke(ctx context.Context, ex Exercise) (RunResult, error) {
	return runGo(ctx, i.WorkDir, "test", ex.Path)
}

// LintInvoker builds under go vet without executing anything. Lint findings
// count as failure.
type LintInvoker struct {
	WorkDir string
}

func (i *LintInvoker) Invoke(ctx context.Context, ex Exercise) (RunResult, error) {
	return runGo(ctx, i.WorkDir, "vet", ex.Path)
}

func runGo(ctx context.Context, workDir string, args ...string) (RunResult, error) {
	cctx, cancel := context.WithTimeout(ctx, invokeTimeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, "go", args...)
	cmd.Dir = workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := RunResult{
		ExitSuccess: err == nil,
		Stdout:      stdout.Bytes(),
		Stderr:      stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return res, nil
		}
		return RunResult{}, fmt.Errorf("go %s: %w", args[0], err)
	}
	return res, nil
}
