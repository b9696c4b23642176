package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"

	"gokata/internal/catalog"
	"gokata/internal/config"
	"gokata/internal/exercise"
	"gokata/internal/state"
	"gokata/internal/telemetry"
	"gokata/internal/verify"
)

// App holds the collaborators one command invocation needs: the loaded
// catalog, the completion store, and the event log.
type App struct {
	cfg       config.Config
	exercises []exercise.Exercise
	store     *state.SQLiteStore
	events    *telemetry.JSONLogger
	logger    *clog.Logger
	workDir   string
}

func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	exercises, err := catalog.NewLoader().Load(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	store, err := state.NewSQLite(cfg.StatePath())
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = filepath.Join(cfg.DataDir, "events.log")
	}
	events, err := telemetry.NewJSONLogger(logPath)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		_ = store.Close()
		_ = events.Close()
		return nil, err
	}

	return &App{
		cfg:       cfg,
		exercises: exercises,
		store:     store,
		events:    events,
		logger:    clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "gokata", Level: clog.WarnLevel}),
		workDir:   workDir,
	}, nil
}

func (a *App) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("closing state store", "err", err)
	}
	if err := a.events.Close(); err != nil {
		a.logger.Warn("closing event log", "err", err)
	}
}

func (a *App) runner() *verify.Runner {
	return verify.NewRunner(
		exercise.NewGoToolchain(a.workDir),
		exercise.NewInspector(a.workDir),
		os.Stdout,
		!a.cfg.NoEmoji,
	)
}

func (a *App) findExercise(name string) (int, error) {
	idx := catalog.FindByName(a.exercises, name)
	if idx < 0 {
		return 0, fmt.Errorf("no exercise named %q", name)
	}
	return idx, nil
}

// applyOutcome folds a batch result back into the completion state: every
// pending exercise before the halting one is now done. The runner itself
// never mutates persisted state.
func applyOutcome(cs state.CompletionState, pendingIdx []int, outcome verify.Outcome, failedIdx int) state.CompletionState {
	switch outcome.(type) {
	case verify.AllDone:
		for _, idx := range pendingIdx {
			cs.Progress[idx] = true
		}
		cs.NextIndex = len(cs.Progress)
	case verify.Failed:
		for _, idx := range pendingIdx {
			if idx == failedIdx {
				break
			}
			cs.Progress[idx] = true
		}
		cs.NextIndex = failedIdx
	}
	return cs
}
