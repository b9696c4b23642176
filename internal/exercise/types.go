package exercise

// Mode selects how an exercise is verified against the toolchain.
type Mode string

const (
	// ModeCompile builds the exercise and executes the resulting binary.
	ModeCompile Mode = "compile"
	// ModeTest builds and runs the exercise's test harness.
	ModeTest Mode = "test"
	// ModeLint builds under the linter without executing anything.
	ModeLint Mode = "lint"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeCompile, ModeTest, ModeLint:
		return true
	}
	return false
}

// Exercise is one learner task. Immutable after catalog load; identity is
// its position in the catalog order.
type Exercise struct {
	Name string
	Path string
	Mode Mode
	Hint string
}

func (e Exercise) String() string { return e.Name }

// RunResult is the outcome of a single toolchain invocation.
type RunResult struct {
	ExitSuccess bool
	Stdout      []byte
	Stderr      []byte
}

// ContextLine is one source line surrounding the not-done marker, shown as
// completion context. Numbers are 1-based; Important flags the marker line.
type ContextLine struct {
	Number    int
	Text      string
	Important bool
}

// State reports whether an exercise has been acknowledged complete.
type State struct {
	Done    bool
	Context []ContextLine
}
