package verify

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"gokata/internal/exercise"
)

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6F91")).Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#67F0A8")).Bold(true)
	lineNoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5EEBFF")).Bold(true)
	pipeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5EEBFF"))
)

// Banners renders user-facing success and failure messages. Emoji is an
// explicit configuration value; nothing here reads the environment.
type Banners struct {
	w     io.Writer
	emoji bool
}

func NewBanners(w io.Writer, emoji bool) *Banners {
	return &Banners{w: w, emoji: emoji}
}

func (b *Banners) Ran(ex exercise.Exercise) {
	switch ex.Mode {
	case exercise.ModeTest:
		fmt.Fprintln(b.w, passStyle.Render(fmt.Sprintf("Successfully tested %s!", ex.Name)))
	case exercise.ModeLint:
		fmt.Fprintln(b.w, passStyle.Render(fmt.Sprintf("Successfully compiled %s!", ex.Name)))
	default:
		fmt.Fprintln(b.w, passStyle.Render(fmt.Sprintf("Successfully ran %s!", ex.Name)))
	}
}

func (b *Banners) Success(mode exercise.Mode) {
	msg := successMessage(mode, b.emoji)
	if b.emoji {
		fmt.Fprintf(b.w, "\n🎉 🎉 %s 🎉 🎉\n\n", msg)
	} else {
		fmt.Fprintf(b.w, "\n~*~ %s ~*~\n\n", msg)
	}
}

func successMessage(mode exercise.Mode, emoji bool) string {
	switch mode {
	case exercise.ModeTest:
		return "The code is compiling, and the tests pass!"
	case exercise.ModeLint:
		if emoji {
			return "The code is compiling, and 🧹 the linter 🧹 is happy!"
		}
		return "The code is compiling, and the linter is happy!"
	default:
		return "The code is compiling!"
	}
}

func (b *Banners) RanWithErrors(ex exercise.Exercise) {
	fmt.Fprintln(b.w, failStyle.Render(fmt.Sprintf("Ran %s with errors", ex.Name)))
}

func (b *Banners) TestFailed(ex exercise.Exercise) {
	fmt.Fprintln(b.w, failStyle.Render(fmt.Sprintf("Testing of %s failed! Please try again. Here's the output:", ex.Name)))
}

func (b *Banners) LintFailed(ex exercise.Exercise) {
	fmt.Fprintln(b.w, failStyle.Render(fmt.Sprintf("Linting of %s failed! Please try again. Here's the output:", ex.Name)))
}

func (b *Banners) AllDone() {
	fmt.Fprintln(b.w, "You completed all exercises!")
}

func (b *Banners) Separator() string {
	return boldStyle.Render("====================")
}

// KeepWorking prints the acknowledgment prompt and the source context
// around the not-done marker.
func (b *Banners) KeepWorking(context []exercise.ContextLine) {
	fmt.Fprintln(b.w, "You can keep working on this exercise,")
	fmt.Fprintf(b.w, "or jump into the next one by removing the %s comment:\n\n",
		boldStyle.Render("`"+exercise.NotDoneMarker+"`"))
	for _, line := range context {
		text := line.Text
		if line.Important {
			text = boldStyle.Render(text)
		}
		fmt.Fprintf(b.w, "%s %s  %s\n",
			lineNoStyle.Render(fmt.Sprintf("%2d", line.Number)),
			pipeStyle.Render("|"),
			text)
	}
}
