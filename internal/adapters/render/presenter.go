// Package render builds the decorated text frames shown on screen.
package render

import (
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomo/internal/domain"
)

// MaxWhimsy is the highest whimsy level.
const MaxWhimsy = 3

// sayWidth is the wrap width of prompt bubbles.
const sayWidth = 40

// Theme holds the colors used by the presenter.
type Theme struct {
	Work          string
	Alert         string
	GradientStart string
	GradientEnd   string
}

// ClampWhimsy bounds level to [0, MaxWhimsy].
func ClampWhimsy(level int) int {
	return max(0, min(level, MaxWhimsy))
}

// Presenter renders countdowns and prompts as speech bubbles spoken by a
// figure chosen at random. The whimsy level widens the pool of figures.
type Presenter struct {
	renderer *lipgloss.Renderer
	digits   lipgloss.Style
	alert    lipgloss.Style
	bar      progress.Model
	whimsy   int
	rand     *rand.Rand
	figure   Figure
}

// NewPresenter creates a presenter whose colors match what w can show.
func NewPresenter(w io.Writer, theme Theme, whimsy int, seed uint64) *Presenter {
	r := lipgloss.NewRenderer(w)
	p := &Presenter{
		renderer: r,
		digits:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Work)),
		alert:    r.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Alert)),
		bar: progress.New(
			progress.WithGradient(theme.GradientStart, theme.GradientEnd),
			progress.WithWidth(32),
			progress.WithoutPercentage(),
		),
		whimsy: ClampWhimsy(whimsy),
		rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	p.figure = p.pick()
	return p
}

// pick chooses a figure from the first 1+2*whimsy entries.
func (p *Presenter) pick() Figure {
	pool := min(1+2*p.whimsy, len(Figures))
	return Figures[p.rand.IntN(pool)]
}

// Countdown renders remaining as big digits in a bubble with a progress
// bar below. A new figure is picked when an interval starts.
func (p *Presenter) Countdown(remaining, total time.Duration) string {
	if remaining >= total {
		p.figure = p.pick()
	}
	digits := BigTime(domain.FormatClock(remaining), p.digits)

	done := 1.0
	if total > 0 {
		done = 1 - float64(remaining)/float64(total)
	}
	return Bubble(digits, 0, p.figure) + "\n\n" + p.bar.ViewAs(done)
}

// Say wraps message in a bubble spoken by a freshly picked figure.
func (p *Presenter) Say(message string) string {
	p.figure = p.pick()
	return Bubble(message, sayWidth, p.figure)
}

// Celebrate renders message in rainbow colors.
func (p *Presenter) Celebrate(message string) string {
	return Rainbow(p.renderer, message)
}

// SuspendPrompt is the frame shown while a suspend request is refused.
func (p *Presenter) SuspendPrompt() string {
	headline := p.alert.Render("Pomodoros can't be paused!")
	body := strings.Join([]string{
		"Stay with it, or press Ctrl-C",
		"to abandon this pomodoro.",
	}, "\n")
	return headline + "\n\n" + Bubble(body, 0, p.figure)
}
