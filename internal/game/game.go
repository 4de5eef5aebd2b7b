package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavebattle/internal/battlelog"
	"github.com/samdwyer/cavebattle/internal/ui"
)

const (
	statusPlaying  = "[space] next turn  [a] auto  [q] quit"
	statusFinished = "[any key] exit"
)

// Game is the interactive battle viewer. Each key press advances the battle
// by one turn; the runner still chooses every action.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	runner   *Runner
	lines    []string
	status   string
	running  bool
	err      error
}

// New creates a viewer for runner on screen.
func New(screen *ui.Screen, runner *Runner) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		runner:   runner,
		lines:    []string{"Monsters appear!"},
		status:   statusPlaying,
		running:  true,
	}
}

// Run executes the main viewer loop and returns the battle summary. Quitting
// early still finishes the battle as unresolved.
func (g *Game) Run(ctx context.Context) (Summary, error) {
	for g.running {
		g.renderer.RenderBattle(g.runner.Battle(), g.lines, g.status)
		g.handleInput(ctx)
	}
	g.screen.Close()

	if g.err != nil {
		return Summary{}, g.err
	}
	return g.runner.Finish(ctx)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if g.runner.Done() {
		g.running = false
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyEnter:
		g.step(ctx)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.step(ctx)
		case 'a', 'A':
			for !g.runner.Done() && g.running {
				g.step(ctx)
			}
		case 'q', 'Q':
			g.running = false
		}
	}
}

// step advances the battle one turn and appends its messages.
func (g *Game) step(ctx context.Context) {
	b := g.runner.Battle()
	events, err := g.runner.Step(ctx)
	if err != nil {
		g.err = err
		g.running = false
		return
	}
	g.lines = append(g.lines, battlelog.Lines(events, b, b.Catalog())...)
	if g.runner.Done() {
		g.lines = append(g.lines, "The battle ends: "+outcomeOf(b).String()+".")
		g.status = statusFinished
	}
}
