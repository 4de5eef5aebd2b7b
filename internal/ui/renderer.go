package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavebattle/internal/combat"
)

const (
	partyColumn = 1
	enemyColumn = 42
	panelTop    = 2
)

// Renderer handles drawing the battle to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderBattle draws the party and enemy panels, the most recent log lines
// that fit, and a status line at the bottom.
func (r *Renderer) RenderBattle(b *combat.Battle, lines []string, status string) {
	r.screen.Clear()
	_, height := r.screen.Size()

	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawText(partyColumn, 0, fmt.Sprintf("Turn %d", b.Turn()), title)
	r.screen.DrawText(partyColumn, panelTop-1, "PARTY", title)
	r.screen.DrawText(enemyColumn, panelTop-1, "ENEMIES", title)

	for i, m := range b.Party() {
		id := combat.Party(i)
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if !m.IsAlive() {
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
		y := panelTop + i
		x := partyColumn
		r.screen.SetContent(x, y, m.Symbol(), style.Bold(true))
		line := fmt.Sprintf(" %-8s HP %3d/%-3d MP %3d/%-3d %s",
			m.Name, m.Stats.HP, m.Stats.MaxHP, m.Stats.MP, m.Stats.MaxMP, statusTags(b.Status(id)))
		r.screen.DrawText(x+1, y, line, style)
	}

	for i, e := range b.Enemies() {
		id := combat.Enemy(i)
		style := tcell.StyleDefault.Foreground(e.Color())
		if !e.IsAlive() {
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
		y := panelTop + i
		r.screen.SetContent(enemyColumn, y, e.Symbol(), style.Bold(true))
		line := fmt.Sprintf(" %-14s HP %3d/%-3d %s", e.Name, e.Stats.HP, e.Stats.MaxHP, statusTags(b.Status(id)))
		r.screen.DrawText(enemyColumn+1, y, line, style)
	}

	logTop := panelTop + max(len(b.Party()), len(b.Enemies())) + 1
	logRows := height - logTop - 1
	if logRows > 0 {
		start := max(len(lines)-logRows, 0)
		for i, line := range lines[start:] {
			r.RenderMessage(line, logTop+i)
		}
	}

	r.screen.DrawText(partyColumn, height-1, status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

// statusTags abbreviates an actor's buffs and ailments.
func statusTags(s combat.Status) string {
	var tags []string
	if s.AttackUp != nil {
		tags = append(tags, fmt.Sprintf("ATK+%d", s.AttackUp.Amount))
	}
	if s.DefenseUp != nil {
		tags = append(tags, fmt.Sprintf("DEF+%d", s.DefenseUp.Amount))
	}
	if s.Sleep {
		tags = append(tags, "SLP")
	}
	if s.Poison {
		tags = append(tags, "PSN")
	}
	return strings.Join(tags, " ")
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(partyColumn, y, msg, style)
}
