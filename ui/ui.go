// Package ui is the terminal front end: it draws the board, collects a move
// from the keyboard and hands it to the game on Enter.
package ui

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/gobattleship/game"
)

const maxInputLength = 8

var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Bold(true)
	styleMiss    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSunk    = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleWin     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

var cellStyles = map[game.CellState]tcell.Style{
	game.Empty:     styleDefault,
	game.Miss:      styleMiss,
	game.HitUnsunk: styleHit,
	game.HitSunk:   styleSunk,
}

type UI struct {
	screen tcell.Screen
	game   *game.Game

	input   []rune
	message string

	quit bool
	err  error
}

func New(screen tcell.Screen, g *game.Game) *UI {
	return &UI{screen: screen, game: g}
}

// Run takes over the screen until the player quits.
func (ui *UI) Run() error {
	if err := ui.screen.Init(); err != nil {
		return err
	}
	defer ui.screen.Fini()

	for !ui.quit {
		ui.Draw()
		ui.screen.Show()
		ui.HandleEvent(ui.screen.PollEvent())
	}

	return ui.err
}

func (ui *UI) Input() string {
	return string(ui.input)
}

func (ui *UI) Message() string {
	return ui.message
}

func (ui *UI) Quit() bool {
	return ui.quit
}

func (ui *UI) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		// screen finalized
		ui.quit = true
	case *tcell.EventResize:
		ui.screen.Sync()
	case *tcell.EventKey:
		ui.handleKey(ev)
	}
}

func (ui *UI) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		ui.quit = true
		return
	}

	if ui.game.Outcome() == game.Won {
		ui.handleWinDialog(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		ui.submit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(ui.input) > 0 {
			ui.input = ui.input[:len(ui.input)-1]
		}
	case tcell.KeyRight:
		if shot, ok := ui.game.RequestDirectorAct(); ok {
			ui.message = describeShot(shot)
		}
	case tcell.KeyRune:
		if len(ui.input) < maxInputLength && unicode.IsPrint(ev.Rune()) {
			ui.input = append(ui.input, ev.Rune())
		}
	}
}

func (ui *UI) handleWinDialog(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'y':
		if err := ui.game.Reset(); err != nil {
			ui.err = err
			ui.quit = true
			return
		}
		ui.input = ui.input[:0]
		ui.message = ""
	case 'n':
		ui.quit = true
	}
}

func (ui *UI) submit() {
	move := string(ui.input)
	ui.input = ui.input[:0]

	if ui.game.Fire(move) == game.Invalid {
		ui.message = fmt.Sprintf("%s: %s", move, game.Invalid)
		return
	}

	if shot, ok := ui.game.LastShot(); ok {
		ui.message = describeShot(shot)
	}
}

func describeShot(shot game.Shot) string {
	if shot.Sunk != "" {
		return fmt.Sprintf("%s: %s, %s sunk", shot.Move, shot.Result, shot.Sunk)
	}
	return fmt.Sprintf("%s: %s", shot.Move, shot.Result)
}
