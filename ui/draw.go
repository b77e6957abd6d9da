package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/gobattleship/game"
)

const (
	boardLeft     = 3
	sidebarGap    = 4
	scoreboardTop = 2
	winPrompt     = "You sank the fleet in %d shots! Play again? (y/n)"
	movePrompt    = "Move: "
	helpDirector  = "Right: let the computer fire"
)

func (ui *UI) putString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		ui.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// promptRow is the first row below both the board and the scoreboard.
func (ui *UI) promptRow() int {
	scoreboardEnd := scoreboardTop + ui.game.Board().Fleet().Len()
	return max(ui.game.Board().Size()+2, scoreboardEnd+1)
}

// Draw renders the whole frame into the screen buffer. Callers Show it.
func (ui *UI) Draw() {
	ui.screen.Clear()

	board := ui.game.Board()
	size := board.Size()

	ui.putString(boardLeft, 0, game.ColumnNames[:size], styleHeader)
	for row, states := range board.Snapshot() {
		ui.putString(0, row+1, fmt.Sprintf("%2d ", row+1), styleHeader)
		for col, state := range states {
			ui.screen.SetContent(boardLeft+col, row+1, game.CellGlyph(state), nil, cellStyles[state])
		}
	}
	ui.drawScoreboard(boardLeft + size + sidebarGap)

	y := ui.promptRow()
	if ui.game.Outcome() == game.Won {
		ui.putString(0, y, fmt.Sprintf(winPrompt, ui.game.Shots()), styleWin)
		ui.screen.HideCursor()
	} else {
		end := ui.putString(0, y, movePrompt+string(ui.input), styleDefault)
		ui.screen.ShowCursor(end, y)
	}
	ui.putString(0, y+1, ui.message, styleDefault)
	if ui.game.HasDirector() {
		ui.putString(0, y+2, helpDirector, styleDefault)
	}

	ui.drawHistory(y + 4)
}

func (ui *UI) drawScoreboard(x int) {
	ui.putString(x, 0, fmt.Sprintf("Round %d", ui.game.Round()), styleHeader)

	for i, status := range ui.game.ShipStatuses() {
		style := styleDefault
		if status.Condition == game.Sunk {
			style = styleSunk
		}
		line := fmt.Sprintf("%-16s %d %s", status.Name, status.Length, status.Condition)
		ui.putString(x, scoreboardTop+i, line, style)
	}
}

func (ui *UI) drawHistory(y int) {
	history := ui.game.History()
	if len(history) == 0 {
		return
	}

	ui.putString(0, y, "Recent shots", styleHeader)
	for i, shot := range history {
		ui.putString(0, y+1+i, describeShot(shot), styleDefault)
	}
}
