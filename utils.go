package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// boardArea is the terminal area left for the board once the status line
// is drawn.
func (m *model) boardArea() (int, int) {
	cols := m.width
	if cols < 1 {
		cols = 80
	}
	rows := m.height - 1
	if rows < 1 {
		rows = 23
	}
	return cols, rows
}

func (m *model) rasterize() *cellScreen {
	cols, rows := m.boardArea()
	s := newCellScreen(m.board.Width(), m.board.Height(), cols, rows)
	drawBoard(s, m.board)
	return s
}

func (m *model) plainBoard() []string {
	return m.rasterize().Plain()
}

func (m *model) copyBoardToClipboard() error {
	return clipboard.WriteAll(strings.Join(m.plainBoard(), "\n"))
}

func exportName(op FileOperation, now time.Time) string {
	ext := "txt"
	if op == FileOpSavePNG {
		ext = "png"
	}
	return fmt.Sprintf("hanoi-%s.%s", now.Format("20060102-150405"), ext)
}

// minimumMoves is the optimal solution length for three pegs. Other peg
// counts have no closed form, so it reports false.
func minimumMoves(pegs, discs int) (int, bool) {
	if pegs != 3 || discs >= 63 {
		return 0, false
	}
	return 1<<uint(discs) - 1, true
}
