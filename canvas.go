package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal colors for the palette, in ANSI indices so they follow the
// user's theme.
var paletteANSI = map[Color]lipgloss.Color{
	ColorBackground: lipgloss.Color("0"),
	ColorFloor:      lipgloss.Color("3"),
	ColorDisc:       lipgloss.Color("1"),
	ColorHighlight:  lipgloss.Color("5"),
	ColorWinText:    lipgloss.Color("2"),
}

// Glyphs used when the board is written out without colors.
var paletteGlyphs = map[Color]rune{
	ColorBackground: ' ',
	ColorFloor:      '#',
	ColorDisc:       '=',
	ColorHighlight:  '@',
	ColorWinText:    '!',
}

type cell struct {
	top    Color
	bottom Color
	ch     rune
	fg     Color
}

// cellScreen rasterizes board coordinates onto a grid of terminal cells.
// Each cell holds two vertical pixels drawn with an upper half block.
type cellScreen struct {
	width  int
	height int
	cols   int
	rows   int
	cells  [][]cell
}

func newCellScreen(width, height, cols, rows int) *cellScreen {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cells := make([][]cell, rows)
	for r := range cells {
		cells[r] = make([]cell, cols)
	}
	return &cellScreen{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		cells:  cells,
	}
}

func (s *cellScreen) Width() int {
	return s.width
}

func (s *cellScreen) Height() int {
	return s.height
}

// span converts a [lo, hi] board interval into an inclusive range of grid
// indices. Anything narrower than one index still covers one.
func span(lo, hi, extent float64, n int) (int, int) {
	a := int(math.Floor(lo * float64(n) / extent))
	b := int(math.Ceil(hi*float64(n)/extent)) - 1
	if b < a {
		b = a
	}
	return clamp(a, 0, n-1), clamp(b, 0, n-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *cellScreen) FillRect(x1, y1, x2, y2 float64, c Color) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	c1, c2 := span(x1, x2, float64(s.width), s.cols)
	p1, p2 := span(y1, y2, float64(s.height), s.rows*2)

	for p := p1; p <= p2; p++ {
		row := s.cells[p/2]
		for col := c1; col <= c2; col++ {
			if p%2 == 0 {
				row[col].top = c
			} else {
				row[col].bottom = c
			}
			// Filling over text erases it.
			row[col].ch = 0
		}
	}
}

func (s *cellScreen) Text(x, y float64, text string, c Color) {
	col := clamp(int(x*float64(s.cols)/float64(s.width)), 0, s.cols-1)
	row := clamp(int(y*float64(s.rows)/float64(s.height)), 0, s.rows-1)
	for _, r := range text {
		if col >= s.cols {
			break
		}
		s.cells[row][col].ch = r
		s.cells[row][col].fg = c
		col++
	}
}

type cellStyleKey struct {
	fg   Color
	bg   Color
	text bool
}

// Render returns the colored rows, one string per terminal line.
func (s *cellScreen) Render() []string {
	styles := make(map[cellStyleKey]lipgloss.Style)
	styleFor := func(k cellStyleKey) lipgloss.Style {
		if st, ok := styles[k]; ok {
			return st
		}
		st := lipgloss.NewStyle().
			Foreground(paletteANSI[k.fg]).
			Background(paletteANSI[k.bg])
		if k.text {
			st = st.Bold(true)
		}
		styles[k] = st
		return st
	}

	lines := make([]string, s.rows)
	for r, row := range s.cells {
		var line strings.Builder
		var run strings.Builder
		var current cellStyleKey
		for col, c := range row {
			key, glyph := cellGlyph(c)
			if col > 0 && key != current {
				line.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
			}
			current = key
			run.WriteRune(glyph)
		}
		line.WriteString(styleFor(current).Render(run.String()))
		lines[r] = line.String()
	}
	return lines
}

func cellGlyph(c cell) (cellStyleKey, rune) {
	switch {
	case c.ch != 0:
		return cellStyleKey{fg: c.fg, bg: c.bottom, text: true}, c.ch
	case c.top == c.bottom:
		return cellStyleKey{fg: c.top, bg: c.bottom}, ' '
	default:
		return cellStyleKey{fg: c.top, bg: c.bottom}, '▀'
	}
}

// Plain returns the rows without color, using one glyph per palette entry.
// When a cell holds two colors the more prominent one wins.
func (s *cellScreen) Plain() []string {
	lines := make([]string, s.rows)
	for r, row := range s.cells {
		runes := make([]rune, len(row))
		for col, c := range row {
			if c.ch != 0 {
				runes[col] = c.ch
				continue
			}
			runes[col] = paletteGlyphs[prominent(c.top, c.bottom)]
		}
		lines[r] = string(runes)
	}
	return lines
}

func prominent(a, b Color) Color {
	rank := func(c Color) int {
		switch c {
		case ColorHighlight:
			return 3
		case ColorDisc:
			return 2
		case ColorFloor:
			return 1
		default:
			return 0
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}
