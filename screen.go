package main

// Color names an entry of the board palette.
type Color int

const (
	ColorBackground Color = iota
	ColorFloor
	ColorDisc
	ColorHighlight
	ColorWinText
)

// Screen is a drawing surface in board coordinates.
type Screen interface {
	Width() int
	Height() int
	FillRect(x1, y1, x2, y2 float64, c Color)
	Text(x, y float64, s string, c Color)
}

// drawBoard renders one frame: background, floor, pegs with their discs,
// the disc in flight and, once solved, the win message.
func drawBoard(s Screen, b *Board) {
	w := float64(s.Width())
	h := float64(s.Height())
	l := b.Layout()

	s.FillRect(0, 0, w-1, h-1, ColorBackground)
	s.FillRect(0, h-float64(l.FloorHeight), w, h, ColorFloor)

	pegs := b.Pegs()
	for i := range pegs {
		peg := &pegs[i]
		x := peg.Position
		s.FillRect(x, h-float64(l.PegDistance), x+float64(l.PegWidth), h-float64(l.FloorHeight), ColorFloor)
		for j := 0; j < peg.Discs.Len(); j++ {
			fillDisc(s, peg.Discs.At(j), ColorDisc)
		}
	}

	if d, ok := b.Moved(); ok {
		fillDisc(s, d, ColorHighlight)
	}

	if b.Won() {
		s.Text(w/2-30, h/5, winMessage, ColorWinText)
	}
}

func fillDisc(s Screen, d Disc, c Color) {
	s.FillRect(d.X, d.Y, d.X+d.Width, d.Y+d.Height, c)
}
