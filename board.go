package main

import "math"

// Board owns the pegs, the discs and the state of the disc in flight.
//
// moved and target are both nil while idle. During holding only moved is
// set; during animation both are.
type Board struct {
	layout    Layout
	width     int
	height    int
	pegs      []Peg
	discs     []Disc
	moved     *Disc
	target    *Peg
	pending   Move
	animating bool
}

// NewBoard lays out the pegs across a screen of the given size and stacks
// every disc on the first peg, widest at the bottom.
func NewBoard(layout Layout, width, height int) *Board {
	b := &Board{
		layout: layout,
		width:  width,
		height: height,
	}
	b.initPegs()
	b.initDiscs()
	return b
}

func (b *Board) initPegs() {
	b.pegs = make([]Peg, b.layout.Pegs)
	for i := range b.pegs {
		b.pegs[i] = Peg{
			Position: float64((b.width / (b.layout.Pegs + 1)) * (i + 1)),
			Discs:    NewStack(b.layout.Discs),
		}
	}
}

func (b *Board) initDiscs() {
	baseWidth := b.pegs[1].Position - b.pegs[0].Position
	widthChange := (baseWidth - float64(2*b.layout.PegWidth)) / float64(b.layout.Discs)
	discHeight := float64((b.layout.PegDistance - b.layout.PegShift) / b.layout.Discs)
	peg := &b.pegs[0]

	b.discs = make([]Disc, b.layout.Discs)
	for i := range b.discs {
		d := &b.discs[i]
		d.Width = baseWidth - widthChange*float64(i)
		d.Height = discHeight
		d.Y = b.floorY() - d.Height*float64(i+1)
		d.X = b.centeredX(peg.Position, d.Width)

		peg.Discs.Push(*d)
	}
}

func (b *Board) floorY() float64 {
	return float64(b.height - b.layout.FloorHeight)
}

// centeredX is the left edge that centers a disc of width w on the rod at pos.
func (b *Board) centeredX(pos, w float64) float64 {
	return pos + float64(b.layout.PegWidth/2) - w/2
}

// Select handles a key press mapped to peg idx. With nothing lifted it lifts
// the top disc of that peg; with a disc lifted it commits the peg as the
// destination if the peg is empty or its top disc is strictly wider.
func (b *Board) Select(idx int) Selection {
	if b.animating || idx < 0 || idx >= len(b.pegs) {
		return SelectIgnored
	}
	peg := &b.pegs[idx]

	if b.moved == nil {
		d, ok := peg.Discs.Pop()
		if !ok {
			return SelectEmpty
		}
		b.moved = &d
		b.pending = Move{From: idx, To: -1}
		return SelectLifted
	}

	if to, ok := peg.Discs.Peek(); ok && to.Width <= b.moved.Width {
		return SelectRejected
	}
	b.target = peg
	b.pending.To = idx
	b.animating = true
	return SelectCommitted
}

// Step advances the disc in flight by one frame: up to the top boundary,
// across to the target rod, then down onto the target stack. It returns the
// completed move on the frame the disc lands. Step is a no-op unless a move
// is animating.
func (b *Board) Step() (Move, bool) {
	if !b.animating || b.moved == nil || b.target == nil {
		return Move{}, false
	}
	d := b.moved

	topY := b.floorY()
	if top, ok := b.target.Discs.Peek(); ok {
		topY = top.Y
	}
	destX := b.centeredX(b.target.Position, d.Width)
	destY := topY - d.Height
	step := float64(b.layout.Step)
	boundary := float64(b.layout.TopBoundary)

	switch {
	case d.X != destX && d.Y > boundary:
		d.Y = math.Max(d.Y-step, boundary)
	case d.X == destX && d.Y < destY:
		d.Y = math.Min(d.Y+step, destY)
	case d.X > destX && d.Y == boundary:
		d.X = math.Max(d.X-step, destX)
	case d.X < destX && d.Y == boundary:
		d.X = math.Min(d.X+step, destX)
	default:
		b.animating = false
		if !b.target.Discs.Push(*d) {
			L().Debugw("peg full, disc dropped", "peg", b.pending.To)
		}
		mv := b.pending
		b.moved = nil
		b.target = nil
		b.pending = Move{}
		return mv, true
	}
	return Move{}, false
}

// Won reports whether every disc sits on the last peg.
func (b *Board) Won() bool {
	return b.pegs[len(b.pegs)-1].Discs.Len() == b.layout.Discs
}

func (b *Board) State() State {
	switch {
	case b.animating:
		return StateAnimating
	case b.moved != nil:
		return StateHolding
	default:
		return StateIdle
	}
}

func (b *Board) Animating() bool {
	return b.animating
}

// Moved returns a copy of the disc in flight.
func (b *Board) Moved() (Disc, bool) {
	if b.moved == nil {
		return Disc{}, false
	}
	return *b.moved, true
}

// Source is the peg the lifted disc came from, or -1.
func (b *Board) Source() int {
	if b.moved == nil {
		return -1
	}
	return b.pending.From
}

// Count returns the discs on all pegs plus the one in flight.
func (b *Board) Count() int {
	n := 0
	for i := range b.pegs {
		n += b.pegs[i].Discs.Len()
	}
	if b.moved != nil {
		n++
	}
	return n
}

func (b *Board) Pegs() []Peg {
	return b.pegs
}

func (b *Board) Layout() Layout {
	return b.layout
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}
