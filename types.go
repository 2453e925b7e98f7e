package main

// Disc is a rectangle in screen coordinates. Width and Height never change
// after creation; X and Y only move while the disc is animated.
type Disc struct {
	Width  float64
	Height float64
	X      float64
	Y      float64
}

// Peg is a vertical rod at a fixed horizontal position.
type Peg struct {
	Position float64
	Discs    Stack
}

// Move records a completed relocation of the top disc of peg From onto peg To.
type Move struct {
	From int
	To   int
}

// Layout holds the board geometry. All values are in screen units.
type Layout struct {
	Pegs        int
	Discs       int
	FloorHeight int
	PegDistance int
	PegWidth    int
	PegShift    int
	TopBoundary int
	Step        int
}

func defaultLayout() Layout {
	return Layout{
		Pegs:        defaultPegs,
		Discs:       defaultDiscs,
		FloorHeight: defaultFloorHeight,
		PegDistance: defaultPegDistance,
		PegWidth:    defaultPegWidth,
		PegShift:    defaultPegShift,
		TopBoundary: defaultTopBoundary,
		Step:        defaultStep,
	}
}

type model struct {
	width          int
	height         int
	board          *Board
	config         *Config
	mode           Mode
	pending        ActionType
	undoStack      []Move
	redoStack      []Move
	errorMessage   string
	successMessage string
	solvedLogged   bool
}
