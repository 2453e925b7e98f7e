package main

import "time"

type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
)

// State is the phase of the input state machine.
type State int

const (
	StateIdle State = iota
	StateHolding
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateHolding:
		return "HOLDING"
	case StateAnimating:
		return "MOVING"
	default:
		return "UNKNOWN"
	}
}

// Selection reports what a peg key press did to the board.
type Selection int

const (
	SelectIgnored Selection = iota
	SelectEmpty
	SelectLifted
	SelectCommitted
	SelectRejected
)

type ActionType int

const (
	ActionMove ActionType = iota
	ActionUndo
	ActionRedo
	ActionDrop
)

type FileOperation int

const (
	FileOpSaveVisualTXT FileOperation = iota
	FileOpSavePNG
)

const (
	defaultPegs         = 5
	defaultDiscs        = 60
	defaultFloorHeight  = 15
	defaultPegDistance  = 500
	defaultPegWidth     = 5
	defaultPegShift     = 100
	defaultTopBoundary  = 100
	defaultStep         = 5
	defaultDelay        = 10 * time.Millisecond
	defaultScreenWidth  = 1200
	defaultScreenHeight = 600

	maxPegs  = 10 // digit keys 1-9 and 0
	maxDiscs = 60

	winMessage = "YOU WIN!!!"
)
