package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordMove(t *testing.T) {
	m := newTestModel(3, 3)

	m.recordMove(Move{From: 0, To: 0})
	assert.Empty(t, m.undoStack, "putting a disc back on its peg is not a move")

	m.recordMove(Move{From: 0, To: 2})
	m.redoStack = []Move{{From: 1, To: 2}}
	m.recordMove(Move{From: 0, To: 1})
	assert.Equal(t, []Move{{0, 2}, {0, 1}}, m.undoStack)
	assert.Empty(t, m.redoStack)

	m.pending = ActionUndo
	m.recordMove(Move{From: 1, To: 0})
	assert.Equal(t, []Move{{0, 1}}, m.redoStack)
	assert.Equal(t, ActionMove, m.pending)

	m.pending = ActionDrop
	m.recordMove(Move{From: 2, To: 2})
	assert.Len(t, m.undoStack, 2)
	assert.Len(t, m.redoStack, 1)
}

func TestReplayRejectsIllegalMove(t *testing.T) {
	m := newTestModel(3, 3)
	m.undoStack = []Move{{From: 2, To: 1}}

	// Reversing it would lift from an empty peg.
	m.redo()
	m.undo()
	assert.Equal(t, StateIdle, m.board.State())
	assert.Equal(t, []Move{{From: 2, To: 1}}, m.undoStack, "a failed undo stays in history")
}
