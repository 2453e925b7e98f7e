package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(pegs, discs int) model {
	config := defaultConfig()
	config.Pegs = pegs
	config.Discs = discs
	return initialModel(config).withSize(100, 30)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func press(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, key := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(key))
		m = next.(model)
	}
	return m, cmd
}

// runFrames delivers ticks until the animation ends.
func runFrames(t *testing.T, m model) model {
	t.Helper()
	for i := 0; m.board.Animating(); i++ {
		require.Less(t, i, 10000, "animation did not finish")
		next, cmd := m.Update(tickMsg(time.Now()))
		require.NotNil(t, cmd, "the frame loop keeps ticking")
		m = next.(model)
	}
	return m
}

func playMove(t *testing.T, m model, from, to string) model {
	t.Helper()
	m, _ = press(t, m, from, to)
	return runFrames(t, m)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelMoveThroughKeys(t *testing.T) {
	m := newTestModel(5, 60)

	m, _ = press(t, m, "1")
	assert.Equal(t, StateHolding, m.board.State())
	assert.Contains(t, m.View(), "HOLDING")

	m, _ = press(t, m, "2")
	assert.Equal(t, StateAnimating, m.board.State())

	m = runFrames(t, m)
	assert.Equal(t, 59, m.board.Pegs()[0].Discs.Len())
	assert.Equal(t, 1, m.board.Pegs()[1].Discs.Len())
	assert.Equal(t, []Move{{From: 0, To: 1}}, m.undoStack)
	assert.Contains(t, m.View(), "moves: 1")
}

func TestModelIgnoresKeysWhileAnimating(t *testing.T) {
	m := newTestModel(5, 60)
	m, _ = press(t, m, "1", "2", "3", "u", "1")

	assert.Equal(t, StateAnimating, m.board.State())
	assert.Equal(t, 59, m.board.Pegs()[0].Discs.Len())
	assert.Equal(t, 0, m.board.Pegs()[2].Discs.Len())
}

func TestModelRejectedMoveKeepsDiscLifted(t *testing.T) {
	m := newTestModel(5, 60)
	m = playMove(t, m, "1", "2")

	m, _ = press(t, m, "1", "2")
	assert.Equal(t, StateHolding, m.board.State())
	assert.NotEmpty(t, m.errorMessage)

	m, _ = press(t, m, "3")
	assert.Equal(t, StateAnimating, m.board.State())
	assert.Empty(t, m.errorMessage)
}

func TestModelEmptyPegAndUnmappedKeys(t *testing.T) {
	m := newTestModel(5, 60)
	m, _ = press(t, m, "3")
	assert.Equal(t, StateIdle, m.board.State())
	assert.NotEmpty(t, m.errorMessage)

	m, _ = press(t, m, "7", "0", "x")
	assert.Equal(t, StateIdle, m.board.State())
}

func TestModelEscDropsDiscBack(t *testing.T) {
	m := newTestModel(5, 60)
	m, _ = press(t, m, "1", "esc")
	assert.Equal(t, StateAnimating, m.board.State())

	m = runFrames(t, m)
	assert.Equal(t, 60, m.board.Pegs()[0].Discs.Len())
	assert.Empty(t, m.undoStack, "dropping back is not a move")
	assert.Equal(t, ActionMove, m.pending)
}

func TestModelUndoRedo(t *testing.T) {
	m := newTestModel(3, 3)
	m = playMove(t, m, "1", "3")
	m = playMove(t, m, "1", "2")
	require.Len(t, m.undoStack, 2)

	m, _ = press(t, m, "u")
	assert.Equal(t, StateAnimating, m.board.State())
	m = runFrames(t, m)
	assert.Equal(t, 2, m.board.Pegs()[0].Discs.Len())
	assert.Equal(t, 0, m.board.Pegs()[1].Discs.Len())
	assert.Equal(t, []Move{{From: 0, To: 2}}, m.undoStack)
	assert.Equal(t, []Move{{From: 0, To: 1}}, m.redoStack)

	m, _ = press(t, m, "U")
	m = runFrames(t, m)
	assert.Equal(t, 1, m.board.Pegs()[0].Discs.Len())
	assert.Equal(t, 1, m.board.Pegs()[1].Discs.Len())
	assert.Len(t, m.undoStack, 2)
	assert.Empty(t, m.redoStack)

	// A fresh move after an undo drops the redo history.
	m, _ = press(t, m, "u")
	m = runFrames(t, m)
	require.Len(t, m.redoStack, 1)
	m = playMove(t, m, "1", "2")
	assert.Empty(t, m.redoStack)
}

func TestModelUndoWithEmptyHistory(t *testing.T) {
	m := newTestModel(3, 3)
	m, _ = press(t, m, "u", "U")
	assert.Equal(t, StateIdle, m.board.State())
	assert.Equal(t, 3, m.board.Pegs()[0].Discs.Len())
}

func TestModelSolveAndQuitOnNextKey(t *testing.T) {
	m := newTestModel(3, 3)
	for _, mv := range [][2]string{{"1", "3"}, {"1", "2"}, {"3", "2"}, {"1", "3"}, {"2", "1"}, {"2", "3"}, {"1", "3"}} {
		require.False(t, m.board.Won())
		m = playMove(t, m, mv[0], mv[1])
	}

	require.True(t, m.board.Won())
	assert.True(t, m.solvedLogged)
	view := m.View()
	assert.Contains(t, view, "SOLVED")
	assert.Contains(t, view, "moves: 7 (best 7)")

	_, cmd := press(t, m, "1")
	assert.True(t, isQuit(cmd))
}

func TestModelQuitKeys(t *testing.T) {
	for _, key := range []string{" ", "q", "ctrl+c"} {
		m := newTestModel(5, 60)
		_, cmd := press(t, m, key)
		assert.True(t, isQuit(cmd), "key %q", key)
	}

	m := newTestModel(5, 60)
	_, cmd := press(t, m, "1")
	assert.False(t, isQuit(cmd))
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(5, 60)
	m, _ = press(t, m, "?")
	assert.Equal(t, ModeHelp, m.mode)
	assert.Contains(t, m.View(), "Undo last move")

	m, _ = press(t, m, "1")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, StateIdle, m.board.State(), "the closing key is swallowed")
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(3, 3)
	m = playMove(t, m, "1", "3")

	m, _ = press(t, m, "r")
	assert.Equal(t, 3, m.board.Pegs()[0].Discs.Len())
	assert.Empty(t, m.undoStack)
	assert.Equal(t, 100, m.width)
}

func TestModelExportToSaveDirectory(t *testing.T) {
	m := newTestModel(3, 3)
	m.config.SaveDirectory = t.TempDir()

	m, _ = press(t, m, "s")
	assert.Empty(t, m.errorMessage)
	assert.Contains(t, m.successMessage, m.config.SaveDirectory)

	m, _ = press(t, m, "S")
	assert.Empty(t, m.errorMessage)
	assert.Contains(t, m.successMessage, ".png")
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(5, 60)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 5, Height: 2})
	assert.Equal(t, "Terminal too small", next.(model).View())
}

func TestMinimumMoves(t *testing.T) {
	best, ok := minimumMoves(3, 10)
	assert.True(t, ok)
	assert.Equal(t, 1023, best)

	_, ok = minimumMoves(5, 10)
	assert.False(t, ok)
}
