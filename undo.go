package main

// recordMove files a finished animation in the history according to what
// started it.
func (m *model) recordMove(mv Move) {
	switch m.pending {
	case ActionMove:
		if mv.From == mv.To {
			return
		}
		m.undoStack = append(m.undoStack, mv)
		m.redoStack = m.redoStack[:0]
	case ActionUndo:
		m.redoStack = append(m.redoStack, mv.reversed())
	case ActionRedo:
		m.undoStack = append(m.undoStack, mv)
	}
	m.pending = ActionMove
}

func (mv Move) reversed() Move {
	return Move{From: mv.To, To: mv.From}
}

// undo animates the last move backwards. Reversing the latest move is
// always legal, so both selections succeed.
func (m *model) undo() {
	if m.board.State() != StateIdle || len(m.undoStack) == 0 {
		return
	}

	lastIndex := len(m.undoStack) - 1
	mv := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	if !m.replay(mv.reversed()) {
		L().Warnw("undo rejected", "from", mv.From, "to", mv.To)
		m.undoStack = append(m.undoStack, mv)
		return
	}
	m.pending = ActionUndo
}

func (m *model) redo() {
	if m.board.State() != StateIdle || len(m.redoStack) == 0 {
		return
	}

	lastIndex := len(m.redoStack) - 1
	mv := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	if !m.replay(mv) {
		L().Warnw("redo rejected", "from", mv.From, "to", mv.To)
		m.redoStack = append(m.redoStack, mv)
		return
	}
	m.pending = ActionRedo
}

func (m *model) replay(mv Move) bool {
	if m.board.Select(mv.From) != SelectLifted {
		return false
	}
	if m.board.Select(mv.To) != SelectCommitted {
		// Put the disc back where it was.
		m.board.Select(mv.From)
		m.pending = ActionDrop
		return false
	}
	return true
}

// dropBack returns a lifted disc to its own peg.
func (m *model) dropBack() {
	if m.board.State() != StateHolding {
		return
	}
	if m.board.Select(m.board.Source()) == SelectCommitted {
		m.pending = ActionDrop
	}
}
