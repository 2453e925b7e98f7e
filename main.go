package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

type tickMsg time.Time

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Background(lipgloss.Color("236"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Background(lipgloss.Color("236"))
	helpStyle   = lipgloss.NewStyle().Padding(1, 2)
)

func initialModel(config *Config) model {
	return model{
		board:   NewBoard(config.Layout(), config.ScreenWidth, config.ScreenHeight),
		config:  config,
		mode:    ModeNormal,
		pending: ActionMove,
	}
}

func (m model) Init() tea.Cmd {
	return tick(m.config.Delay())
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if mv, done := m.board.Step(); done {
			m.completeMove(mv)
		}
		return m, tick(m.config.Delay())

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}

	return m, nil
}

func (m *model) completeMove(mv Move) {
	L().Debugw("move complete", "from", mv.From, "to", mv.To, "action", m.pending)
	m.recordMove(mv)
	if m.board.Won() && !m.solvedLogged {
		m.solvedLogged = true
		L().Infow("puzzle solved", "pegs", m.config.Pegs, "discs", m.config.Discs, "moves", len(m.undoStack))
	}
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", " ", "space", "q":
		return m, tea.Quit
	}

	// Once solved, the next key ends the game.
	if m.board.Won() && !m.board.Animating() {
		return m, tea.Quit
	}

	if m.mode == ModeHelp {
		m.mode = ModeNormal
		return m, nil
	}

	if m.board.Animating() {
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "?":
		m.mode = ModeHelp
	case "u":
		m.undo()
	case "U":
		m.redo()
	case "esc":
		m.dropBack()
	case "r":
		if m.board.State() == StateIdle {
			m = initialModel(m.config).withSize(m.width, m.height)
		}
	case "s":
		m.export(FileOpSaveVisualTXT)
	case "S":
		m.export(FileOpSavePNG)
	case "c":
		if err := m.copyBoardToClipboard(); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.successMessage = "Board copied to clipboard"
		}
	default:
		if idx, ok := pegIndexForKey(key, len(m.board.Pegs())); ok {
			m.selectPeg(idx)
		}
	}
	return m, nil
}

func (m model) withSize(width, height int) model {
	m.width = width
	m.height = height
	return m
}

func (m *model) selectPeg(idx int) {
	switch m.board.Select(idx) {
	case SelectCommitted:
		m.pending = ActionMove
	case SelectRejected:
		m.errorMessage = fmt.Sprintf("Peg %d has a narrower disc on top", idx+1)
	case SelectEmpty:
		m.errorMessage = fmt.Sprintf("Peg %d is empty", idx+1)
	}
}

func (m *model) export(op FileOperation) {
	filename := m.config.GetSavePath(exportName(op, time.Now()))
	var err error
	if op == FileOpSavePNG {
		err = exportPNG(m.board, filename)
	} else {
		err = m.exportVisualTXT(filename)
	}
	if err != nil {
		L().Errorw("export failed", "file", filename, "error", err)
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	L().Infow("board exported", "file", filename)
	m.successMessage = fmt.Sprintf("Saved %s", filename)
}

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	cols, _ := m.boardArea()
	if m.width > 0 && (m.width < 10 || m.height < 4) {
		return "Terminal too small"
	}

	var result strings.Builder
	for _, line := range m.rasterize().Render() {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine(cols))
	return result.String()
}

func (m model) modeString() string {
	if m.board.Won() {
		return "SOLVED"
	}
	return m.board.State().String()
}

func (m model) statusLine(width int) string {
	status := fmt.Sprintf(" %s | moves: %d", m.modeString(), len(m.undoStack))
	if best, ok := minimumMoves(m.config.Pegs, m.config.Discs); ok {
		status += fmt.Sprintf(" (best %d)", best)
	}
	if src := m.board.Source(); src >= 0 {
		status += fmt.Sprintf(" | from peg %d", src+1)
	}
	status += " | 1-" + lastPegKey(m.config.Pegs) + " pegs  u/U undo/redo  ? help  space quit "

	line := statusStyle.Render(status)
	switch {
	case m.errorMessage != "":
		line += errorStyle.Render(" " + m.errorMessage + " ")
	case m.successMessage != "":
		line += okStyle.Render(" " + m.successMessage + " ")
	}
	if lipgloss.Width(line) > width {
		return statusStyle.Render(truncate(status, width))
	}
	return line
}

func lastPegKey(pegs int) string {
	if pegs >= 10 {
		return "0"
	}
	return fmt.Sprintf("%d", pegs)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func (m model) helpView() string {
	helpLines := []string{
		"Tower of Hanoi",
		"==============",
		"",
		"Move every disc to the last peg. A disc may only go on an empty peg",
		"or on a wider disc.",
		"",
		"Pegs:",
		"-----",
		"  1-9, 0           Select a peg (0 is the tenth)",
		"                   - First press lifts the top disc",
		"                   - Second press sends it to that peg",
		"  Esc              Put the lifted disc back",
		"",
		"History:",
		"--------",
		"  u                Undo last move",
		"  U                Redo last undone move",
		"  r                Restart",
		"",
		"Files:",
		"------",
		"  s                Save the board as text",
		"  S                Export the board as PNG",
		"  c                Copy the board to the clipboard",
		"",
		"General:",
		"  ?                Toggle this help screen",
		"  Space/q/Ctrl+C   Quit",
	}
	return helpStyle.Render(strings.Join(helpLines, "\n"))
}
