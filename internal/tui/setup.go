package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/match"
)

// SetupModel asks for the board size before a game starts. Empty input
// accepts the configured default.
type SetupModel struct {
	text     textinput.Model
	fallback int
	size     int // 0 until confirmed
	errMsg   string
	quitting bool
}

// NewSetupModel creates the size prompt with the given default.
func NewSetupModel(fallback int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d", fallback)
	ti.Prompt = "> "
	ti.CharLimit = 3
	ti.Width = 6
	ti.Focus()

	return SetupModel{
		text:     ti,
		fallback: fallback,
	}
}

// Init initializes the setup screen.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input on the setup screen.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			n, err := match.ParseSize(strings.TrimSpace(m.text.Value()), m.fallback)
			if err != nil {
				m.errMsg = fmt.Sprintf("%v (minimum %d)", err, board.MinSize)
				m.text.SetValue("")
				return m, nil
			}
			m.size = n
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styleTitle.Render("  T T T T — Terminal Tic-Tac-Toe"))
	b.WriteString("\n\n")
	b.WriteString("  This version isn't limited to 3x3.\n")
	b.WriteString(fmt.Sprintf("  Board size (default %d): ", m.fallback))
	b.WriteString(m.text.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("\n  ")
		b.WriteString(styleError.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(styleTally.Render("enter to start, esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// Size returns the confirmed board size, 0 while still prompting.
func (m SetupModel) Size() int {
	return m.size
}

// IsQuitting reports whether the user aborted on the setup screen.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}
