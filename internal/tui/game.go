package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/config"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/match"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/storage"
)

// GameModel is the Bubble Tea model for one sitting at the board:
// game, result banner, rematches. The engine itself lives in the
// session; this model only translates keys into placements and state
// into strings.
type GameModel struct {
	cfg     config.Config
	store   *storage.Store
	session *match.Session
	tally   match.Tally

	cursor board.Cell
	coord  textinput.Model
	typing bool

	keys KeyMap
	help help.Model

	status        string
	statusIsError bool
	saved         bool
	quitting      bool
}

// NewGameModel starts a game on an n×n board. The store may be nil;
// results are then simply not persisted.
func NewGameModel(cfg config.Config, store *storage.Store, n int) (GameModel, error) {
	session, err := match.NewSession(n)
	if err != nil {
		return GameModel{}, err
	}

	ti := textinput.New()
	ti.Prompt = "row, col > "
	ti.CharLimit = 16
	ti.Width = 12

	return GameModel{
		cfg:     cfg,
		store:   store,
		session: session,
		coord:   ti,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}, nil
}

// Init initializes the game screen.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the game screen.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing {
			return m.handleCoordinateKey(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keys in cursor mode.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.session.Board().Size()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Rematch):
		if m.session.Board().IsFinished() {
			return m.rematch()
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor.Row < n-1 {
			m.cursor.Row++
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor.Col < n-1 {
			m.cursor.Col++
		}

	case key.Matches(msg, m.keys.Place):
		m.place(m.cursor)

	case key.Matches(msg, m.keys.Coordinate):
		if !m.session.Board().IsFinished() {
			m.typing = true
			m.coord.SetValue("")
			m.coord.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

// handleCoordinateKey processes keys while the coordinate prompt is
// open.
func (m GameModel) handleCoordinateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.typing = false
		m.coord.Blur()
		return m, nil
	case "enter":
		cell, err := match.ParseCell(m.coord.Value())
		if err != nil {
			m.setError(err.Error())
			m.coord.SetValue("")
			return m, nil
		}
		m.typing = false
		m.coord.Blur()
		if m.place(cell) {
			m.cursor = cell
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.coord, cmd = m.coord.Update(msg)
	return m, cmd
}

// place attempts a move for whoever's turn it is and reports whether it
// was accepted. A rejected move leaves the board untouched, so the same
// player simply tries again.
func (m *GameModel) place(cell board.Cell) bool {
	mark := m.session.Board().CurrentTurn()
	won, axes, err := m.session.Place(mark, cell)
	if err != nil {
		m.setError(fmt.Sprintf("%v — redo your move", err))
		return false
	}

	switch {
	case won:
		m.setStatus(fmt.Sprintf("%s placed at %s and wins %s!", m.symbol(mark), cell, axisList(axes)))
	case m.session.Board().IsFinished():
		m.setStatus("You both did a too good job. This game has no winner...")
	default:
		m.setStatus(fmt.Sprintf("%s placed at %s.", m.symbol(mark), cell))
	}

	if res := m.session.Result(); res != nil && !m.saved {
		m.tally.Record(*res)
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the game continues regardless
			m.store.SaveResult(*res)
		}
		m.saved = true
	}
	return true
}

// rematch starts a fresh board of the same size, keeping the tally.
func (m GameModel) rematch() (tea.Model, tea.Cmd) {
	session, err := match.NewSession(m.session.Board().Size())
	if err != nil {
		// Size was already validated once, so this cannot happen.
		m.setError(err.Error())
		return m, nil
	}
	m.session = session
	m.cursor = board.Cell{}
	m.saved = false
	m.setStatus("New game. Either player may open.")
	return m, nil
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusIsError = false
}

func (m *GameModel) setError(s string) {
	m.status = s
	m.statusIsError = true
}

// symbol renders a mark with its configured symbol and color.
func (m GameModel) symbol(mark board.Mark) string {
	switch mark {
	case board.PlayerA:
		return styleMarkA.Render(m.cfg.Symbol(mark))
	case board.PlayerB:
		return styleMarkB.Render(m.cfg.Symbol(mark))
	default:
		return " "
	}
}

// View renders the board, status line, tally and help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	b := m.session.Board()
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(styleTitle.Render("  T T T T"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderGrid())
	sb.WriteString("\n")

	if b.IsFinished() {
		if b.Winner() != board.Empty {
			sb.WriteString("  ")
			sb.WriteString(styleBanner.Render(fmt.Sprintf("Congratulations %s wins %s!",
				m.symbol(b.Winner()), axisList(b.WinAxes()))))
			sb.WriteString("\n")
		} else {
			sb.WriteString("  ")
			sb.WriteString(styleBanner.Render("Draw — no winner this time."))
			sb.WriteString("\n")
		}
		sb.WriteString("  ")
		sb.WriteString(styleStatus.Render("press r for a rematch, q to quit"))
		sb.WriteString("\n")
	} else {
		sb.WriteString("  ")
		sb.WriteString(styleStatus.Render(fmt.Sprintf("Turn: %s", m.symbol(b.CurrentTurn()))))
		sb.WriteString("\n")
		if m.typing {
			sb.WriteString("  ")
			sb.WriteString(m.coord.View())
			sb.WriteString("\n")
		}
	}

	if m.status != "" {
		sb.WriteString("  ")
		if m.statusIsError {
			sb.WriteString(styleError.Render(m.status))
		} else {
			sb.WriteString(styleStatus.Render(m.status))
		}
		sb.WriteString("\n")
	}

	if m.tally.Games() > 0 {
		sb.WriteString("  ")
		sb.WriteString(styleTally.Render(fmt.Sprintf("Sitting: %s %d — %d %s, %d drawn",
			m.cfg.Display.MarkA, m.tally.WinsA, m.tally.WinsB, m.cfg.Display.MarkB, m.tally.Draws)))
		sb.WriteString("\n")
	}

	if m.cfg.Display.ShowHints {
		sb.WriteString("\n  ")
		sb.WriteString(m.help.View(m.keys))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderGrid draws the board with row and column labels so typed
// coordinates map directly onto what is on screen.
func (m GameModel) renderGrid() string {
	b := m.session.Board()
	n := b.Size()
	grid := b.Snapshot()
	showCursor := !b.IsFinished() && !m.typing

	var sb strings.Builder

	// Column indices.
	sb.WriteString("      ")
	for c := 0; c < n; c++ {
		sb.WriteString(styleIndex.Render(fmt.Sprintf(" %-3d", c)))
	}
	sb.WriteString("\n")

	sb.WriteString("      ")
	sb.WriteString(styleGrid.Render(gridLine(n, "┌", "┬", "┐")))
	sb.WriteString("\n")

	for r := 0; r < n; r++ {
		sb.WriteString(styleIndex.Render(fmt.Sprintf("  %3d ", r)))
		for c := 0; c < n; c++ {
			sb.WriteString(styleGrid.Render("│"))
			cell := fmt.Sprintf(" %s ", m.cfg.Symbol(grid[r][c]))
			switch {
			case showCursor && m.cursor.Row == r && m.cursor.Col == c:
				sb.WriteString(styleCursor.Render(cell))
			case grid[r][c] == board.PlayerA:
				sb.WriteString(styleMarkA.Render(cell))
			case grid[r][c] == board.PlayerB:
				sb.WriteString(styleMarkB.Render(cell))
			default:
				sb.WriteString(cell)
			}
		}
		sb.WriteString(styleGrid.Render("│"))
		sb.WriteString("\n")

		sb.WriteString("      ")
		if r < n-1 {
			sb.WriteString(styleGrid.Render(gridLine(n, "├", "┼", "┤")))
		} else {
			sb.WriteString(styleGrid.Render(gridLine(n, "└", "┴", "┘")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// gridLine builds one horizontal border of the grid.
func gridLine(n int, left, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i := 0; i < n; i++ {
		sb.WriteString("───")
		if i < n-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// axisList joins winning axes for the announcement, e.g.
// "horizontally and vertically".
func axisList(axes []board.Axis) string {
	names := make([]string, len(axes))
	for i, a := range axes {
		names[i] = a.String()
	}
	return strings.Join(names, " and ")
}

// IsQuitting reports whether the user asked to leave.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}
