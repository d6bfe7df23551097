// Package tui provides the Bubble Tea presentation layer: the size
// prompt, the board screen and the SSH server. It talks to the engine
// only through the session API; all game rules live in internal/board.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/config"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/storage"
)

// App chains the setup screen into the game screen. It is the
// top-level model for both local and SSH play.
type App struct {
	cfg      config.Config
	store    *storage.Store
	setup    SetupModel
	game     *GameModel
	inGame   bool
	quitting bool
}

// NewApp creates the application model. The store may be nil.
func NewApp(cfg config.Config, store *storage.Store) App {
	return App{
		cfg:   cfg,
		store: store,
		setup: NewSetupModel(cfg.Board.Size),
	}
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	return a.setup.Init()
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.inGame && a.game != nil {
		return a.updateGame(msg)
	}
	return a.updateSetup(msg)
}

func (a App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := a.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		a.setup = setup
	}

	if a.setup.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if n := a.setup.Size(); n > 0 {
		game, err := NewGameModel(a.cfg, a.store, n)
		if err != nil {
			// ParseSize already enforced the minimum; nothing
			// sensible to do beyond leaving.
			a.quitting = true
			return a, tea.Quit
		}
		a.game = &game
		a.inGame = true
		return a, a.game.Init()
	}

	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := a.game.Update(msg)
	if game, ok := newGame.(GameModel); ok {
		a.game = &game
	}

	if a.game.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	return a, cmd
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.inGame && a.game != nil {
		return a.game.View()
	}
	return a.setup.View()
}

// Run starts the TUI for a local terminal session and blocks until the
// user quits.
func Run(cfg config.Config, store *storage.Store) error {
	p := tea.NewProgram(NewApp(cfg, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
