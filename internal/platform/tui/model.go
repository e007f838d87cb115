package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/registry"
)

// helpHeight is the number of terminal rows reserved below the game screen.
const helpHeight = 1

// ScoreStore persists finished games. *storage.Store implements it.
type ScoreStore interface {
	SaveScore(player string, score int) error
	SaveRun(player string, score, lines int) (string, error)
}

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// configReporter is implemented by games that fall back to a default
// config when theirs cannot be loaded.
type configReporter interface {
	ConfigError() error
}

// Result summarizes a play session once the program exits.
type Result struct {
	Player  string
	Score   int // Score of the last finished or abandoned game
	Lines   int // Rows cleared in that game
	RunID   string
	Games   int   // Games that reached game over
	SaveErr error // Last persistence error, if any
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreStore
	player     string
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string // One-off message shown in place of the help line
	quitting   bool
	scoreSaved bool // Whether the current game over has been persisted
	result     *Result
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case nothing is persisted.
func NewModel(game registry.Game, store ScoreStore, player string, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH -= helpHeight

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		player:     player,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		result:     &Result{Player: player},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = fmt.Sprintf("screenshot failed: %v", err)
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.result.Score = m.gameState.Score
		m.result.Lines = m.gameState.Lines
		return m, tea.Quit
	case core.ActionRestart:
		// Restart only means something once the game is over.
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - helpHeight
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.noteConfigError()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.noteConfigError()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGameOver()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// noteConfigError surfaces a config fallback from the last Reset.
func (m *Model) noteConfigError() {
	r, ok := m.game.(configReporter)
	if !ok {
		return
	}
	if err := r.ConfigError(); err != nil {
		m.status = "config error, using defaults: " + err.Error()
	}
}

// recordGameOver stores the final score under the player's name and
// appends the game to the run history.
func (m *Model) recordGameOver() {
	r := m.result
	r.Games++
	r.Score = m.gameState.Score
	r.Lines = m.gameState.Lines
	r.RunID = ""

	if m.store == nil || m.player == "" {
		return
	}
	if err := m.store.SaveScore(m.player, r.Score); err != nil {
		r.SaveErr = err
		m.status = "could not save score"
	}
	id, err := m.store.SaveRun(m.player, r.Score, r.Lines)
	if err != nil {
		r.SaveErr = err
		m.status = "could not save run"
		return
	}
	r.RunID = id
}

// saveScreenshot writes the current screen as plain text under the XDG
// data directory and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := xdg.DataFile(filepath.Join("pentix", "screenshots", name))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// Result returns the session summary collected so far.
func (m Model) Result() Result {
	return *m.result
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, store ScoreStore, player string, cfg core.RuntimeConfig) (Result, error) {
	model := NewModel(game, store, player, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return model.Result(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return model.Result(), nil
}
