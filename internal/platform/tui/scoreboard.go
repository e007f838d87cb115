package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pentix/internal/storage"
)

// ScoreSource reads persisted scores. *storage.Store implements it.
type ScoreSource interface {
	Leaderboard(limit int) ([]storage.PlayerScore, error)
	RecentRuns(limit int) ([]storage.Run, error)
}

// ScoreView selects what the scoreboard lists.
type ScoreView int

const (
	ViewLeaderboard ScoreView = iota
	ViewRuns
)

func (v ScoreView) title() string {
	if v == ViewRuns {
		return "RECENT GAMES"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "scores/games"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	source   ScoreSource
	limit    int
	view     ScoreView
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	rowCount int
	err      error
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard showing up to limit entries.
func NewScoreboardModel(source ScoreSource, view ScoreView, limit, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		limit:  limit,
		view:   view,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m ScoreboardModel) columns() []table.Column {
	if m.view == ViewRuns {
		return []table.Column{
			{Title: "Player", Width: MaxNameLength},
			{Title: "Score", Width: 8},
			{Title: "Lines", Width: 6},
			{Title: "Date", Width: 16},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: MaxNameLength},
		{Title: "Score", Width: 10},
	}
}

// reload rebuilds the table for the current view.
func (m *ScoreboardModel) reload() {
	var rows []table.Row
	m.err = nil

	if m.source != nil {
		switch m.view {
		case ViewRuns:
			runs, err := m.source.RecentRuns(m.limit)
			m.err = err
			for _, r := range runs {
				rows = append(rows, table.Row{
					r.Player,
					strconv.Itoa(r.Score),
					strconv.Itoa(r.Lines),
					r.CreatedAt.Local().Format("Jan 02 15:04"),
				})
			}
		default:
			entries, err := m.source.Leaderboard(m.limit)
			m.err = err
			for i, e := range entries {
				rows = append(rows, table.Row{
					fmt.Sprintf("#%d", i+1),
					e.Player,
					strconv.Itoa(e.Score),
				})
			}
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	m.rowCount = len(rows)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewRuns {
				m.view = ViewLeaderboard
			} else {
				m.view = ViewRuns
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.err != nil:
		content = promptErrorStyle.Render(m.err.Error())
	case m.rowCount == 0:
		content = boardEmptyStyle.Render("No games recorded yet.\nRun 'pentix play' to set a score!")
	default:
		content = m.table.View()
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(m.view.title()))
	b.WriteString("\n\n")
	b.WriteString(boardBoxStyle.Render(content))
	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source ScoreSource, view ScoreView, limit, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, view, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
