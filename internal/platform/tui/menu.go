package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuRuns
	MenuQuit
)

type menuItem struct {
	title  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Play", MenuPlay},
	{"High scores", MenuScores},
	{"Recent games", MenuRuns},
	{"Quit", MenuQuit},
}

// MenuKeyMap defines the key bindings for the main menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	subtitle string
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	choice   MenuChoice
}

// NewMenuModel creates a menu showing subtitle under the title.
func NewMenuModel(subtitle string, width, height int) MenuModel {
	return MenuModel{
		subtitle: subtitle,
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = MenuQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.choice = menuItems[m.cursor].choice
			return m, tea.Quit
		case key.Matches(msg, m.keys.Scores):
			m.choice = MenuScores
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("P E N T I X"))
	b.WriteString("\n\n")
	if m.subtitle != "" {
		b.WriteString(menuDimStyle.Render(m.subtitle))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("> " + item.title))
		} else {
			b.WriteString("  " + item.title)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render("↑/↓: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Choice returns the selected entry, or MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// RunMenu shows the main menu until the player picks an entry.
func RunMenu(subtitle string, width, height int) (MenuChoice, error) {
	p := tea.NewProgram(NewMenuModel(subtitle, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuQuit, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuQuit, nil
	}
	return m.Choice(), nil
}
