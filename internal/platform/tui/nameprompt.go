package tui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MaxNameLength bounds player names in runes.
const MaxNameLength = 20

// ValidatePlayerName trims name and checks it can key the score table.
func ValidatePlayerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", errors.New("name must not be empty")
	case utf8.RuneCountInString(name) > MaxNameLength:
		return "", errors.New("name is too long")
	}
	return name, nil
}

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	promptErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	promptBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 3)
)

// NamePromptModel asks for the player name before a game.
type NamePromptModel struct {
	input     textinput.Model
	name      string
	err       error
	cancelled bool
	width     int
	height    int
}

// NewNamePromptModel creates a prompt pre-filled with initial.
func NewNamePromptModel(initial string) NamePromptModel {
	ti := textinput.New()
	ti.Placeholder = "player"
	ti.CharLimit = MaxNameLength
	ti.Width = MaxNameLength
	ti.SetValue(initial)
	ti.Focus()

	return NamePromptModel{input: ti}
}

// Init starts the cursor blink.
func (m NamePromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NamePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			name, err := ValidatePlayerName(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.name = name
			return m, tea.Quit
		}
		m.err = nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NamePromptModel) View() string {
	if m.Done() {
		return ""
	}

	lines := []string{
		promptTitleStyle.Render("PENTIX"),
		"",
		"Enter your name:",
		m.input.View(),
		"",
	}
	if m.err != nil {
		lines = append(lines, promptErrorStyle.Render(m.err.Error()))
	} else {
		lines = append(lines, promptHelpStyle.Render("enter to play • esc to quit"))
	}

	box := promptBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Done reports whether the prompt has finished either way.
func (m NamePromptModel) Done() bool {
	return m.cancelled || m.name != ""
}

// Name returns the accepted name, or "" if the prompt was cancelled.
func (m NamePromptModel) Name() string {
	return m.name
}

// RunNamePrompt asks for a player name. ok is false if the player backed out.
func RunNamePrompt(initial string) (name string, ok bool, err error) {
	p := tea.NewProgram(NewNamePromptModel(initial), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, isPrompt := final.(NamePromptModel)
	if !isPrompt || m.Name() == "" {
		return "", false, nil
	}
	return m.Name(), true, nil
}
