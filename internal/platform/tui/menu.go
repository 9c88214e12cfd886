package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// difficultyItem is one row of the start menu.
type difficultyItem struct {
	preset config.DifficultyPreset
	title  string
}

var difficultyItems = []difficultyItem{
	{config.DifficultyEasy, "Easy    wide paddle, slow ball"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard    narrow paddle, fast ball"},
}

// MenuModel lets the player pick a difficulty before a session starts.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	selected *config.DifficultyPreset
	quitting bool
}

// NewMenuModel creates a start menu with the initial preset highlighted.
// Unknown presets highlight Normal.
func NewMenuModel(width, height int, initial config.DifficultyPreset) MenuModel {
	cursor := 1
	for i, item := range difficultyItems {
		if item.preset == initial {
			cursor = i
		}
	}
	return MenuModel{
		cursor: cursor,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyItems)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		preset := difficultyItems[m.cursor].preset
		m.selected = &preset
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty list.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B R E A K O U T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, item := range difficultyItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(centerText("Enter: Select  |  Esc/Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen preset, or nil if still choosing.
func (m MenuModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if the player left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu shows the start menu and returns the chosen preset.
// ok is false when the player quit instead of choosing.
func RunMenu(cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewMenuModel(cfg.ScreenW, cfg.ScreenH, config.DifficultyNormal), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMenu := final.(MenuModel)
	if !isMenu || m.Selected() == nil {
		return "", false, nil
	}
	return *m.Selected(), true, nil
}
