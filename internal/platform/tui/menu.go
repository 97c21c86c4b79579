package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []registry.Info
	cursor   int
	config   core.RuntimeConfig
	quitting bool
	selected *registry.Info
}

// NewMenuModel lists every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  registry.List(),
		config: cfg,
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P E D E S T R I A N   C R O S S I N G"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %s", item.Title))
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("↑/↓: navigate  enter: play  q: quit"), width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected variant, or nil if none selected.
func (m MenuModel) Selected() *registry.Info {
	return m.selected
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ID     string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	return menuResult(final, cfg), nil
}

// menuResult extracts the selection from the model the program exited with.
func menuResult(final tea.Model, cfg core.RuntimeConfig) MenuResult {
	m, ok := final.(MenuModel)
	if !ok || m.quitting || m.selected == nil {
		return MenuResult{Config: cfg, Quit: true}
	}
	return MenuResult{ID: m.selected.ID, Config: m.config}
}
