package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/grid"
	"github.com/vovakirdan/tilemerge/internal/registry"
)

var (
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2)
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).PaddingLeft(1).PaddingRight(1)
)

// MenuModel is the variant picker. It ends its program on selection,
// on Tab (leaderboard) or on quit; callers read the outcome afterwards.
type MenuModel struct {
	items     []registry.Variant
	cursor    int
	config    core.RuntimeConfig
	selected  *registry.Variant
	scores    bool
	quitting  bool
}

// NewMenuModel creates a menu with the cursor on defaultID.
func NewMenuModel(cfg core.RuntimeConfig, defaultID string) MenuModel {
	m := MenuModel{items: registry.List(), config: cfg}
	for i, v := range m.items {
		if v.ID == defaultID {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionSelect:
			if len(m.items) > 0 {
				v := m.items[m.cursor]
				m.selected = &v
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.scores = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// View renders the variant list next to an empty preview of the
// highlighted board.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	list := make([]string, 0, len(m.items))
	for i, v := range m.items {
		label := fmt.Sprintf("%-12s %dx%d", v.Title, v.Size, v.Size)
		if i == m.cursor {
			list = append(list, menuSelectedStyle.Render(label))
		} else {
			list = append(list, menuItemStyle.Render(label))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, list...)
	if preview := m.preview(); preview != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Center, body, "    ", preview)
	}

	sections := []string{
		"",
		titleStyle.Render("T I L E M E R G E"),
		"",
		hudStyle.Render("Pick a board"),
		"",
		body,
		"",
		helpStyle.Render("↑/↓ move   enter play   tab scores   q quit"),
	}

	var b strings.Builder
	for _, s := range sections {
		for _, line := range strings.Split(s, "\n") {
			b.WriteString(centerText(line, m.config.ScreenW))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// preview draws the highlighted board empty, or "" if it would not fit.
func (m MenuModel) preview() string {
	if len(m.items) == 0 {
		return ""
	}
	size := m.items[m.cursor].Size
	out := RenderBoard(engine.Snapshot{Size: size}, grid.New(size))
	if m.config.ScreenH > 0 && lipgloss.Height(out)+10 > m.config.ScreenH {
		return ""
	}
	return out
}

// Selected returns the selected variant, or nil if none selected.
func (m MenuModel) Selected() *registry.Variant {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scores
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Variant         registry.Variant
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, defaultID string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, defaultID), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Variant = *m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
