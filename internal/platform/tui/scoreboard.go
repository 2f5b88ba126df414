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

	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// scoreboardLimit caps the runs loaded per variant.
const scoreboardLimit = 50

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next board")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev board")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the leaderboard of one variant at a time.
type ScoreboardModel struct {
	store     *storage.Store
	variants  []registry.Variant
	current   int
	table     table.Model
	stats     *storage.VariantStats
	loadErr   error
	keys      scoreboardKeys
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the leaderboard on variantID. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int, variantID string) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		keys:     defaultScoreboardKeys(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	for i, v := range m.variants {
		if v.ID == variantID {
			m.current = i
		}
	}
	m.table = newScoreTable(height)
	m.reload()
	return m
}

func newScoreTable(height int) table.Model {
	rows := height - 10 // title, tabs, borders, stats and help
	if rows < 3 {
		rows = 3
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Max", Width: 6},
			{Title: "Moves", Width: 6},
			{Title: "Player", Width: 12},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(rows),
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

	return t
}

// reload fetches runs and stats for the current variant.
func (m *ScoreboardModel) reload() {
	m.stats, m.loadErr = nil, nil

	var runs []storage.ScoreEntry
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		runs, m.loadErr = m.store.TopScores(id, scoreboardLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(id)
		}
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Moves),
			player,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves to the next (+1) or previous (-1) variant, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = (m.current + delta + n) % n
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := m.table.Rows()
		m.table = newScoreTable(msg.Height)
		m.table.SetRows(rows)
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	lines := []string{
		titleStyle.Render("HIGH SCORES"),
		m.renderTabs(),
		"",
		panelStyle.Render(m.renderBody()),
		hudStyle.Render(m.renderStats()),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	}

	var b strings.Builder
	for _, line := range lines {
		for _, l := range strings.Split(line, "\n") {
			b.WriteString(centerText(l, m.width))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(v.Title)
		} else {
			tabs[i] = tabStyle.Render(v.Title)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 0 && lipgloss.Width(row) > m.width-4 && len(m.variants) > 0 {
		return activeTabStyle.Render("< " + m.variants[m.current].Title + " >")
	}
	return row
}

func (m ScoreboardModel) renderBody() string {
	switch {
	case m.store == nil:
		return emptyStyle.Render("Scores are unavailable: no database.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores: " + m.loadErr.Error())
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games %d   Best %d   Best tile %d   Avg %.0f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.BestTile, m.stats.AvgScore)
}

// Rows returns the rows currently shown in the table.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

// Variant returns the variant whose scores are shown.
func (m ScoreboardModel) Variant() registry.Variant {
	return m.variants[m.current]
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, variantID string) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height, variantID), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
