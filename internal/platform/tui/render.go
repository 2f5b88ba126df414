package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/grid"
)

// Terminal footprint of one tile.
const (
	cellWidth  = 7
	cellHeight = 3
)

var (
	boardColor = lipgloss.Color("243")
	emptyColor = lipgloss.Color("248")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	overStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// tilePalette maps tile values to foreground/background colours.
// Values past the table reuse the last entry.
var tilePalette = []struct {
	value  int
	fg, bg lipgloss.Color
}{
	{2, "236", "255"},
	{4, "236", "230"},
	{8, "255", "215"},
	{16, "255", "209"},
	{32, "255", "203"},
	{64, "255", "196"},
	{128, "236", "228"},
	{256, "236", "227"},
	{512, "236", "226"},
	{1024, "255", "220"},
	{2048, "255", "214"},
	{4096, "255", "129"},
}

// tileStyle returns the style for a tile value; 0 is an empty cell.
func tileStyle(value int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(cellWidth).
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)
	if value == 0 {
		return s.Background(emptyColor)
	}
	entry := tilePalette[len(tilePalette)-1]
	for _, p := range tilePalette {
		if p.value == value {
			entry = p
			break
		}
	}
	return s.Foreground(entry.fg).Background(entry.bg)
}

// gapSize scales the grid spacer to terminal cells along one axis.
func gapSize(g grid.Grid, cells int) int {
	if g.TileSize <= 0 || g.Spacer <= 0 {
		return 0
	}
	return int(math.Round(g.Spacer / g.TileSize * float64(cells)))
}

// RenderBoard draws the board with row 0 of the snapshot at the top.
// Spacing follows the grid's tile/spacer ratio.
func RenderBoard(snap engine.Snapshot, g grid.Grid) string {
	gapX, gapY := gapSize(g, cellWidth), gapSize(g, cellHeight)
	filler := lipgloss.NewStyle().Background(boardColor)

	rowWidth := snap.Size*cellWidth + (snap.Size-1)*gapX
	rows := make([]string, 0, 2*snap.Size)
	for r, row := range snap.Rows() {
		if r > 0 && gapY > 0 {
			rows = append(rows, filler.Width(rowWidth).Height(gapY).Render(""))
		}
		cells := make([]string, 0, 2*len(row))
		for c, v := range row {
			if c > 0 && gapX > 0 {
				cells = append(cells, filler.Width(gapX).Height(cellHeight).Render(""))
			}
			label := ""
			if v != 0 {
				label = strconv.Itoa(v)
			}
			cells = append(cells, tileStyle(v).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.NewStyle().
		Background(boardColor).
		Padding(gapY, gapX).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderHUD draws the title and score line.
func RenderHUD(snap engine.Snapshot, title string) string {
	head := titleStyle.Render(strings.ToUpper(title))
	stats := hudStyle.Render(fmt.Sprintf("Score %d   Best %d   Max %d   Moves %d",
		snap.Score, snap.Best, snap.MaxTile, snap.Moves))
	return lipgloss.JoinVertical(lipgloss.Center, head, stats)
}

// RenderStatus returns the game-over banner, or "" while playing.
func RenderStatus(snap engine.Snapshot) string {
	if snap.Phase != engine.PhaseGameOver {
		return ""
	}
	return overStyle.Render(fmt.Sprintf("GAME OVER  -  final score %d  -  press r for a new game", snap.Score))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
