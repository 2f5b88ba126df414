package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/core"
)

func TestMenuSelectsVariant(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 40}, "classic")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().ID != "big" {
		t.Fatalf("Selected() = %v, want big", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 40}, "mini")

	for range 10 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(MenuModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(MenuModel).Selected(); got == nil || got.ID != "mini" {
		t.Errorf("Selected() = %v, want mini", got)
	}
}

func TestMenuPreviewFitsScreen(t *testing.T) {
	tall := NewMenuModel(core.RuntimeConfig{ScreenW: 120, ScreenH: 60}, "huge")
	if tall.preview() == "" {
		t.Error("a tall screen should show the board preview")
	}

	short := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 12}, "huge")
	if short.preview() != "" {
		t.Error("a short screen should hide the board preview")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "classic")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 132, Height: 50})

	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 132 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %+v, want 132x50", cfg)
	}
}
