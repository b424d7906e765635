package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/tui"
	"go.trai.ch/glance/internal/core/domain"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_NavigationKeys(t *testing.T) {
	tests := []struct {
		key  string
		want tui.Intent
	}{
		{key: "n", want: tui.IntentNext},
		{key: "l", want: tui.IntentNext},
		{key: "right", want: tui.IntentNext},
		{key: "p", want: tui.IntentPrevious},
		{key: "h", want: tui.IntentPrevious},
		{key: "left", want: tui.IntentPrevious},
		{key: "r", want: tui.IntentRefresh},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var got []tui.Intent
			m := tui.NewModel(func(i tui.Intent) { got = append(got, i) })

			updated, cmd := m.Update(key(tt.key))
			assert.Nil(t, cmd)
			m = updated.(*tui.Model)

			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
			assert.True(t, m.Pending)
		})
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c", "esc"} {
		t.Run(k, func(t *testing.T) {
			m := tui.NewModel(nil)
			_, cmd := m.Update(key(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModel_ToggleInfo(t *testing.T) {
	m := tui.NewModel(nil)
	require.True(t, m.ShowInfo)

	m.Update(key("i"))
	assert.False(t, m.ShowInfo)
	m.Update(key("i"))
	assert.True(t, m.ShowInfo)
}

func TestModel_FrameClearsPending(t *testing.T) {
	m := tui.NewModel(func(tui.Intent) {})
	m.Update(key("n"))
	require.True(t, m.Pending)

	frame := tui.Frame{State: domain.StateLoaded, Index: 1, Total: 3}
	m.Update(frame)
	assert.False(t, m.Pending)
	assert.Equal(t, frame, m.Frame)
}

func TestModel_WindowSize(t *testing.T) {
	m := tui.NewModel(nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
}

func TestModel_NilSenderIgnoresNavigation(t *testing.T) {
	m := tui.NewModel(nil)
	m.Update(key("n"))
	assert.False(t, m.Pending)
}
