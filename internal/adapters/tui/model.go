// Package tui implements the interactive terminal viewer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

// Intent is a navigation request emitted by a key press.
type Intent uint8

const (
	// IntentNext requests the next image.
	IntentNext Intent = iota
	// IntentPrevious requests the previous image.
	IntentPrevious
	// IntentRefresh requests a rescan of the folder.
	IntentRefresh
)

// Frame is the state shown by the viewer. It is delivered as a tea.Msg.
type Frame struct {
	State   domain.LoadState
	Current domain.ResourceDescriptor
	Payload *domain.Payload
	Index   int
	Total   int
	Err     error
	Stats   ports.CacheStats
}

// footerLines is the number of rows below the preview.
const footerLines = 2

// Model represents the viewer state.
type Model struct {
	Frame    Frame
	Width    int
	Height   int
	ShowInfo bool
	// Pending is set between a key press and the next Frame.
	Pending bool

	send    func(Intent)
	preview previewCache
}

// NewModel creates a Model that reports navigation intents to send.
func NewModel(send func(Intent)) *Model {
	return &Model{
		send:     send,
		ShowInfo: true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case Frame:
		m.Frame = msg
		m.Pending = false
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", "right", "l", " ":
		m.emit(IntentNext)
	case "p", "left", "h":
		m.emit(IntentPrevious)
	case "r":
		m.emit(IntentRefresh)
	case "i":
		m.ShowInfo = !m.ShowInfo
	}
	return m, nil
}

func (m *Model) emit(intent Intent) {
	if m.send == nil {
		return
	}
	m.Pending = true
	m.send(intent)
}
