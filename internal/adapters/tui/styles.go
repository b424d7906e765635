package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/glance/internal/ui/style"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Iris)

	infoStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	footerStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)
)
