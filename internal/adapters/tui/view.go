package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/ui/style"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

const keyHelp = "n next • p previous • i info • r refresh • q quit"

// View renders the model.
func (m *Model) View() string {
	width, height := m.Width, m.Height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}
	rows := max(height-footerLines, 1)

	body := lipgloss.Place(width, rows, lipgloss.Center, lipgloss.Center, m.body(width, rows))

	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteByte('\n')
	if m.ShowInfo {
		sb.WriteString(m.infoLine())
	}
	sb.WriteByte('\n')
	sb.WriteString(footerStyle.Render(truncate(m.footer(), width)))
	return sb.String()
}

func (m *Model) body(width, rows int) string {
	f := m.Frame
	switch {
	case f.State == domain.StateLoaded && f.Payload != nil:
		return m.preview.get(f.Payload, width, rows)
	case f.State == domain.StateFailed && f.Err != nil:
		return errorStyle.Render(style.Cross + " " + ErrorText(f.Err))
	case f.State == domain.StateLoading || m.Pending:
		return loadingStyle.Render("loading " + f.Current.Name + "…")
	default:
		return infoStyle.Render("no image")
	}
}

func (m *Model) infoLine() string {
	f := m.Frame
	if f.Current.Locator == "" {
		return ""
	}
	rest := strings.TrimPrefix(InfoLine(f), f.Current.Name)
	return nameStyle.Render(f.Current.Name) + infoStyle.Render(rest)
}

func (m *Model) footer() string {
	s := m.Frame.Stats
	cache := fmt.Sprintf("cache %d %s %s / %s",
		s.Count, style.Bullet, humanize.IBytes(uint64(max(s.TotalBytes, 0))), humanize.IBytes(uint64(max(s.Budget, 0))))
	return cache + "   " + keyHelp
}

// InfoLine describes the current image as "name • WxH • size • n/N".
// Unknown parts are omitted.
func InfoLine(f Frame) string {
	parts := []string{f.Current.Name}
	if f.Payload != nil {
		parts = append(parts, fmt.Sprintf("%dx%d", f.Payload.Width, f.Payload.Height))
	}
	if f.Current.Size > 0 {
		parts = append(parts, humanize.IBytes(uint64(f.Current.Size)))
	}
	if f.Index >= 0 && f.Total > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", f.Index+1, f.Total))
	}
	return strings.Join(parts, " "+style.Bullet+" ")
}

// ErrorText returns a short user facing description of err.
func ErrorText(err error) string {
	var decErr *domain.DecodeError
	if errors.As(err, &decErr) {
		msg := decErr.Kind.Sentinel().Error()
		if decErr.Locator != "" {
			msg += ": " + filepath.Base(decErr.Locator)
		}
		if decErr.Detail != "" {
			msg += " (" + decErr.Detail + ")"
		}
		return msg
	}

	var navErr *domain.NavigationError
	if errors.As(err, &navErr) {
		return navErr.Message()
	}

	return err.Error()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
