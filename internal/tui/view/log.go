package view

import (
	"strings"

	"empctl/internal/tui/design"
	"empctl/internal/tui/model"
	"empctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

func renderLogOverlay(m *model.Model, width, height int) string {
	title := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.LogOverlayStyle.
		Width(width - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(height - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)
}

// LogViewportSize returns the viewport size that fits the log overlay.
func LogViewportSize(width, height int) (int, int) {
	w := width - design.AppStyle.GetHorizontalFrameSize() - design.LogOverlayStyle.GetHorizontalFrameSize()
	title := design.LogPanelTitleStyle.Render("x")
	h := height - design.AppStyle.GetVerticalFrameSize() - design.LogOverlayStyle.GetVerticalFrameSize() - lipgloss.Height(title)
	return max(w, 1), max(h, 1)
}

// PrepareLogContent cuts lines to maxWidth and applies color styles based on
// log level keywords. A maxWidth of 0 leaves lines whole.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		if maxWidth > 0 {
			rawLine = utils.TruncateString(rawLine, maxWidth)
		}
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
