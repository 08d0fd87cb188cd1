package view

import (
	"empctl/internal/tui/design"
	"empctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderConfirmDialog(m *model.Model, width int) string {
	d := m.List.Confirm
	w := min(width-4, design.MaxDialogWidth)

	actions := design.ButtonSecondaryStyle.Render("[n] Cancel") + " " + design.ButtonDangerStyle.Render("[y] Delete")
	if m.List.Deleting {
		actions = m.Spinner.View() + " Deleting..."
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		design.TitleStyle.Render(d.Title()),
		"",
		lipgloss.NewStyle().Width(w-design.DialogStyle.GetHorizontalFrameSize()).Render(d.Body()),
		"",
		actions,
	)
	return design.DialogStyle.Width(w - design.DialogStyle.GetHorizontalBorderSize()).Render(content)
}

func renderHelpOverlay(m *model.Model, width int) string {
	h := m.Help
	h.ShowAll = true
	h.Width = width - design.CenteredOverlayContainerStyle.GetHorizontalFrameSize()

	content := lipgloss.JoinVertical(lipgloss.Left,
		design.HelpTitleStyle.Render("Keyboard Shortcuts"),
		h.View(m.Keys.HelpFor(m.Nav.Page, m.Detail.Editing)),
		"",
		design.DimStyle.Render("?/esc close"),
	)
	return design.CenteredOverlayContainerStyle.Render(content)
}
