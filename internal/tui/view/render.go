package view

import (
	"empctl/internal/tui/components"
	"empctl/internal/tui/design"
	"empctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "empctl"

// Render renders the whole screen for m.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return ""
	}
	if m.Width == 0 || m.Height == 0 {
		return design.DimStyle.Render("Initializing... (waiting for window size)")
	}

	width := m.Width - design.AppStyle.GetHorizontalFrameSize()
	height := m.Height - design.AppStyle.GetVerticalFrameSize()

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return design.AppStyle.Render(renderLogOverlay(m, width, height))
	case model.ModeHelpOverlay:
		return design.AppStyle.Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, renderHelpOverlay(m, width)))
	}

	header := renderHeader(m, width)
	status := renderStatusBar(m, width)
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(status)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch m.Nav.Page {
	case model.PageForm:
		body = renderFormPage(m, width, bodyHeight)
	case model.PageView:
		body = renderDetailPage(m, width, bodyHeight)
	default:
		body = renderListPage(m, width, bodyHeight)
		if m.List.Confirm != nil {
			body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, renderConfirmDialog(m, width))
		}
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return design.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, status))
}

func renderHeader(m *model.Model, width int) string {
	h := components.NewHeader(appTitle).
		WithSubtitle(pageTitle(m)).
		WithRightContent(design.DimStyle.Render(m.BaseURL)).
		WithWidth(width)
	if busy(m) {
		h = h.WithSpinner(m.Spinner.View())
	}
	return h.Render()
}

func pageTitle(m *model.Model) string {
	switch m.Nav.Page {
	case model.PageForm:
		if m.Nav.IsCreating() {
			return "New Employee"
		}
		return "Edit Employee"
	case model.PageView:
		return "Employee"
	default:
		return "Employees"
	}
}

// busy reports whether any API call the user is waiting on is in flight.
func busy(m *model.Model) bool {
	return m.List.Loading || m.List.Deleting || m.Form.Submitting || m.Detail.Saving
}
