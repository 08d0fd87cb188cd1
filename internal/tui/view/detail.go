package view

import (
	"strings"

	"empctl/internal/employee"
	"empctl/internal/tui/components"
	"empctl/internal/tui/design"
	"empctl/internal/tui/model"
	"empctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

func renderDetailPage(m *model.Model, width, height int) string {
	e, ok := m.CurrentEmployee()
	if !ok {
		return design.DimStyle.Render("No employee selected.")
	}

	panelWidth := min(width, 2*design.MaxDialogWidth)
	lines := []string{
		design.TitleStyle.Render("Employee Details"),
		design.SubtitleStyle.Render("View or edit employee information"),
		design.DimStyle.Render("ID: " + e.ID),
		"",
	}

	if m.Detail.Editing {
		body := strings.Join(renderFieldInputs(m.Detail.Inputs, m.Detail.Focus, nil), "\n")
		lines = append(lines, components.NewPanel("Editing").WithContent(body).WithWidth(panelWidth).SetFocused(true).Render())
	} else {
		for _, section := range []employee.Section{employee.SectionPersonal, employee.SectionAddress} {
			lines = append(lines, components.NewPanel(section.String()).
				WithContent(renderSection(e, section)).
				WithWidth(panelWidth).
				Render())
		}
	}

	lines = append(lines, "", renderDetailActions(m))
	page := strings.Join(lines, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, page)
}

func renderSection(e employee.Employee, section employee.Section) string {
	var rows []string
	for _, f := range employee.Fields() {
		if f.Section != section {
			continue
		}
		rows = append(rows, design.FieldLabelStyle.Render(utils.FitCell(f.Label, labelWidth))+" "+
			design.FieldValueStyle.Render(e.Get(f.Key)))
	}
	return strings.Join(rows, "\n")
}

func renderDetailActions(m *model.Model) string {
	switch {
	case m.Detail.Saving:
		return m.Spinner.View() + " Saving..."
	case m.Detail.Editing:
		return design.ButtonStyle.Render("[ctrl+s] Save") + " " + design.ButtonSecondaryStyle.Render("[esc] Back")
	default:
		return strings.Join([]string{
			design.ButtonSecondaryStyle.Render("[b] Back"),
			design.ButtonStyle.Render("[e] Edit"),
			design.ButtonSecondaryStyle.Render("[E] Edit in form"),
			design.ButtonSecondaryStyle.Render("[y] Copy"),
		}, " ")
	}
}
