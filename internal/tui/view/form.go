package view

import (
	"strings"

	"empctl/internal/employee"
	"empctl/internal/tui/design"
	"empctl/internal/tui/model"
	"empctl/internal/tui/utils"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const labelWidth = 16

func renderFormPage(m *model.Model, width, height int) string {
	f := &m.Form
	lines := []string{
		design.TitleStyle.Render(f.Title()),
		design.SubtitleStyle.Render(f.Subtitle()),
		"",
	}
	lines = append(lines, renderFieldInputs(f.Inputs, f.Focus, f.Errors)...)
	lines = append(lines, "")

	if f.Submitting {
		lines = append(lines, m.Spinner.View()+" Saving...")
	} else {
		lines = append(lines, design.ButtonStyle.Render("[ctrl+s] Save")+" "+design.ButtonSecondaryStyle.Render("[esc] Cancel"))
	}

	form := lipgloss.NewStyle().Width(min(width, 2*design.MaxDialogWidth)).Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, form)
}

// renderFieldInputs lays out one input per field grouped by section, with any
// validation message under its field.
func renderFieldInputs(inputs []textinput.Model, focus int, errs employee.FieldErrors) []string {
	var lines []string
	section := employee.Section(-1)
	for i, field := range employee.Fields() {
		if i >= len(inputs) {
			break
		}
		if field.Section != section {
			if section != employee.Section(-1) {
				lines = append(lines, "")
			}
			section = field.Section
			lines = append(lines, design.SectionTitleStyle.Render(section.String()))
		}

		labelStyle := design.FieldLabelStyle
		if i == focus {
			labelStyle = design.FieldLabelFocusedStyle
		}
		label := labelStyle.Render(utils.FitCell(field.Label, labelWidth))
		lines = append(lines, label+" "+inputs[i].View())

		if msg, ok := errs[field.Key]; ok {
			lines = append(lines, strings.Repeat(" ", labelWidth+1)+design.FieldErrorStyle.Render(msg))
		}
	}
	return lines
}
