package view

import (
	"empctl/internal/tui/components"
	"empctl/internal/tui/model"
)

func renderStatusBar(m *model.Model, width int) string {
	keys := m.Keys.HelpFor(m.Nav.Page, m.Detail.Editing)
	return components.NewStatusBar(width).
		WithLeftText(m.Help.ShortHelpView(keys.ShortHelp())).
		WithRightText("? help • L logs").
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}
