package components

import (
	"strings"
	"testing"

	"empctl/internal/tui/design"
	"empctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanel_Render_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		title   string
		content string
	}{
		{name: "zero width", width: 0, title: "Address", content: "City: London"},
		{name: "negative width", width: -10, title: "Address", content: "City: London"},
		{name: "empty content", width: 50, title: "Address"},
		{name: "no title", width: 50, content: "City: London"},
		{name: "very long content", width: 45, title: "Address", content: strings.Repeat("Springfield ", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel(tt.title).WithContent(tt.content).WithWidth(tt.width)

			var out string
			assert.NotPanics(t, func() { out = p.Render() })

			want := tt.width
			if want < design.MinContentWidth {
				want = design.MinContentWidth
			}
			for _, line := range strings.Split(out, "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), want)
			}
		})
	}
}

func TestPanel_RenderShowsTitleAndContent(t *testing.T) {
	out := NewPanel("Personal Information").
		WithContent("First Name: Ada\nLast Name: Lovelace").
		WithWidth(60).
		SetFocused(true).
		Render()

	assert.Contains(t, out, "Personal Information")
	assert.Contains(t, out, "First Name: Ada")
	assert.Contains(t, out, "Last Name: Lovelace")
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("Employees").
		WithSubtitle("3 employees registered").
		WithRightContent("http://localhost:5000").
		WithWidth(80).
		Render()

	assert.Contains(t, out, "Employees")
	assert.Contains(t, out, "3 employees registered")
	assert.Contains(t, out, "http://localhost:5000")
	assert.Equal(t, 80, lipgloss.Width(out))

	narrow := NewHeader("Employees").WithRightContent("http://localhost:5000").WithWidth(20).Render()
	assert.NotContains(t, narrow, "localhost")
}

func TestStatusBar_Render(t *testing.T) {
	hints := NewStatusBar(60).WithLeftText("? help").WithRightText("api: up").Render()
	assert.Contains(t, hints, "? help")
	assert.Contains(t, hints, "api: up")

	msg := NewStatusBar(60).
		WithLeftText("? help").
		WithMessage("Employee updated successfully!", model.StatusBarSuccess).
		Render()
	assert.Contains(t, msg, "Employee updated successfully!")
	assert.NotContains(t, msg, "? help")

	empty := NewStatusBar(60).WithLeftText("? help").WithMessage("", model.StatusBarError).Render()
	assert.Contains(t, empty, "? help")
}
