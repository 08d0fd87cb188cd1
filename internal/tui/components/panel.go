package components

import (
	"strings"

	"empctl/internal/tui/design"
	"empctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeError
)

// Panel is a bordered box with a title line. Height follows the content.
type Panel struct {
	Title   string
	Content string
	Width   int
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinContentWidth,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithWidth sets the outer width
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinContentWidth {
		p.Width = design.MinContentWidth
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()

	var lines []string
	if p.Title != "" {
		titleStyle := design.TitleStyle
		if p.Focused {
			titleStyle = titleStyle.Foreground(design.ColorPrimary)
		}
		lines = append(lines, titleStyle.Render(utils.TruncateString(p.Title, innerWidth)))
	}
	if p.Content != "" {
		for _, line := range strings.Split(p.Content, "\n") {
			if lipgloss.Width(line) > innerWidth {
				line = utils.TruncateString(line, innerWidth)
			}
			lines = append(lines, line)
		}
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) getStyle() lipgloss.Style {
	style := design.PanelStyle
	if p.Focused {
		style = design.PanelFocusedStyle
	}
	if p.Type == PanelTypeError {
		style = style.BorderForeground(design.ColorError)
	}
	return style
}
