package components

import (
	"strings"

	"empctl/internal/tui/design"
	"empctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const defaultHeaderWidth = 80

// Header is the single top line: app title, the current page and, flush
// right, whatever context the caller passes (the API root).
type Header struct {
	Title        string
	Subtitle     string
	SpinnerView  string
	RightContent string
	Width        int
}

func NewHeader(title string) *Header {
	return &Header{Title: title, Width: defaultHeaderWidth}
}

func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithSpinner prefixes the title with an in-flight indicator.
func (h *Header) WithSpinner(view string) *Header {
	h.SpinnerView = view
	return h
}

func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

func (h *Header) left() string {
	parts := make([]string, 0, 4)
	if h.SpinnerView != "" {
		parts = append(parts, h.SpinnerView)
	}
	parts = append(parts, h.Title)
	if h.Subtitle != "" {
		parts = append(parts, design.DimStyle.Render("·"), design.TextSecondaryStyle.Render(h.Subtitle))
	}
	return strings.Join(parts, " ")
}

func (h *Header) Render() string {
	inner := h.Width - design.HeaderStyle.GetHorizontalFrameSize()
	line := h.left()

	if h.RightContent != "" {
		gap := inner - lipgloss.Width(line) - lipgloss.Width(h.RightContent)
		if gap >= 2 {
			line += strings.Repeat(" ", gap) + h.RightContent
		} else {
			// right side is dropped before the title is cut
			line = utils.TruncateString(line, inner)
		}
	}

	return design.HeaderStyle.Width(h.Width).MaxWidth(h.Width).Render(line)
}
