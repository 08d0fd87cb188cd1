package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units, in terminal cells.
const (
	SpaceXS = 1

	MinContentWidth = 40
	MaxDialogWidth  = 60
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Base Styles - Foundation for all components
var (
	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	AppStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS)
)

// Component Styles - Reusable component definitions
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorBorderFocus)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceXS)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceXS)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Background(ColorPrimary).
			Foreground(ColorBackground).
			Bold(true)

	ButtonDangerStyle = ButtonStyle.
				Background(ColorError)

	ButtonSecondaryStyle = ButtonStyle.
				Background(ColorSurfaceAlt).
				Foreground(ColorText).
				Bold(false)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(ColorBorder)
)

// Table styles for the employee list.
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextSecondary)

	TableRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TableCursorRowStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorHighlight).
				Bold(true)

	CheckboxOnStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// Form styles.
var (
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	FieldLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	FieldValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	DialogStyle = CenteredOverlayContainerStyle.
			BorderForeground(ColorError)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBackgroundOverlay).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

// Initialize applies the configured theme: "dark", "light" or "auto"
// (terminal detection).
func Initialize(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "auto":
		// lipgloss detects the background itself.
	default:
		lipgloss.SetHasDarkBackground(true)
	}
}
