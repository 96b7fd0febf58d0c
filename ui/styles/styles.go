package styles

import "github.com/charmbracelet/lipgloss"

const (
	accent  = lipgloss.Color("208")
	muted   = lipgloss.Color("245")
	success = lipgloss.Color("42")
	danger  = lipgloss.Color("196")
	info    = lipgloss.Color("33")
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Bold(true)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted)
}

func DropZoneStyle(width int, active, disabled bool) lipgloss.Style {
	border := lipgloss.Color("240")
	if active {
		border = accent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Align(lipgloss.Center).
		Width(width)
	if disabled {
		style = style.Faint(true)
	}
	return style
}

func ButtonStyle(enabled bool, color lipgloss.Color) lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 3).
		MarginRight(2).
		Bold(true)
	if enabled {
		return style.Foreground(lipgloss.Color("0")).Background(color)
	}
	return style.Foreground(lipgloss.Color("243")).Background(lipgloss.Color("236"))
}

func BrowseButtonStyle(enabled bool) lipgloss.Style {
	return ButtonStyle(enabled, accent)
}

func StartButtonStyle(enabled bool) lipgloss.Style {
	return ButtonStyle(enabled, success)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)
}

func BadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(success)
}

func LoadingLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(info)
}

func SuccessStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(success).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(success).
		Padding(0, 1).
		Width(width)
}

func ErrorStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(danger).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(danger).
		Padding(0, 1).
		Width(width)
}

func AlertStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(danger).
		Padding(1, 3).
		Align(lipgloss.Center).
		Width(width)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}
