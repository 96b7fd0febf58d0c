package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/ui/styles"
)

// RenderControls draws the browse and start buttons, enabled from state alone.
func RenderControls(state core.State) string {
	browse := styles.BrowseButtonStyle(state.BrowseEnabled()).Render("[b] browse")
	start := styles.StartButtonStyle(state.StartEnabled()).Render("[s] start")
	return lipgloss.JoinHorizontal(lipgloss.Top, browse, start)
}
