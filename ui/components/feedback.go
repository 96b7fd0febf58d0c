package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/internal/meter"
	"github.com/Rorical/SheetRelay/internal/utils"
	"github.com/Rorical/SheetRelay/ui/styles"
)

// RenderFeedback renders at most one panel, chosen by state.Panel().
func RenderFeedback(state core.State, m meter.Meter, bar progress.Model, savedPath string, width int) string {
	switch state.Panel() {
	case core.PanelIdleHint:
		return styles.HintStyle().Render("• Waiting for a file...")
	case core.PanelLoading:
		return RenderLoading(m, bar)
	case core.PanelSuccess:
		msg := "Processing finished! The processed file was downloaded."
		if savedPath != "" {
			msg += "\n" + utils.ShortPath(savedPath)
		}
		return styles.SuccessStyle(width).Render(msg)
	case core.PanelError:
		return styles.ErrorStyle(width).Render("Oops! Something went wrong\n" + state.Err + "\n\n[r] try again")
	}
	return ""
}

// RenderLoading is the pseudo-progress meter. It renders nothing when the
// meter is stopped.
func RenderLoading(m meter.Meter, bar progress.Model) string {
	if !m.Running() {
		return ""
	}
	label := styles.LoadingLabelStyle().Render(fmt.Sprintf("Processing data... %d%%", int(math.Round(m.Value()))))
	hint := styles.HintStyle().Render("This can take a few seconds depending on the size of the spreadsheet.")
	return label + "\n" + bar.ViewAs(m.Percent()) + "\n" + hint
}
