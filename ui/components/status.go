package components

import (
	"github.com/Rorical/SheetRelay/ui/styles"
)

func RenderStatus(status string, notice string, width int) string {
	return styles.StatusStyle(width).Render("[" + status + "] " + notice)
}
