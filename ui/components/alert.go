package components

import (
	"github.com/Rorical/SheetRelay/ui/styles"
)

func RenderAlert(text string, width int) string {
	return styles.AlertStyle(width).Render(text + "\n\n[enter] ok")
}
