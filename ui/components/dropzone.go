package components

import (
	"strings"

	"github.com/Rorical/SheetRelay/internal/models"
	"github.com/Rorical/SheetRelay/internal/utils"
	"github.com/Rorical/SheetRelay/ui/styles"
)

// RenderDropZone shows the selected file, or the invitation to pick one.
func RenderDropZone(file *models.SelectedFile, preview []string, processing bool, width int) string {
	var b strings.Builder
	if file == nil {
		b.WriteString(styles.TitleStyle().Render("Please choose a spreadsheet."))
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle().Render("Or drag the file onto this window"))
	} else {
		b.WriteString(styles.TitleStyle().Render("File selected!"))
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle().Render(file.Name + "  (" + utils.FormatSize(file.Size) + ")"))
		b.WriteString("\n\n")
		b.WriteString(styles.BadgeStyle().Render("Excel ready to process"))
		if len(preview) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.HintStyle().Render("sheets: " + strings.Join(preview, ", ")))
		}
	}
	return styles.DropZoneStyle(width, file != nil, processing).Render(b.String())
}
