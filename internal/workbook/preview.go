// Package workbook reads a light summary of a selected workbook for display.
// It never validates or alters the file.
package workbook

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xuri/excelize/v2"

	"github.com/Rorical/SheetRelay/internal/models"
)

// ErrUnsupported is returned for legacy .xls workbooks, which excelize does
// not read.
var ErrUnsupported = errors.New("preview is only available for .xlsx workbooks")

// Sheet is one worksheet of a summary.
type Sheet struct {
	Name      string
	Dimension string // e.g. "A1:D20", empty for an empty sheet
}

// Summary lists the sheets of a workbook in order.
type Summary struct {
	Sheets []Sheet
}

// Names returns the sheet names.
func (s Summary) Names() []string {
	names := make([]string, len(s.Sheets))
	for i, sh := range s.Sheets {
		names[i] = sh.Name
	}
	return names
}

// Summarize opens path read-only and lists its sheets.
func Summarize(path string) (Summary, error) {
	if !strings.HasSuffix(path, ".xlsx") {
		return Summary{}, ErrUnsupported
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var summary Summary
	for _, name := range f.GetSheetList() {
		dim, err := f.GetSheetDimension(name)
		if err != nil {
			dim = ""
		}
		summary.Sheets = append(summary.Sheets, Sheet{Name: name, Dimension: dim})
	}
	return summary, nil
}

// PreviewMsg carries the result of PreviewCmd.
type PreviewMsg struct {
	Path    string
	Summary Summary
	Err     error
}

// PreviewCmd summarizes file off the UI goroutine.
func PreviewCmd(file models.SelectedFile) tea.Cmd {
	return func() tea.Msg {
		summary, err := Summarize(file.Path)
		return PreviewMsg{Path: file.Path, Summary: summary, Err: err}
	}
}
