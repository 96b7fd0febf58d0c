package selector

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/internal/models"
)

// Outcome is what a selection interaction produced, if anything.
type Outcome struct {
	File  *models.SelectedFile
	Alert string
}

// Picker wraps the bubbles file picker restricted to spreadsheets.
type Picker struct {
	fp   filepicker.Model
	open bool
}

func NewPicker(startDir string) Picker {
	fp := filepicker.New()
	fp.AllowedTypes = AllowedExtensions
	fp.AutoHeight = true
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		}
	}
	fp.CurrentDirectory = startDir
	return Picker{fp: fp}
}

// Open shows the picker and starts reading the current directory.
func (p *Picker) Open() tea.Cmd {
	p.open = true
	return p.fp.Init()
}

func (p *Picker) Close() {
	p.open = false
}

func (p *Picker) IsOpen() bool {
	return p.open
}

// Update forwards msg to the file picker. A chosen spreadsheet closes the
// picker; a chosen file of another type raises the browse alert.
func (p *Picker) Update(msg tea.Msg) (tea.Cmd, Outcome) {
	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)

	if ok, path := p.fp.DidSelectFile(msg); ok {
		file, err := Load(path)
		if err != nil {
			return cmd, Outcome{Alert: alertFor(err, AlertBrowse)}
		}
		p.open = false
		return cmd, Outcome{File: &file}
	}
	if ok, _ := p.fp.DidSelectDisabledFile(msg); ok {
		return cmd, Outcome{Alert: AlertBrowse}
	}
	return cmd, Outcome{}
}

func (p *Picker) View() string {
	return p.fp.View()
}

// Drop handles a path pasted into the terminal by a drag-and-drop.
func Drop(text string) Outcome {
	path := ParseDroppedPath(text)
	if path == "" {
		return Outcome{}
	}
	file, err := Load(path)
	if err != nil {
		return Outcome{Alert: alertFor(err, AlertDrop)}
	}
	return Outcome{File: &file}
}

func alertFor(err error, invalidType string) string {
	if errors.Is(err, core.ErrInvalidFileType) {
		return invalidType
	}
	return err.Error()
}
