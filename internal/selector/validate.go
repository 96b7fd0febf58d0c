// Package selector implements spreadsheet selection by picker and by drop.
package selector

import (
	"fmt"
	"net/url"
	"os"
	"runtime"
	"strings"

	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/internal/models"
)

// AllowedExtensions are matched as case-sensitive suffixes of the name.
var AllowedExtensions = []string{".xlsx", ".xls"}

const (
	AlertBrowse = "Please select a valid Excel file."
	AlertDrop   = "Please drop only Excel files (.xlsx or .xls)."
)

// Validate accepts names ending in .xlsx or .xls. Nothing else is checked.
func Validate(name string) error {
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(name, ext) {
			return nil
		}
	}
	return core.NewInvalidFileError(name)
}

// Load validates path and stats it into a SelectedFile.
func Load(path string) (models.SelectedFile, error) {
	if err := Validate(path); err != nil {
		return models.SelectedFile{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("cannot open %s: %w", path, err)
	}
	if info.IsDir() {
		return models.SelectedFile{}, fmt.Errorf("%s is a directory", path)
	}
	return models.NewSelectedFile(path, info.Size()), nil
}

// ParseDroppedPath turns the text a terminal pastes when a file is dropped on
// it into a path. Only the first file of a multi-file drop is kept.
func ParseDroppedPath(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '\'' || first == '"') && first == last {
			text = text[1 : len(text)-1]
		}
	}
	if rest, ok := strings.CutPrefix(text, "file://"); ok {
		if unescaped, err := url.PathUnescape(rest); err == nil {
			rest = unescaped
		}
		return rest
	}
	if runtime.GOOS != "windows" {
		text = unescapeShell(text)
	}
	return text
}

// unescapeShell drops the backslashes terminals put before spaces and other
// special characters.
func unescapeShell(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
