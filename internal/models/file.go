package models

import (
	"path/filepath"
	"strings"
)

// SelectedFile is a spreadsheet chosen by the user. Its bytes stay on disk
// until the transfer coordinator reads them.
type SelectedFile struct {
	Path string // Absolute or working-directory relative path
	Name string // Display name, also used to derive the download name
	Ext  string // "xlsx" or "xls"
	Size int64  // Size in bytes at selection time, 0 if unknown
}

// NewSelectedFile builds a SelectedFile from a path. The caller is expected to
// have validated the name already.
func NewSelectedFile(path string, size int64) SelectedFile {
	name := filepath.Base(path)
	return SelectedFile{
		Path: path,
		Name: name,
		Ext:  strings.TrimPrefix(filepath.Ext(name), "."),
		Size: size,
	}
}

// RemoteResult is the decoded processed workbook. It only lives while the
// download is being written.
type RemoteResult struct {
	FileName string
	Data     []byte
}
