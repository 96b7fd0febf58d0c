// Package download writes processed workbooks to the local output directory.
package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rorical/SheetRelay/internal/logging"
)

// SpreadsheetMIME is the content type of every processed file.
const SpreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxCollisions bounds the " (n)" suffix search.
const maxCollisions = 1000

// Saver writes files into Dir without ever overwriting an existing file.
type Saver struct {
	Dir string
	log *logging.Logger
}

func NewSaver(dir string, log *logging.Logger) *Saver {
	return &Saver{Dir: dir, log: log}
}

// Save writes data under name and returns the final path. The bytes go to a
// temp file first which is renamed into place or removed.
func (s *Saver) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, ".sheetrelay-*.part")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write processed file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write processed file: %w", err)
	}

	dest, err := s.freePath(name)
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return "", fmt.Errorf("failed to move processed file into place: %w", err)
	}

	s.log.Info().Str("path", dest).Str("mime", SpreadsheetMIME).Int("bytes", len(data)).Msg("download saved")
	return dest, nil
}

// freePath returns Dir/name, or Dir/"base (n).ext" for the first free n.
func (s *Saver) freePath(name string) (string, error) {
	name = filepath.Base(name)
	candidate := filepath.Join(s.Dir, name)
	if !exists(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= maxCollisions; i++ {
		candidate = filepath.Join(s.Dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free file name for %s in %s", name, s.Dir)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
