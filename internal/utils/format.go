package utils

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count for humans, e.g. "1.2 MB".
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// ShortPath shows paths under the working directory relative to it.
func ShortPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	wd, err := filepath.Abs(".")
	if err != nil {
		return abs
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}
