package core

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeFile turns raw workbook bytes into the text form sent to the function.
func EncodeFile(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeFile reverses EncodeFile. The result is byte-exact.
//
// Input is read the way a browser's atob reads it: ASCII whitespace is
// ignored and padding is optional, but a padded text must be a multiple of
// four long.
func DecodeFile(text string) ([]byte, error) {
	text = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, text)
	if len(text)%4 == 0 {
		text = strings.TrimSuffix(text, "=")
		text = strings.TrimSuffix(text, "=")
	}

	data, err := base64.RawStdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("decode processed file: %w", err)
	}
	return data, nil
}
