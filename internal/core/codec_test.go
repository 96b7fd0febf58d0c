package core

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	roundTrip := func(data []byte) bool {
		decoded, err := DecodeFile(EncodeFile(data))
		return err == nil && bytes.Equal(data, decoded)
	}
	require.NoError(t, quick.Check(roundTrip, &quick.Config{MaxCount: 500}))
}

func TestCodec_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeFile(nil))
	decoded, err := DecodeFile("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestCodec_InvalidText(t *testing.T) {
	_, err := DecodeFile("not base64!!")
	assert.Error(t, err)
}

func TestCodec_LenientInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"padded", "QUI=", "AB"},
		{"unpadded", "QUI", "AB"},
		{"tab inside", "QUJD\tRA==", "ABCD"},
		{"wrapped lines", "QUJD\r\nRA==\n", "ABCD"},
		{"spaces and form feed", " QU JD\fRA ", "ABCD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeFile(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(decoded))
		})
	}
}

func TestCodec_RejectsBadPadding(t *testing.T) {
	for _, text := range []string{"Q", "QQ===", "Q=UI", "QUI=="} {
		_, err := DecodeFile(text)
		assert.Error(t, err, text)
	}
}
