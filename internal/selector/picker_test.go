package selector

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openPicker opens a picker on a directory holding a_notes.csv and
// b_book.xlsx and feeds it the directory listing.
func openPicker(t *testing.T) (*Picker, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_notes.csv"), []byte("a"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_book.xlsx"), []byte("b"), 0600))

	p := NewPicker(dir)
	cmd := p.Open()
	require.NotNil(t, cmd)
	_, outcome := p.Update(cmd())
	assert.Equal(t, Outcome{}, outcome)
	return &p, dir
}

func TestPicker_RejectsOtherFileTypes(t *testing.T) {
	p, _ := openPicker(t)

	_, outcome := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, outcome.File)
	assert.Equal(t, AlertBrowse, outcome.Alert)
	assert.True(t, p.IsOpen(), "a rejected pick keeps the picker open")
}

func TestPicker_SelectsSpreadsheet(t *testing.T) {
	p, dir := openPicker(t)

	_, outcome := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, Outcome{}, outcome)

	_, outcome = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, outcome.File)
	assert.Empty(t, outcome.Alert)
	assert.Equal(t, filepath.Join(dir, "b_book.xlsx"), outcome.File.Path)
	assert.Equal(t, "b_book.xlsx", outcome.File.Name)
	assert.False(t, p.IsOpen())
}

func TestPicker_ClosedByDefault(t *testing.T) {
	p := NewPicker(t.TempDir())
	assert.False(t, p.IsOpen())
	require.NotNil(t, p.Open())
	assert.True(t, p.IsOpen())
	p.Close()
	assert.False(t, p.IsOpen())
}
