package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Rorical/SheetRelay/internal/models"
)

func writeWorkbook(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Data", "A1", "region"))
	require.NoError(t, f.SetCellValue("Data", "B2", 42))

	path := filepath.Join(dir, "report.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSummarize_ListsSheetsInOrder(t *testing.T) {
	path := writeWorkbook(t, t.TempDir())

	summary, err := Summarize(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sheet1", "Data"}, summary.Names())
}

func TestSummarize_LegacyWorkbookUnsupported(t *testing.T) {
	_, err := Summarize("old.xls")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSummarize_CorruptWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0600))

	_, err := Summarize(path)
	assert.Error(t, err)
}

func TestPreviewCmd_CarriesPath(t *testing.T) {
	path := writeWorkbook(t, t.TempDir())

	msg := PreviewCmd(models.NewSelectedFile(path, 0))()
	preview, ok := msg.(PreviewMsg)
	require.True(t, ok)
	assert.Equal(t, path, preview.Path)
	assert.NoError(t, preview.Err)
	assert.Contains(t, preview.Summary.Names(), "Data")
}
