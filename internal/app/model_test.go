package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/internal/dispatcher"
	"github.com/Rorical/SheetRelay/internal/eventbus"
	"github.com/Rorical/SheetRelay/internal/models"
	"github.com/Rorical/SheetRelay/internal/selector"
	"github.com/Rorical/SheetRelay/internal/update"
)

func newTestModel(t *testing.T, serviceSet bool) (*AppModel, *update.Session) {
	t.Helper()
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	t.Cleanup(func() {
		disp.Stop()
		eb.Close()
	})
	session := update.NewSession(t.TempDir(), serviceSet)
	return newAppModel(session, disp), session
}

func TestView_IdleShowsHint(t *testing.T) {
	m, _ := newTestModel(t, true)

	view := m.View()
	assert.Contains(t, view, "Waiting for a file")
	assert.Contains(t, view, "[IDLE]")
	assert.NotContains(t, view, "not configured")
}

func TestView_UnconfiguredService(t *testing.T) {
	m, _ := newTestModel(t, false)
	assert.Contains(t, m.View(), "not configured")
}

func TestView_AlertReplacesScreen(t *testing.T) {
	m, s := newTestModel(t, true)
	s.UI.Alert = selector.AlertBrowse

	view := m.View()
	assert.Contains(t, view, "Please select")
	assert.NotContains(t, view, "[IDLE]")
}

func TestView_ErrorPanel(t *testing.T) {
	m, s := newTestModel(t, true)
	file := models.NewSelectedFile("/tmp/book.xlsx", 10)
	s.State = core.Reduce(s.State, core.FileChosen{File: file})
	s.State = core.Reduce(s.State, core.StartRequested{})
	s.State = core.Reduce(s.State, core.TransferFailed{Message: "boom"})

	view := m.View()
	assert.Contains(t, view, "Oops!")
	assert.Contains(t, view, "boom")
	assert.NotContains(t, view, "Waiting for a file...")
}

func TestUpdate_WindowSize(t *testing.T) {
	m, s := newTestModel(t, true)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, s.UI.Width)
	assert.Equal(t, 40, s.UI.Height)
}
