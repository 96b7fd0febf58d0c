package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/SheetRelay/internal/eventbus"
	"github.com/Rorical/SheetRelay/internal/meter"
	"github.com/Rorical/SheetRelay/internal/workbook"
)

func HandleUpdateWithEventBus(s *Session, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(s, msg, eb)
	case tea.WindowSizeMsg:
		return HandleWindowSizeMsg(s, msg)
	case meter.TickMsg:
		return s.Meter.Update(msg)
	case workbook.PreviewMsg:
		HandlePreview(s, msg)
		return nil
	case CoreEventMsg:
		return HandleCoreEvent(s, msg)
	}

	// Directory listings and other picker internals.
	if s.Picker.IsOpen() {
		cmd, outcome := s.Picker.Update(msg)
		return tea.Batch(cmd, handleOutcome(s, outcome))
	}
	return nil
}
