package update

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/internal/eventbus"
	"github.com/Rorical/SheetRelay/internal/meter"
	"github.com/Rorical/SheetRelay/internal/models"
	"github.com/Rorical/SheetRelay/internal/selector"
	"github.com/Rorical/SheetRelay/internal/workbook"
)

// Session is everything the root controller owns.
type Session struct {
	State  core.State
	UI     models.AppModel
	Meter  meter.Meter
	Picker selector.Picker
	Keys   KeyMap
}

// NewSession returns an IDLE session.
func NewSession(startDir string, serviceSet bool) *Session {
	s := &Session{
		State:  core.NewState(),
		UI:     models.AppModel{Notice: "Waiting for a file", ServiceSet: serviceSet},
		Meter:  meter.New(),
		Picker: selector.NewPicker(startDir),
		Keys:   DefaultKeyMap(),
	}
	s.Keys.Gate(s.State)
	return s
}

// apply runs the reducer and keeps derived UI state in step.
func (s *Session) apply(ev core.Event) {
	s.State = core.Reduce(s.State, ev)
	s.Keys.Gate(s.State)
	s.UI.Notice = noticeFor(s.State)
}

func noticeFor(st core.State) string {
	switch st.Status {
	case models.StatusReady:
		return "Ready: " + st.File.Name
	case models.StatusProcessing:
		return "Processing " + st.File.Name
	case models.StatusSuccess:
		return "Done"
	case models.StatusError:
		return "Failed"
	}
	return "Waiting for a file"
}

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(s *Session, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}

	// The alert is blocking: nothing else reacts until it is dismissed.
	if s.UI.Alert != "" {
		if key.Matches(keyMsg, s.Keys.Dismiss) {
			s.UI.Alert = ""
		}
		return nil
	}

	if keyMsg.Paste {
		return HandleDrop(s, string(keyMsg.Runes))
	}

	if s.Picker.IsOpen() {
		if key.Matches(keyMsg, s.Keys.Close) {
			s.Picker.Close()
			s.UI.Browsing = false
			return nil
		}
		cmd, outcome := s.Picker.Update(keyMsg)
		return tea.Batch(cmd, handleOutcome(s, outcome))
	}

	switch {
	case key.Matches(keyMsg, s.Keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, s.Keys.Browse):
		return OpenBrowser(s)
	case key.Matches(keyMsg, s.Keys.Start):
		return StartTransfer(s, eb)
	case key.Matches(keyMsg, s.Keys.Retry):
		s.apply(core.RetryRequested{})
	}
	return nil
}

// OpenBrowser shows the file picker unless a transfer is running.
func OpenBrowser(s *Session) tea.Cmd {
	if !s.State.BrowseEnabled() {
		return nil
	}
	s.UI.Browsing = true
	return s.Picker.Open()
}

// HandleDrop treats pasted text as a dropped file. Drops are ignored while a
// transfer is running.
func HandleDrop(s *Session, text string) tea.Cmd {
	if !s.State.BrowseEnabled() {
		return nil
	}
	return handleOutcome(s, selector.Drop(text))
}

func handleOutcome(s *Session, outcome selector.Outcome) tea.Cmd {
	if outcome.Alert != "" {
		s.UI.Alert = outcome.Alert
		return nil
	}
	if outcome.File == nil {
		return nil
	}
	return SelectFile(s, *outcome.File)
}

// SelectFile feeds a validated file to the reducer and starts a preview.
func SelectFile(s *Session, file models.SelectedFile) tea.Cmd {
	if !s.State.BrowseEnabled() {
		return nil
	}
	s.Picker.Close()
	s.UI.Browsing = false
	s.UI.Preview = nil
	s.UI.SavedPath = ""
	s.apply(core.FileChosen{File: file})
	return workbook.PreviewCmd(file)
}

// StartTransfer moves READY to PROCESSING and hands the file to the core.
// It is a no-op in any other status.
func StartTransfer(s *Session, eb *eventbus.EventBus) tea.Cmd {
	if !s.State.StartEnabled() {
		return nil
	}
	s.apply(core.StartRequested{})

	event := eventbus.StartTransferEvent{AttemptID: uuid.NewString(), File: *s.State.File}
	if err := eb.SendToCore(event); err != nil {
		s.apply(core.TransferFailed{Message: core.MessageOf(err)})
		return nil
	}
	return s.Meter.Start()
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(s *Session, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.TransferCompletedEvent:
		s.Meter.Stop()
		if event.Err != nil {
			s.apply(core.TransferFailed{Message: core.MessageOf(event.Err)})
			return nil
		}
		s.apply(core.TransferSucceeded{})
		if s.State.Status == models.StatusSuccess {
			s.UI.SavedPath = event.SavedPath
		}
	}
	return nil
}

// HandlePreview stores the sheet list if it still belongs to the selection.
func HandlePreview(s *Session, msg workbook.PreviewMsg) {
	if msg.Err != nil || s.State.File == nil || s.State.File.Path != msg.Path {
		return
	}
	s.UI.Preview = msg.Summary.Names()
}

func HandleWindowSizeMsg(s *Session, sizeMsg tea.WindowSizeMsg) tea.Cmd {
	s.UI.Width = sizeMsg.Width
	s.UI.Height = sizeMsg.Height
	cmd, _ := s.Picker.Update(sizeMsg)
	return cmd
}
