package core

import (
	"github.com/Rorical/SheetRelay/internal/models"
)

// FallbackErrorMessage is shown when a failure carries no text of its own.
const FallbackErrorMessage = "unknown error while processing spreadsheet"

// State is the single source of truth for the relay lifecycle. It is a value:
// Reduce never mutates its input.
type State struct {
	Status models.AppStatus
	File   *models.SelectedFile
	Err    string
}

// NewState returns the initial IDLE state.
func NewState() State {
	return State{Status: models.StatusIdle}
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// FileChosen reports a validated file from the picker or a drop.
type FileChosen struct {
	File models.SelectedFile
}

// StartRequested is the user pressing start.
type StartRequested struct{}

// TransferSucceeded reports that the processed file was downloaded.
type TransferSucceeded struct{}

// TransferFailed reports any failure of the in-flight attempt.
type TransferFailed struct {
	Message string
}

// RetryRequested is the user dismissing an error to try again.
type RetryRequested struct{}

func (FileChosen) event()        {}
func (StartRequested) event()    {}
func (TransferSucceeded) event() {}
func (TransferFailed) event()    {}
func (RetryRequested) event()    {}

// Reduce applies ev to s and returns the next state. Events that are not
// valid in the current status return s unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case FileChosen:
		if s.Status == models.StatusProcessing {
			return s
		}
		file := e.File
		return State{Status: models.StatusReady, File: &file}

	case StartRequested:
		if s.Status != models.StatusReady || s.File == nil {
			return s
		}
		return State{Status: models.StatusProcessing, File: s.File}

	case TransferSucceeded:
		if s.Status != models.StatusProcessing {
			return s
		}
		return State{Status: models.StatusSuccess, File: s.File}

	case TransferFailed:
		if s.Status != models.StatusProcessing {
			return s
		}
		msg := e.Message
		if msg == "" {
			msg = FallbackErrorMessage
		}
		return State{Status: models.StatusError, File: s.File, Err: msg}

	case RetryRequested:
		if s.Status != models.StatusError {
			return s
		}
		return State{Status: models.StatusReady, File: s.File}
	}
	return s
}

// IsProcessing reports whether a remote call is in flight.
func (s State) IsProcessing() bool {
	return s.Status == models.StatusProcessing
}

// BrowseEnabled gates the browse control and drops.
func (s State) BrowseEnabled() bool {
	return s.Status != models.StatusProcessing
}

// StartEnabled gates the start control.
func (s State) StartEnabled() bool {
	return s.Status == models.StatusReady
}

// Panel is the feedback area shown under the controls.
type Panel int

const (
	PanelNone Panel = iota
	PanelIdleHint
	PanelLoading
	PanelSuccess
	PanelError
)

// Panel returns the single feedback panel for the current status.
func (s State) Panel() Panel {
	switch s.Status {
	case models.StatusIdle:
		return PanelIdleHint
	case models.StatusProcessing:
		return PanelLoading
	case models.StatusSuccess:
		return PanelSuccess
	case models.StatusError:
		return PanelError
	}
	return PanelNone
}
