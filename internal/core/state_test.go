package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/SheetRelay/internal/models"
)

func sampleFile(name string) models.SelectedFile {
	return models.NewSelectedFile("/tmp/"+name, 10)
}

func stateIn(status models.AppStatus) State {
	f := sampleFile("book.xlsx")
	s := State{Status: status, File: &f}
	if status == models.StatusIdle {
		s.File = nil
	}
	if status == models.StatusError {
		s.Err = "boom"
	}
	return s
}

func TestReduce_FileChosen(t *testing.T) {
	tests := []struct {
		name       string
		from       models.AppStatus
		wantStatus models.AppStatus
	}{
		{"idle", models.StatusIdle, models.StatusReady},
		{"ready", models.StatusReady, models.StatusReady},
		{"success", models.StatusSuccess, models.StatusReady},
		{"error", models.StatusError, models.StatusReady},
		{"processing is ignored", models.StatusProcessing, models.StatusProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Reduce(stateIn(tt.from), FileChosen{File: sampleFile("new.xls")})
			assert.Equal(t, tt.wantStatus, next.Status)
			if tt.wantStatus == models.StatusReady {
				assert.Equal(t, "new.xls", next.File.Name)
				assert.Empty(t, next.Err)
			} else {
				assert.Equal(t, "book.xlsx", next.File.Name)
			}
		})
	}
}

func TestReduce_StartOnlyFromReady(t *testing.T) {
	for _, status := range []models.AppStatus{
		models.StatusIdle, models.StatusProcessing, models.StatusSuccess, models.StatusError,
	} {
		before := stateIn(status)
		assert.Equal(t, before, Reduce(before, StartRequested{}), "start must be a no-op in %s", status)
	}

	next := Reduce(stateIn(models.StatusReady), StartRequested{})
	assert.Equal(t, models.StatusProcessing, next.Status)
	assert.NotNil(t, next.File)
}

func TestReduce_StartWithoutFileIsNoop(t *testing.T) {
	s := State{Status: models.StatusReady}
	assert.Equal(t, s, Reduce(s, StartRequested{}))
}

func TestReduce_TransferOutcome(t *testing.T) {
	processing := stateIn(models.StatusProcessing)

	ok := Reduce(processing, TransferSucceeded{})
	assert.Equal(t, models.StatusSuccess, ok.Status)
	assert.Empty(t, ok.Err)

	failed := Reduce(processing, TransferFailed{Message: "quota exceeded"})
	assert.Equal(t, models.StatusError, failed.Status)
	assert.Equal(t, "quota exceeded", failed.Err)

	fallback := Reduce(processing, TransferFailed{})
	assert.Equal(t, FallbackErrorMessage, fallback.Err)

	// Late outcomes outside PROCESSING change nothing.
	ready := stateIn(models.StatusReady)
	assert.Equal(t, ready, Reduce(ready, TransferSucceeded{}))
	assert.Equal(t, ready, Reduce(ready, TransferFailed{Message: "x"}))
}

func TestReduce_RetryClearsError(t *testing.T) {
	for _, msg := range []string{"boom", "", MalformedResponseMessage, "a very long message\nwith lines"} {
		s := stateIn(models.StatusProcessing)
		s = Reduce(s, TransferFailed{Message: msg})
		next := Reduce(s, RetryRequested{})
		assert.Equal(t, models.StatusReady, next.Status)
		assert.Empty(t, next.Err)
		assert.NotNil(t, next.File)
	}

	idle := NewState()
	assert.Equal(t, idle, Reduce(idle, RetryRequested{}))
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := stateIn(models.StatusError)
	snapshot := before
	_ = Reduce(before, RetryRequested{})
	assert.Equal(t, snapshot, before)
}

func TestState_Gating(t *testing.T) {
	tests := []struct {
		status models.AppStatus
		browse bool
		start  bool
		panel  Panel
	}{
		{models.StatusIdle, true, false, PanelIdleHint},
		{models.StatusReady, true, true, PanelNone},
		{models.StatusProcessing, false, false, PanelLoading},
		{models.StatusSuccess, true, false, PanelSuccess},
		{models.StatusError, true, false, PanelError},
	}

	for _, tt := range tests {
		s := stateIn(tt.status)
		assert.Equal(t, tt.browse, s.BrowseEnabled(), "browse in %s", tt.status)
		assert.Equal(t, tt.start, s.StartEnabled(), "start in %s", tt.status)
		assert.Equal(t, tt.panel, s.Panel(), "panel in %s", tt.status)
	}
}

func TestErrors_KindAndMessage(t *testing.T) {
	assert.Equal(t, KindMalformed, KindOf(NewMalformedError()))
	assert.Equal(t, MalformedResponseMessage, MessageOf(NewMalformedError()))
	assert.Equal(t, KindTransport, KindOf(NewTransportError("down", nil)))
	assert.Equal(t, KindInvalidFileType, KindOf(NewInvalidFileError("a.csv")))
	assert.ErrorIs(t, NewInvalidFileError("a.csv"), ErrInvalidFileType)
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
	assert.Equal(t, assert.AnError.Error(), MessageOf(assert.AnError))
	assert.Equal(t, FallbackErrorMessage, MessageOf(nil))
}
