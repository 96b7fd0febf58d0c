package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/SheetRelay/internal/eventbus"
	"github.com/Rorical/SheetRelay/internal/logging"
	"github.com/Rorical/SheetRelay/internal/models"
)

type fakeInvoker struct {
	resp  InvokeResponse
	err   error
	calls []InvokeRequest
}

func (f *fakeInvoker) Invoke(ctx context.Context, req InvokeRequest) (InvokeResponse, error) {
	f.calls = append(f.calls, req)
	return f.resp, f.err
}

type savedFile struct {
	name string
	data []byte
}

type fakeSaver struct {
	saves []savedFile
	err   error
}

func (f *fakeSaver) Save(name string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saves = append(f.saves, savedFile{name: name, data: data})
	return filepath.Join("/out", name), nil
}

func writeWorkbook(t *testing.T, name string, data []byte) models.SelectedFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return models.NewSelectedFile(path, int64(len(data)))
}

func TestTransfer_Success(t *testing.T) {
	original := []byte("PK\x03\x04 original workbook")
	processed := []byte("PK\x03\x04 processed workbook \x00\xff")
	file := writeWorkbook(t, "report.xlsx", original)

	inv := &fakeInvoker{resp: InvokeResponse{FileBase64: EncodeFile(processed)}}
	saver := &fakeSaver{}
	svc := NewTransferService(inv, saver, nil, logging.Nop())

	res, err := svc.Transfer(context.Background(), file)
	require.NoError(t, err)

	require.Len(t, inv.calls, 1)
	assert.Equal(t, "report.xlsx", inv.calls[0].FileName)
	assert.Equal(t, EncodeFile(original), inv.calls[0].File)

	require.Len(t, saver.saves, 1, "exactly one download")
	assert.Equal(t, "processed_report.xlsx", saver.saves[0].name)
	assert.Equal(t, processed, saver.saves[0].data)
	assert.Equal(t, filepath.Join("/out", "processed_report.xlsx"), res.SavedPath)
	assert.Equal(t, len(processed), res.Size)
}

func TestTransfer_Failures(t *testing.T) {
	tests := []struct {
		name     string
		invoker  *fakeInvoker
		saver    *fakeSaver
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			name:     "remote error",
			invoker:  &fakeInvoker{err: NewTransportError("quota exceeded", nil)},
			saver:    &fakeSaver{},
			wantKind: KindTransport,
			wantMsg:  "quota exceeded",
		},
		{
			name:     "missing payload",
			invoker:  &fakeInvoker{resp: InvokeResponse{}},
			saver:    &fakeSaver{},
			wantKind: KindMalformed,
			wantMsg:  MalformedResponseMessage,
		},
		{
			name:     "undecodable payload",
			invoker:  &fakeInvoker{resp: InvokeResponse{FileBase64: "%%%"}},
			saver:    &fakeSaver{},
			wantKind: KindUnknown,
		},
		{
			name:     "download fails",
			invoker:  &fakeInvoker{resp: InvokeResponse{FileBase64: EncodeFile([]byte("x"))}},
			saver:    &fakeSaver{err: assert.AnError},
			wantKind: KindUnknown,
			wantMsg:  assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := writeWorkbook(t, "in.xls", []byte("data"))
			svc := NewTransferService(tt.invoker, tt.saver, nil, logging.Nop())

			_, err := svc.Transfer(context.Background(), file)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, MessageOf(err))
			}
			assert.Empty(t, tt.saver.saves)
		})
	}
}

func TestTransfer_UnreadableFile(t *testing.T) {
	inv := &fakeInvoker{}
	svc := NewTransferService(inv, &fakeSaver{}, nil, logging.Nop())

	_, err := svc.Transfer(context.Background(), models.NewSelectedFile(filepath.Join(t.TempDir(), "gone.xlsx"), 0))
	require.Error(t, err)
	assert.Empty(t, inv.calls, "nothing is sent when the file cannot be read")
}

func TestTransfer_NotConfigured(t *testing.T) {
	svc := NewTransferService(nil, nil, nil, logging.Nop())
	assert.False(t, svc.IsReady())

	_, err := svc.Transfer(context.Background(), writeWorkbook(t, "a.xlsx", []byte("a")))
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestTransferService_EventLoop(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()

	inv := &fakeInvoker{resp: InvokeResponse{FileBase64: EncodeFile([]byte("out"))}}
	svc := NewTransferService(inv, &fakeSaver{}, eb, logging.Nop())
	svc.Start()
	defer svc.Stop()

	file := writeWorkbook(t, "loop.xlsx", []byte("in"))
	require.NoError(t, eb.SendToCore(eventbus.StartTransferEvent{AttemptID: "a-1", File: file}))

	select {
	case ev := <-eb.CoreToUI():
		done, ok := ev.(eventbus.TransferCompletedEvent)
		require.True(t, ok)
		assert.Equal(t, "a-1", done.AttemptID)
		assert.NoError(t, done.Err)
		assert.Equal(t, filepath.Join("/out", "processed_loop.xlsx"), done.SavedPath)
	case <-time.After(5 * time.Second):
		t.Fatal("no completion event")
	}
}
