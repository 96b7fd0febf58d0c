package core

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/Rorical/SheetRelay/internal/eventbus"
	"github.com/Rorical/SheetRelay/internal/logging"
	"github.com/Rorical/SheetRelay/internal/models"
)

// DownloadPrefix is prepended to the original name of a processed file.
const DownloadPrefix = "processed_"

// InvokeRequest is the body sent to the remote function.
type InvokeRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
}

// InvokeResponse is the decoded success body of the remote function.
type InvokeResponse struct {
	FileBase64 string `json:"fileBase64,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Invoker calls the remote processing function.
type Invoker interface {
	Invoke(ctx context.Context, req InvokeRequest) (InvokeResponse, error)
}

// Saver triggers the local download of a processed file and returns where
// it ended up.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// Result describes a completed transfer.
type Result struct {
	SavedPath string
	Size      int
}

// DownloadName derives the name of the processed file.
func DownloadName(original string) string {
	return DownloadPrefix + original
}

// TransferService encodes the selected file, calls the remote function and
// downloads the result. It consumes StartTransferEvent from the bus and
// answers with TransferCompletedEvent.
type TransferService struct {
	invoker  Invoker
	saver    Saver
	eventBus *eventbus.EventBus
	log      *logging.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewTransferService(invoker Invoker, saver Saver, eb *eventbus.EventBus, log *logging.Logger) *TransferService {
	ctx, cancel := context.WithCancel(context.Background())
	return &TransferService{
		invoker:  invoker,
		saver:    saver,
		eventBus: eb,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the core loop in a goroutine.
func (ts *TransferService) Start() {
	go ts.eventLoop()
}

func (ts *TransferService) Stop() {
	ts.cancel()
}

// IsReady reports whether the service can reach a remote function at all.
func (ts *TransferService) IsReady() bool {
	return ts.invoker != nil && ts.saver != nil
}

func (ts *TransferService) eventLoop() {
	for {
		select {
		case <-ts.ctx.Done():
			return
		case event, ok := <-ts.eventBus.UIToCore():
			if !ok {
				return
			}
			ts.handleUIEvent(event)
		}
	}
}

func (ts *TransferService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.StartTransferEvent:
		res, err := ts.transfer(ts.ctx, e.AttemptID, e.File)
		done := eventbus.TransferCompletedEvent{
			AttemptID: e.AttemptID,
			SavedPath: res.SavedPath,
			Size:      res.Size,
			Err:       err,
		}
		if err := ts.eventBus.SendToUI(done); err != nil {
			ts.log.Error().Err(err).Str("attempt", e.AttemptID).Msg("failed to deliver transfer result to UI")
		}
	}
}

// Transfer performs one full round trip for file. It blocks until the
// remote call finishes; there is no cancellation short of ctx.
func (ts *TransferService) Transfer(ctx context.Context, file models.SelectedFile) (Result, error) {
	return ts.transfer(ctx, uuid.NewString(), file)
}

func (ts *TransferService) transfer(ctx context.Context, attempt string, file models.SelectedFile) (Result, error) {
	if !ts.IsReady() {
		return Result{}, NewTransportError("remote function is not configured", nil)
	}

	logger := ts.log.With().Str("attempt", attempt).Str("file", file.Name).Logger()

	data, err := os.ReadFile(file.Path)
	if err != nil {
		logger.Error().Err(err).Msg("read selected file")
		return Result{}, &TransferError{Kind: KindUnknown, Message: fmt.Sprintf("could not read %s: %v", file.Name, err), Err: err}
	}

	logger.Info().Int("bytes", len(data)).Msg("invoking remote function")
	resp, err := ts.invoker.Invoke(ctx, InvokeRequest{
		File:     EncodeFile(data),
		FileName: file.Name,
	})
	if err != nil {
		logger.Error().Err(err).Str("kind", KindOf(err).String()).Msg("remote function failed")
		return Result{}, err
	}
	if resp.FileBase64 == "" {
		logger.Error().Msg("response carried no file payload")
		return Result{}, NewMalformedError()
	}

	processed, err := DecodeFile(resp.FileBase64)
	if err != nil {
		logger.Error().Err(err).Msg("decode response payload")
		return Result{}, &TransferError{Kind: KindUnknown, Message: err.Error(), Err: err}
	}

	result := models.RemoteResult{FileName: DownloadName(file.Name), Data: processed}
	saved, err := ts.saver.Save(result.FileName, result.Data)
	if err != nil {
		logger.Error().Err(err).Msg("download processed file")
		return Result{}, &TransferError{Kind: KindUnknown, Message: err.Error(), Err: err}
	}

	logger.Info().Str("saved", saved).Int("bytes", len(processed)).Msg("processed file downloaded")
	return Result{SavedPath: saved, Size: len(processed)}, nil
}
