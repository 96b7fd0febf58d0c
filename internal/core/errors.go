package core

import (
	"errors"
	"fmt"
)

// ErrInvalidFileType indicates a file that is not an Excel workbook by name.
var ErrInvalidFileType = errors.New("invalid file type")

// MalformedResponseMessage is shown when the function answers without a file.
const MalformedResponseMessage = "the function response did not contain file data"

// ErrorKind classifies a failed attempt.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidFileType
	KindTransport
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidFileType:
		return "invalid_file_type"
	case KindTransport:
		return "transport"
	case KindMalformed:
		return "malformed_response"
	}
	return "unknown"
}

// TransferError is a failure of one relay attempt.
type TransferError struct {
	Kind    ErrorKind
	Message string // User-facing text
	Err     error
}

func (e *TransferError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps an error returned by the remote function.
func NewTransportError(message string, err error) *TransferError {
	return &TransferError{Kind: KindTransport, Message: message, Err: err}
}

// NewMalformedError reports a response without a payload.
func NewMalformedError() *TransferError {
	return &TransferError{Kind: KindMalformed, Message: MalformedResponseMessage}
}

// NewInvalidFileError reports a rejected selection.
func NewInvalidFileError(name string) *TransferError {
	return &TransferError{
		Kind:    KindInvalidFileType,
		Message: fmt.Sprintf("%q is not an Excel file (.xlsx or .xls)", name),
		Err:     ErrInvalidFileType,
	}
}

// KindOf returns the kind of err, KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var te *TransferError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

// MessageOf returns the user-facing text for err, falling back to the
// generic message when there is none.
func MessageOf(err error) string {
	if err == nil {
		return FallbackErrorMessage
	}
	var te *TransferError
	if errors.As(err, &te) && te.Message != "" {
		return te.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackErrorMessage
}
