package models

// AppStatus is the lifecycle of a single relay attempt.
type AppStatus string

const (
	StatusIdle       AppStatus = "IDLE"
	StatusReady      AppStatus = "READY"
	StatusProcessing AppStatus = "PROCESSING"
	StatusSuccess    AppStatus = "SUCCESS"
	StatusError      AppStatus = "ERROR"
)

func (s AppStatus) String() string {
	return string(s)
}
