package bootloader

import "time"

// Phase identifies a stage of the bootload sequence.
type Phase int

const (
	// PhaseIdle means no connection has been acquired yet
	PhaseIdle Phase = iota

	// PhaseOpened means the connection is open but no protocol traffic has occurred
	PhaseOpened

	// PhaseEntered means the device accepted Enter Bootloader
	PhaseEntered

	// PhaseProgramming means a row is being programmed
	PhaseProgramming

	// PhaseVerifying means a programmed row is being verified
	PhaseVerifying

	// PhaseExited means Exit Bootloader has been sent
	PhaseExited

	// PhaseClosed means the connection has been released
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOpened:
		return "opened"
	case PhaseEntered:
		return "entered"
	case PhaseProgramming:
		return "programming"
	case PhaseVerifying:
		return "verifying"
	case PhaseExited:
		return "exited"
	case PhaseClosed:
		return "closed"
	default:
		return "invalid"
	}
}

// Progress describes how far a bootload run has advanced. The image is
// streamed, so the total row count is unknown; progress is reported as
// rows and bytes completed so far.
type Progress struct {
	// Phase is the current sequence stage
	Phase Phase

	// Rows is the number of rows programmed and verified so far
	Rows int

	// Bytes is the number of row data bytes written so far
	Bytes int

	// ArrayID is the flash array of the most recent row
	ArrayID byte

	// RowNum is the row number of the most recent row
	RowNum uint16

	// Elapsed is the time since the run started
	Elapsed time.Duration
}

// ProgressFunc is called after each row and at phase transitions.
// Implementations should return quickly; the session blocks on them.
type ProgressFunc func(Progress)

// Logger is an optional logging interface for session diagnostics.
// It allows integration with any logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
