package protocol

import (
	"errors"
	"fmt"
)

// HostKind classifies failures detected on the host side, as opposed to
// errors reported by the device in a response status byte.
type HostKind int

// Host failure kinds.
const (
	// KindEOF marks the clean end of the firmware image stream
	KindEOF HostKind = iota

	// KindLength indicates a line or frame decoded to the wrong byte count
	KindLength

	// KindData indicates malformed framing (bad start or end marker)
	KindData

	// KindCommand indicates a malformed row line (missing ':' marker)
	KindCommand

	// KindDevice wraps an underlying transport I/O failure
	KindDevice

	// KindVersion indicates an unsupported image or protocol version
	KindVersion

	// KindChecksum indicates a checksum mismatch detected by the host
	KindChecksum

	// KindArray indicates an invalid flash array reference
	KindArray

	// KindRow indicates an invalid flash row reference
	KindRow

	// KindBootloader indicates a bootloader sequencing failure
	KindBootloader

	// KindActive indicates an invalid active-application reference
	KindActive

	// KindUnknown indicates an unclassified host failure
	KindUnknown
)

func (k HostKind) String() string {
	switch k {
	case KindEOF:
		return "eof"
	case KindLength:
		return "length"
	case KindData:
		return "data"
	case KindCommand:
		return "command"
	case KindDevice:
		return "device"
	case KindVersion:
		return "version"
	case KindChecksum:
		return "checksum"
	case KindArray:
		return "array"
	case KindRow:
		return "row"
	case KindBootloader:
		return "bootloader"
	case KindActive:
		return "active"
	default:
		return "unknown"
	}
}

// HostError is a failure detected by the host: a parse error, a framing
// violation on a response, or a wrapped transport I/O error.
type HostError struct {
	// Kind classifies the failure
	Kind HostKind

	// Msg describes the failure
	Msg string

	// Err is the underlying error, if any (set for KindDevice)
	Err error
}

func (e *HostError) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// ErrEOF is returned when the firmware image stream yields no further line.
// It marks the clean end of input, not a failure.
var ErrEOF = &HostError{Kind: KindEOF, Msg: "end of image stream"}

// IsEOF reports whether err marks the clean end of the image stream.
func IsEOF(err error) bool {
	var he *HostError
	return errors.As(err, &he) && he.Kind == KindEOF
}

// DeviceError wraps a transport I/O failure into a HostError.
func DeviceError(msg string, err error) *HostError {
	return &HostError{Kind: KindDevice, Msg: msg, Err: err}
}

// BootloaderError is a non-success status reported by the device in a
// response header.
type BootloaderError struct {
	// Status is the status byte from the response
	Status byte
}

func (e *BootloaderError) Error() string {
	return fmt.Sprintf("bootloader reported %s (0x%02X)", StatusName(e.Status), e.Status)
}

// StatusName returns a human-readable name for a device status byte.
func StatusName(status byte) string {
	switch status {
	case StatusSuccess:
		return "success"
	case StatusErrLength:
		return "invalid length"
	case StatusErrData:
		return "invalid data"
	case StatusErrCommand:
		return "unrecognized command"
	case StatusErrChecksum:
		return "checksum mismatch"
	case StatusErrArray:
		return "invalid array ID"
	case StatusErrRow:
		return "invalid row number"
	case StatusErrApp:
		return "invalid application"
	case StatusErrActive:
		return "application is active"
	case StatusErrCallback:
		return "callback failure"
	default:
		return "unknown error"
	}
}
