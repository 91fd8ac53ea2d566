package bootloader

import "io"

// Connection is the byte transport a session drives: blocking reads and
// writes plus an open/close lifecycle. The session acquires the connection
// with Open before any protocol traffic and releases it with Close on the
// clean end-of-image path. On failure paths the connection is left as-is
// and teardown belongs to the caller.
type Connection interface {
	io.Reader
	io.Writer

	// Open acquires the underlying device. It is called once, before any
	// protocol traffic.
	Open() error

	// Close releases the underlying device.
	Close() error
}
