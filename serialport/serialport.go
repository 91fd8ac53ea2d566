// Package serialport adapts a serial device to the bootloader Connection
// interface using go.bug.st/serial.
package serialport

import (
	"errors"
	"time"

	"go.bug.st/serial"

	"github.com/robbym/psoc-bootloader/bootloader"
)

var _ bootloader.Connection = (*Port)(nil)

// Serial failure sentinels.
var (
	// ErrNotOpen is returned by Read and Write before Open succeeds or
	// after Close.
	ErrNotOpen = errors.New("serial port not open")

	// ErrReadTimeout is returned when a read deadline elapses with no data.
	ErrReadTimeout = errors.New("serial read timeout")
)

// DefaultReadTimeout bounds each blocking read so a silent device fails
// the session instead of hanging it.
const DefaultReadTimeout = 5 * time.Second

// Port is a serial-port Connection. The zero value is not usable; create
// one with New. The device is not touched until Open is called.
type Port struct {
	// Name is the OS device name, e.g. /dev/ttyACM0 or COM6
	Name string

	// Mode holds baud rate and framing settings
	Mode serial.Mode

	// ReadTimeout bounds each blocking read; DefaultReadTimeout if zero
	ReadTimeout time.Duration

	port serial.Port
}

// New returns a Port for the named device at the given baud rate with
// 8N1 framing.
func New(name string, baud int) *Port {
	return &Port{
		Name: name,
		Mode: serial.Mode{BaudRate: baud},
	}
}

// Open acquires the serial device and applies the configured mode and
// read timeout.
func (p *Port) Open() error {
	port, err := serial.Open(p.Name, &p.Mode)
	if err != nil {
		return err
	}

	timeout := p.ReadTimeout
	if timeout == 0 {
		timeout = DefaultReadTimeout
	}
	if err := port.SetReadTimeout(timeout); err != nil {
		_ = port.Close()
		return err
	}

	p.port = port
	return nil
}

// Close releases the serial device. Closing a port that was never opened
// is a no-op.
func (p *Port) Close() error {
	if p.port == nil {
		return nil
	}
	err := p.port.Close()
	p.port = nil
	return err
}

// Read reads up to len(b) bytes from the device. A read that returns no
// data within the configured timeout fails with ErrReadTimeout so framed
// reads cannot spin forever on a silent device.
func (p *Port) Read(b []byte) (int, error) {
	if p.port == nil {
		return 0, ErrNotOpen
	}

	n, err := p.port.Read(b)
	if n == 0 && err == nil {
		return 0, ErrReadTimeout
	}
	return n, err
}

// Write writes b to the device.
func (p *Port) Write(b []byte) (int, error) {
	if p.port == nil {
		return 0, ErrNotOpen
	}
	return p.port.Write(b)
}
