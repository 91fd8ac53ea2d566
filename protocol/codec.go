package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Codec performs framed command/response exchanges over a byte transport.
// The transport only needs blocking Read and Write; lifecycle management
// (open/close) belongs to the caller.
//
// A Codec is not safe for concurrent use: the protocol is strictly
// request/response and assumes one exchange in flight at a time.
type Codec struct {
	rw io.ReadWriter
}

// NewCodec returns a Codec that exchanges frames over rw.
func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{rw: rw}
}

// Transmit writes packet to the transport and, if expectResponse is set,
// reads and validates one response frame, returning its data payload.
// With expectResponse unset the call is fire-and-forget and returns a nil
// payload; this is used for the final exit command, after which the device
// resets without replying.
//
// Response validation: the start marker must be StartOfPacket, the status
// byte must be StatusSuccess (otherwise a BootloaderError carrying the
// status is returned), the frame checksum must match the recomputed sum
// over header and data, and the frame must end with EndOfPacket.
func (c *Codec) Transmit(packet []byte, expectResponse bool) ([]byte, error) {
	if _, err := c.rw.Write(packet); err != nil {
		return nil, DeviceError("write packet", err)
	}

	if !expectResponse {
		return nil, nil
	}

	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(c.rw, header); err != nil {
		return nil, DeviceError("read response header", err)
	}

	if header[0] != StartOfPacket {
		return nil, &HostError{
			Kind: KindData,
			Msg:  fmt.Sprintf("invalid start of packet: got 0x%02X, expected 0x%02X", header[0], StartOfPacket),
		}
	}

	if header[1] != StatusSuccess {
		return nil, &BootloaderError{Status: header[1]}
	}

	dataLen := binary.LittleEndian.Uint16(header[2:4])
	data := make([]byte, dataLen)
	if _, err := io.ReadFull(c.rw, data); err != nil {
		return nil, DeviceError("read response data", err)
	}

	footer := make([]byte, FooterSize)
	if _, err := io.ReadFull(c.rw, footer); err != nil {
		return nil, DeviceError("read response footer", err)
	}

	frame := make([]byte, 0, HeaderSize+int(dataLen))
	frame = append(frame, header...)
	frame = append(frame, data...)

	expected := packetChecksum(frame)
	got := binary.LittleEndian.Uint16(footer[0:2])
	if got != expected {
		return nil, &HostError{
			Kind: KindChecksum,
			Msg:  fmt.Sprintf("response checksum mismatch: got 0x%04X, expected 0x%04X", got, expected),
		}
	}

	if footer[2] != EndOfPacket {
		return nil, &HostError{
			Kind: KindData,
			Msg:  fmt.Sprintf("invalid end of packet: got 0x%02X, expected 0x%02X", footer[2], EndOfPacket),
		}
	}

	return data, nil
}
