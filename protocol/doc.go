// Package protocol implements the PSoC serial bootloader wire protocol:
// frame construction, response validation, checksum arithmetic, and the
// command and status byte tables.
//
// # Frame Format
//
// Every message in either direction is one frame:
//
//	[SOP(0x01)][CMD or STATUS(1)][LEN(2, little-endian)][DATA...][CHECKSUM(2, little-endian)][EOP(0x17)]
//
// The checksum is basic summation with 2's complement: sum every byte from
// SOP through DATA modulo 65536, then invert and add one. A well-formed
// frame therefore sums to zero modulo 65536 when the checksum bytes are
// included.
//
// # Usage
//
// Build a command frame and exchange it over any io.ReadWriter:
//
//	codec := protocol.NewCodec(port)
//	packet := protocol.BuildPacket(protocol.CmdEnterBootloader, nil)
//	data, err := codec.Transmit(packet, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info, err := protocol.ParseDeviceInfo(data)
//
// # Errors
//
// Failures detected on the host (bad framing, checksum mismatch, transport
// I/O) are reported as *HostError, classified by HostKind. A non-success
// status byte from the device is reported as *BootloaderError carrying the
// raw status. Dispatch with errors.As:
//
//	var blErr *protocol.BootloaderError
//	if errors.As(err, &blErr) && blErr.Status == protocol.StatusErrChecksum {
//	    // device rejected the row checksum
//	}
package protocol
