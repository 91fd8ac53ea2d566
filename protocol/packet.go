package protocol

import "encoding/binary"

// BuildPacket constructs a command frame ready to send.
// A nil or empty data slice produces a zero-length payload.
//
// Frame structure:
//
//	[SOP][CMD][LEN_L][LEN_H][DATA...][CHECKSUM_L][CHECKSUM_H][EOP]
//
// The checksum covers SOP through DATA and uses basic summation
// with 2's complement (see packetChecksum).
func BuildPacket(cmd byte, data []byte) []byte {
	frame := make([]byte, 0, MinFrameSize+len(data))

	frame = append(frame, StartOfPacket)
	frame = append(frame, cmd)

	lenBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(lenBytes, uint16(len(data)))
	frame = append(frame, lenBytes...)

	frame = append(frame, data...)

	checksumBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(checksumBytes, packetChecksum(frame))
	frame = append(frame, checksumBytes...)

	frame = append(frame, EndOfPacket)

	return frame
}
