package protocol

// Checksum algorithm constants.
const (
	// ChecksumMask is the 16-bit mask used in checksum calculations
	ChecksumMask = 0xFFFF

	// CRC16Polynomial is the CRC-16-CCITT polynomial (0x1021)
	CRC16Polynomial = 0x1021

	// CRC16InitialValue is the CRC-16 initial value
	CRC16InitialValue = 0xFFFF
)

// packetChecksum computes the 16-bit checksum for a packet frame.
// Uses basic summation: sum all bytes modulo 65536, then 2's complement.
//
// The checksum is calculated over every byte that precedes the checksum
// field on the wire: SOP, CMD/STATUS, LEN, and DATA. A frame is valid when
// the sum of all its bytes including the checksum is 0 mod 65536.
func packetChecksum(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return 1 + (ChecksumMask ^ sum)
}

// crc16 computes CRC-16-CCITT over data.
// This is the whole-image checksum algorithm declared by a .cyacd header
// with checksum type 1; the packet frame checksum is always summation.
//
// Parameters: polynomial CRC16Polynomial, initial value CRC16InitialValue,
// no final XOR.
func crc16(data []byte) uint16 {
	crc := uint16(CRC16InitialValue)

	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ CRC16Polynomial
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
