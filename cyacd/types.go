package cyacd

// ChecksumType is the whole-image checksum algorithm declared by the header.
type ChecksumType byte

const (
	// ChecksumSum is basic summation with 2's complement
	ChecksumSum ChecksumType = 0x00

	// ChecksumCRC is CRC-16-CCITT
	ChecksumCRC ChecksumType = 0x01
)

func (t ChecksumType) String() string {
	switch t {
	case ChecksumSum:
		return "sum"
	case ChecksumCRC:
		return "crc"
	default:
		return "invalid"
	}
}

// Header is the first line of a .cyacd file, identifying the target device.
// It is parsed once at stream start and is immutable for the session.
type Header struct {
	// SiliconID is the device silicon ID (big-endian in the file)
	SiliconID uint32

	// SiliconRev is the silicon revision
	SiliconRev byte

	// Checksum is the declared whole-image checksum algorithm
	Checksum ChecksumType
}

// Row is one addressable flash block described by one .cyacd data line.
type Row struct {
	// ArrayID is the flash array identifier
	ArrayID byte

	// RowNum is the flash row number
	RowNum uint16

	// Size is the declared data size in bytes
	Size uint16

	// Data is the flash row data to be programmed; len(Data) == Size
	Data []byte

	// Checksum is the row checksum byte carried by the line
	Checksum byte
}

// ChecksumValid reports whether the row's declared checksum byte matches
// the 2's-complement sum of the address fields and data. The device
// performs its own verification during programming; this is an optional
// host-side pre-check.
func (r *Row) ChecksumValid() bool {
	sum := r.ArrayID
	sum += byte(r.RowNum >> 8)
	sum += byte(r.RowNum)
	sum += byte(r.Size >> 8)
	sum += byte(r.Size)
	for _, b := range r.Data {
		sum += b
	}
	return r.Checksum == ^sum+1
}
