package cyacd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/robbym/psoc-bootloader/protocol"
)

// File format constants.
const (
	// HeaderByteCount is the exact number of decoded bytes in a header line
	HeaderByteCount = 6

	// RowOverheadBytes is the per-line byte count that is not row data:
	// arrayID(1) + rowNum(2) + size(2) + checksum(1)
	RowOverheadBytes = 6

	// rowDataOffset is the index of the first data byte in a decoded row line
	rowDataOffset = 5

	// maxLineBytes bounds a single line: a row can declare up to 65535 data
	// bytes, hex-encoded at two characters per byte plus overhead
	maxLineBytes = 2*(0xFFFF+RowOverheadBytes) + 1
)

// Parser decodes a .cyacd firmware image one line at a time.
// The image is never materialized in memory: each call to NextRow reads
// and decodes exactly one line, so memory stays bounded regardless of
// image size.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	scanner *bufio.Scanner
	header  *Header
	line    int
}

// NewParser returns a Parser reading the .cyacd image from r.
func NewParser(r io.Reader) *Parser {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	return &Parser{scanner: scanner}
}

// Header parses and returns the image header. The first call consumes the
// header line; subsequent calls return the cached value.
//
// Header format (12 hex characters, 6 bytes):
//
//	[SiliconID(4, big-endian)][SiliconRev(1)][ChecksumType(1)]
func (p *Parser) Header() (*Header, error) {
	if p.header != nil {
		return p.header, nil
	}

	line, err := p.nextLine()
	if err != nil {
		if protocol.IsEOF(err) {
			return nil, &protocol.HostError{
				Kind: protocol.KindLength,
				Msg:  "missing header line",
			}
		}
		return nil, err
	}

	header, err := parseHeaderLine(line)
	if err != nil {
		return nil, err
	}

	p.header = header
	return header, nil
}

// NextRow parses and returns the next row line. It returns an EOF host
// error (see protocol.IsEOF) when the stream yields no further line.
// If the header has not been parsed yet, it is consumed first.
//
// Row format: ':' followed by hex characters decoding to
//
//	[ArrayID(1)][RowNum(2, big-endian)][Size(2, big-endian)][Data(Size)][Checksum(1)]
func (p *Parser) NextRow() (*Row, error) {
	if p.header == nil {
		if _, err := p.Header(); err != nil {
			return nil, err
		}
	}

	line, err := p.nextLine()
	if err != nil {
		return nil, err
	}

	row, err := parseRowLine(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", p.line, err)
	}

	return row, nil
}

// nextLine reads one line, reporting protocol.ErrEOF at end of input and
// wrapping read failures as device errors.
func (p *Parser) nextLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", protocol.DeviceError("read image line", err)
		}
		return "", protocol.ErrEOF
	}
	p.line++
	return p.scanner.Text(), nil
}

func parseHeaderLine(line string) (*Header, error) {
	data := decodeHexPairs(line)
	if len(data) != HeaderByteCount {
		return nil, &protocol.HostError{
			Kind: protocol.KindLength,
			Msg:  fmt.Sprintf("invalid header: got %d bytes, expected %d", len(data), HeaderByteCount),
		}
	}

	siliconID := uint32(data[0])<<24 | uint32(data[1])<<16 |
		uint32(data[2])<<8 | uint32(data[3])

	checksum := ChecksumType(data[5])
	if checksum != ChecksumSum && checksum != ChecksumCRC {
		return nil, &protocol.HostError{
			Kind: protocol.KindChecksum,
			Msg:  fmt.Sprintf("invalid checksum type 0x%02X (must be 0x00 or 0x01)", data[5]),
		}
	}

	return &Header{
		SiliconID:  siliconID,
		SiliconRev: data[4],
		Checksum:   checksum,
	}, nil
}

func parseRowLine(line string) (*Row, error) {
	if len(line) == 0 || line[0] != ':' {
		return nil, &protocol.HostError{
			Kind: protocol.KindCommand,
			Msg:  "row line must start with ':'",
		}
	}

	data := decodeHexPairs(line[1:])
	if len(data) <= RowOverheadBytes {
		return nil, &protocol.HostError{
			Kind: protocol.KindLength,
			Msg:  fmt.Sprintf("row too short: got %d bytes, need more than %d", len(data), RowOverheadBytes),
		}
	}

	arrayID := data[0]
	rowNum := uint16(data[1])<<8 | uint16(data[2])
	size := uint16(data[3])<<8 | uint16(data[4])

	if int(size)+RowOverheadBytes != len(data) {
		return nil, &protocol.HostError{
			Kind: protocol.KindLength,
			Msg: fmt.Sprintf("declared size %d inconsistent with %d decoded bytes",
				size, len(data)),
		}
	}

	rowData := make([]byte, size)
	copy(rowData, data[rowDataOffset:rowDataOffset+int(size)])

	return &Row{
		ArrayID:  arrayID,
		RowNum:   rowNum,
		Size:     size,
		Data:     rowData,
		Checksum: data[len(data)-1],
	}, nil
}

// decodeHexPairs decodes consecutive 2-character hex pairs into bytes.
// Fragments that are not valid hex pairs (a trailing odd character, a
// stray carriage return) are dropped rather than failing the line.
func decodeHexPairs(s string) []byte {
	data := make([]byte, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		b, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			continue
		}
		data = append(data, byte(b))
	}
	return data
}
