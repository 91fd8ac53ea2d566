// Package cyacd parses .cyacd firmware images for PSoC bootloaders.
//
// # File Format
//
// A .cyacd file is hex-ASCII text: one header line followed by one line
// per flash row.
//
// Header (12 hex characters, 6 bytes):
//
//	[SiliconID(4, big-endian)][SiliconRev(1)][ChecksumType(1)]
//
// Example:
//
//	1E9602AA0000
//	  1E9602AA = Silicon ID
//	  00 = Silicon revision
//	  00 = Checksum type (0 = summation, 1 = CRC-16)
//
// Row lines start with ':' followed by hex characters decoding to:
//
//	[ArrayID(1)][RowNum(2, big-endian)][Size(2, big-endian)][Data(Size)][Checksum(1)]
//
// # Usage
//
// Rows are decoded lazily, one line per call, so arbitrarily large images
// parse in constant memory:
//
//	p := cyacd.NewParser(file)
//	header, err := p.Header()
//	if err != nil {
//	    return err
//	}
//	for {
//	    row, err := p.NextRow()
//	    if protocol.IsEOF(err) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // program row
//	}
package cyacd
