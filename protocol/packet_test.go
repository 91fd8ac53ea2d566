package protocol

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestCommandCodes(t *testing.T) {
	// The wire contract: these byte values must never drift.
	tests := []struct {
		name string
		cmd  byte
		code byte
	}{
		{"verify checksum", CmdVerifyChecksum, 0x31},
		{"get flash size", CmdGetFlashSize, 0x32},
		{"get app status", CmdGetAppStatus, 0x33},
		{"erase row", CmdEraseRow, 0x34},
		{"sync", CmdSync, 0x35},
		{"set active app", CmdSetActiveApp, 0x36},
		{"send data", CmdSendData, 0x37},
		{"enter bootloader", CmdEnterBootloader, 0x38},
		{"program row", CmdProgramRow, 0x39},
		{"verify row", CmdVerifyRow, 0x3A},
		{"exit bootloader", CmdExitBootloader, 0x3B},
		{"get metadata", CmdGetMetadata, 0x3C},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd != tt.code {
				t.Errorf("command byte = 0x%02X, want 0x%02X", tt.cmd, tt.code)
			}
		})
	}
}

func TestBuildPacket(t *testing.T) {
	tests := []struct {
		name     string
		cmd      byte
		data     []byte
		expected []byte
	}{
		{
			name:     "enter bootloader, no payload",
			cmd:      CmdEnterBootloader,
			data:     nil,
			expected: []byte{0x01, 0x38, 0x00, 0x00, 0xC7, 0xFF, 0x17},
		},
		{
			name:     "exit bootloader, no payload",
			cmd:      CmdExitBootloader,
			data:     nil,
			expected: []byte{0x01, 0x3B, 0x00, 0x00, 0xC4, 0xFF, 0x17},
		},
		{
			name:     "verify row with address payload",
			cmd:      CmdVerifyRow,
			data:     []byte{0x01, 0x05, 0x00},
			expected: []byte{0x01, 0x3A, 0x03, 0x00, 0x01, 0x05, 0x00, 0xBC, 0xFF, 0x17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPacket(tt.cmd, tt.data)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("BuildPacket() = % X, want % X", got, tt.expected)
			}
		})
	}
}

func TestBuildPacketStructure(t *testing.T) {
	for size := 0; size <= MaxChunkSize; size++ {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}

		frame := BuildPacket(CmdSendData, data)

		if len(frame) != MinFrameSize+size {
			t.Fatalf("size %d: frame length = %d, want %d", size, len(frame), MinFrameSize+size)
		}
		if frame[0] != StartOfPacket {
			t.Errorf("size %d: start marker = 0x%02X", size, frame[0])
		}
		if frame[len(frame)-1] != EndOfPacket {
			t.Errorf("size %d: end marker = 0x%02X", size, frame[len(frame)-1])
		}
		if got := binary.LittleEndian.Uint16(frame[2:4]); got != uint16(size) {
			t.Errorf("size %d: length field = %d", size, got)
		}
		if !bytes.Equal(frame[4:4+size], data) {
			t.Errorf("size %d: payload mangled", size)
		}

		// Byte sum of the checksummed region plus the decoded checksum
		// must be 0 mod 65536.
		var sum uint16
		for _, b := range frame[:len(frame)-3] {
			sum += uint16(b)
		}
		sum += binary.LittleEndian.Uint16(frame[len(frame)-3 : len(frame)-1])
		if sum != 0 {
			t.Errorf("size %d: frame sum = 0x%04X, want 0", size, sum)
		}
	}
}
