package protocol

import "testing"

func TestPacketChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0x0000, // 1 + ^0 wraps to zero in 16 bits
		},
		{
			name:     "enter bootloader frame prefix",
			data:     []byte{0x01, 0x38, 0x00, 0x00},
			expected: 0xFFC7,
		},
		{
			name:     "exit bootloader frame prefix",
			data:     []byte{0x01, 0x3B, 0x00, 0x00},
			expected: 0xFFC4,
		},
		{
			name:     "success response header",
			data:     []byte{0x01, 0x00, 0x00, 0x00},
			expected: 0xFFFF,
		},
		{
			name:     "all ones",
			data:     []byte{0xFF, 0xFF, 0xFF, 0xFF},
			expected: 0xFC04,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := packetChecksum(tt.data)
			if result != tt.expected {
				t.Errorf("packetChecksum() = 0x%04X, want 0x%04X", result, tt.expected)
			}
		})
	}
}

// A frame is valid when the byte sum including the checksum is 0 mod 65536.
func TestPacketChecksumInvariant(t *testing.T) {
	samples := [][]byte{
		{},
		{0x00},
		{0x01, 0x38, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x01, 0x39, 0x05, 0x00, 0x01, 0x05, 0x00, 0xAA, 0xBB},
	}

	// Deterministic pseudo-random sample
	long := make([]byte, 300)
	for i := range long {
		long[i] = byte(i*7 + 13)
	}
	samples = append(samples, long)

	for _, data := range samples {
		var sum uint16
		for _, b := range data {
			sum += uint16(b)
		}
		if got := sum + packetChecksum(data); got != 0 {
			t.Errorf("sum(data)+checksum = 0x%04X for %d-byte input, want 0", got, len(data))
		}
	}
}

func TestCRC16(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0xFFFF,
		},
		{
			name:     "single zero byte",
			data:     []byte{0x00},
			expected: 0xE1F0,
		},
		{
			name:     "test data",
			data:     []byte{0x01, 0x02, 0x03, 0x04},
			expected: 0x89C3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := crc16(tt.data)
			if result != tt.expected {
				t.Errorf("crc16() = 0x%04X, want 0x%04X", result, tt.expected)
			}
		})
	}
}

func BenchmarkPacketChecksum(b *testing.B) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		packetChecksum(data)
	}
}
