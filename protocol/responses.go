package protocol

import (
	"encoding/binary"
	"fmt"
)

// ParseDeviceInfo decodes the Enter Bootloader response payload.
//
// Data format (DeviceInfoSize bytes):
//
//	[SILICON_ID(4, little-endian)][SILICON_REV(1)][BOOTLOADER_VER(3)]
func ParseDeviceInfo(data []byte) (*DeviceInfo, error) {
	if len(data) != DeviceInfoSize {
		return nil, payloadSizeError("Enter Bootloader", len(data), DeviceInfoSize)
	}

	return &DeviceInfo{
		SiliconID:     binary.LittleEndian.Uint32(data[0:4]),
		SiliconRev:    data[4],
		BootloaderVer: [3]byte{data[5], data[6], data[7]},
	}, nil
}

// ParseFlashSize decodes the Get Flash Size response payload.
//
// Data format (4 bytes):
//
//	[START_ROW(2)][END_ROW(2)]
func ParseFlashSize(data []byte) (*FlashSize, error) {
	if len(data) != FlashSizeResponseSize {
		return nil, payloadSizeError("Get Flash Size", len(data), FlashSizeResponseSize)
	}

	return &FlashSize{
		StartRow: binary.LittleEndian.Uint16(data[0:2]),
		EndRow:   binary.LittleEndian.Uint16(data[2:4]),
	}, nil
}

// ParseRowChecksum decodes the Verify Row response payload, the checksum
// byte of the verified row.
func ParseRowChecksum(data []byte) (byte, error) {
	if len(data) != VerifyRowResponseSize {
		return 0, payloadSizeError("Verify Row", len(data), VerifyRowResponseSize)
	}

	return data[0], nil
}

// ParseChecksumValid decodes the Verify Checksum response payload.
// A non-zero byte means the application checksum is valid.
func ParseChecksumValid(data []byte) (bool, error) {
	if len(data) != VerifyChecksumResponseSize {
		return false, payloadSizeError("Verify Checksum", len(data), VerifyChecksumResponseSize)
	}

	return data[0] != 0, nil
}

// ParseMetadata decodes the Get Metadata response payload.
// Field offsets follow the PSoC 4/5LP metadata layout.
func ParseMetadata(data []byte) (*Metadata, error) {
	if len(data) != MetadataResponseSize {
		return nil, payloadSizeError("Get Metadata", len(data), MetadataResponseSize)
	}

	return &Metadata{
		Checksum:          data[0],
		StartAddr:         binary.LittleEndian.Uint32(data[1:5]),
		LastRow:           binary.LittleEndian.Uint16(data[5:7]),
		Length:            binary.LittleEndian.Uint32(data[9:13]),
		Active:            data[16],
		Verified:          data[17],
		BootloaderVersion: binary.LittleEndian.Uint16(data[18:20]),
		AppID:             binary.LittleEndian.Uint16(data[20:22]),
		AppVersion:        binary.LittleEndian.Uint16(data[22:24]),
		CustomID:          binary.LittleEndian.Uint32(data[24:28]),
	}, nil
}

// ParseAppStatus decodes the Get App Status response payload.
//
// Data format (2 bytes):
//
//	[VALID(1)][ACTIVE(1)]
func ParseAppStatus(data []byte) (*AppStatus, error) {
	if len(data) != AppStatusResponseSize {
		return nil, payloadSizeError("Get App Status", len(data), AppStatusResponseSize)
	}

	return &AppStatus{
		Valid:  data[0] != 0,
		Active: data[1] != 0,
	}, nil
}

func payloadSizeError(op string, got, want int) *HostError {
	return &HostError{
		Kind: KindLength,
		Msg:  fmt.Sprintf("invalid %s response: got %d bytes, expected %d", op, got, want),
	}
}
