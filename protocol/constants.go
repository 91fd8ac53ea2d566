package protocol

// Frame structure constants.
const (
	// StartOfPacket is the frame start marker (0x01)
	StartOfPacket = 0x01

	// EndOfPacket is the frame end marker (0x17)
	EndOfPacket = 0x17

	// HeaderSize is the size of a response header:
	// SOP(1) + STATUS(1) + LEN(2)
	HeaderSize = 4

	// FooterSize is the size of a response footer:
	// CHECKSUM(2) + EOP(1)
	FooterSize = 3

	// MinFrameSize is the minimum frame size in bytes:
	// SOP(1) + CMD/STATUS(1) + LEN(2) + CHECKSUM(2) + EOP(1)
	MinFrameSize = HeaderSize + FooterSize
)

// Command codes. The byte values are the wire contract and must not change.
const (
	// CmdVerifyChecksum verifies the entire application checksum
	CmdVerifyChecksum byte = 0x31

	// CmdGetFlashSize queries the valid flash row range for an array
	CmdGetFlashSize byte = 0x32

	// CmdGetAppStatus returns status of the specified application (multi-app only)
	CmdGetAppStatus byte = 0x33

	// CmdEraseRow erases a single flash row
	CmdEraseRow byte = 0x34

	// CmdSync resets the bootloader to a clean state
	CmdSync byte = 0x35

	// CmdSetActiveApp sets the active bootloadable application (multi-app only)
	CmdSetActiveApp byte = 0x36

	// CmdSendData sends a data chunk (for rows larger than one packet)
	CmdSendData byte = 0x37

	// CmdEnterBootloader enters bootloader mode
	CmdEnterBootloader byte = 0x38

	// CmdProgramRow programs a single flash row
	CmdProgramRow byte = 0x39

	// CmdVerifyRow gets the checksum of a programmed row
	CmdVerifyRow byte = 0x3A

	// CmdExitBootloader exits bootloader and launches the application
	CmdExitBootloader byte = 0x3B

	// CmdGetMetadata reports application metadata
	CmdGetMetadata byte = 0x3C
)

// Status codes reported by the device in the response header.
const (
	// StatusSuccess indicates the command was successfully received and executed
	StatusSuccess byte = 0x00

	// StatusErrLength indicates data amount is outside the expected range
	StatusErrLength byte = 0x03

	// StatusErrData indicates data is not of proper form
	StatusErrData byte = 0x04

	// StatusErrCommand indicates the command is not recognized
	StatusErrCommand byte = 0x05

	// StatusErrChecksum indicates the packet checksum doesn't match
	StatusErrChecksum byte = 0x08

	// StatusErrArray indicates the flash array ID is not valid
	StatusErrArray byte = 0x09

	// StatusErrRow indicates the flash row number is not valid
	StatusErrRow byte = 0x0A

	// StatusErrApp indicates the application is not valid
	StatusErrApp byte = 0x0C

	// StatusErrActive indicates the application is currently marked active
	StatusErrActive byte = 0x0D

	// StatusErrCallback indicates a callback failure on the device
	StatusErrCallback byte = 0x0E

	// StatusErrUnknown indicates an unknown error occurred
	StatusErrUnknown byte = 0x0F
)

// MaxChunkSize is the largest row-data slice sent in a single packet.
// Rows larger than this are split into SendData chunks before ProgramRow.
const MaxChunkSize = 50

// Response data sizes.
const (
	// DeviceInfoSize is the data size of the Enter Bootloader response (8 bytes)
	DeviceInfoSize = 8

	// FlashSizeResponseSize is the data size of the Get Flash Size response (4 bytes)
	FlashSizeResponseSize = 4

	// VerifyRowResponseSize is the data size of the Verify Row response (1 byte)
	VerifyRowResponseSize = 1

	// VerifyChecksumResponseSize is the data size of the Verify Checksum response (1 byte)
	VerifyChecksumResponseSize = 1

	// MetadataResponseSize is the data size of the Get Metadata response (56 bytes)
	MetadataResponseSize = 56

	// AppStatusResponseSize is the data size of the Get App Status response (2 bytes)
	AppStatusResponseSize = 2
)
