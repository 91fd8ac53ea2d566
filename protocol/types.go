package protocol

// DeviceInfo is the device identification returned by Enter Bootloader.
type DeviceInfo struct {
	// SiliconID is the device silicon ID (4 bytes)
	SiliconID uint32

	// SiliconRev is the silicon revision (1 byte)
	SiliconRev byte

	// BootloaderVer is the bootloader version [major, minor, patch]
	BootloaderVer [3]byte
}

// FlashSize is the valid flash row range returned by Get Flash Size.
type FlashSize struct {
	// StartRow is the first programmable row number
	StartRow uint16

	// EndRow is the last programmable row number (inclusive)
	EndRow uint16
}

// Metadata is the application metadata returned by Get Metadata.
type Metadata struct {
	// Checksum is the bootloadable application checksum
	Checksum byte

	// StartAddr is the startup routine address of the application
	StartAddr uint32

	// LastRow is the last flash row occupied by the application
	LastRow uint16

	// Length is the size of the application in bytes
	Length uint32

	// Active indicates the active bootloadable application
	Active byte

	// Verified is the application verification status
	Verified byte

	// BootloaderVersion is the bootloader application version
	BootloaderVersion uint16

	// AppID is the bootloadable application ID
	AppID uint16

	// AppVersion is the bootloadable application version
	AppVersion uint16

	// CustomID is the application custom ID (4 bytes)
	CustomID uint32
}

// AppStatus is the per-application status returned by Get App Status
// (multi-application bootloaders only).
type AppStatus struct {
	// Valid indicates whether the application image is valid
	Valid bool

	// Active indicates whether the application is active
	Active bool
}
