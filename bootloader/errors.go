package bootloader

import "fmt"

// DeviceMismatchError indicates the device silicon ID does not match the
// firmware image header.
type DeviceMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *DeviceMismatchError) Error() string {
	return fmt.Sprintf("device mismatch: image expects silicon ID 0x%08X, device has 0x%08X",
		e.Expected, e.Actual)
}
