// Package bootloader orchestrates flashing a .cyacd firmware image onto a
// PSoC device over its serial bootloader protocol.
//
// The session walks a fixed, linear state machine:
//
//	Idle → Opened → Entered → (Programming → Verifying)* → Exited → Closed
//
// The firmware image is streamed one row at a time; the session never
// holds the whole image in memory. Rows are programmed and verified
// strictly in image order, since row programming is stateful on the
// device.
//
// # Usage
//
//	port := serialport.New("/dev/ttyACM0", 115200)
//	f, err := os.Open("firmware.cyacd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	err = bootloader.Bootload(f, port,
//	    bootloader.WithProgress(func(p bootloader.Progress) {
//	        fmt.Printf("[%s] %d rows, %d bytes\n", p.Phase, p.Rows, p.Bytes)
//	    }),
//	)
//
// # Error model
//
// Every error is terminal at this layer; there is no retry or recovery.
// Retry policy, if any, belongs to the caller. Only the clean end-of-image
// path sends Exit Bootloader and closes the connection; any failure leaves
// the connection in whatever state it was, and teardown belongs to the
// caller.
package bootloader
