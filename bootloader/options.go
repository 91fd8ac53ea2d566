package bootloader

// Config holds the session configuration.
type Config struct {
	// Progress is called during programming to report progress (optional)
	Progress ProgressFunc

	// Logger is used for diagnostics (optional)
	Logger Logger

	// CheckSiliconID aborts the run when the Enter Bootloader response
	// carries a device info payload whose silicon ID does not match the
	// image header. Off by default: the response payload is accepted but
	// not required.
	CheckSiliconID bool

	// VerifyRowChecksums validates each row's declared checksum byte on
	// the host before transmission. Off by default: row integrity
	// verification is otherwise delegated to the device's Verify Row
	// response.
	VerifyRowChecksums bool
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithProgress sets a callback to track programming progress.
//
// Example:
//
//	s := bootloader.NewSession(conn,
//	    bootloader.WithProgress(func(p bootloader.Progress) {
//	        fmt.Printf("[%s] row %d\n", p.Phase, p.Rows)
//	    }),
//	)
func WithProgress(fn ProgressFunc) Option {
	return func(c *Config) {
		c.Progress = fn
	}
}

// WithLogger sets a logger for session diagnostics.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSiliconIDCheck enables or disables matching the device silicon ID
// against the image header.
func WithSiliconIDCheck(check bool) Option {
	return func(c *Config) {
		c.CheckSiliconID = check
	}
}

// WithRowChecksumValidation enables or disables host-side validation of
// each row's checksum byte before transmission.
func WithRowChecksumValidation(verify bool) Option {
	return func(c *Config) {
		c.VerifyRowChecksums = verify
	}
}
