package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/robbym/psoc-bootloader/bootloader"
	"github.com/robbym/psoc-bootloader/config"
	"github.com/robbym/psoc-bootloader/serialport"
)

func newFlashCmd() *cobra.Command {
	var flags struct {
		port        string
		baud        int
		configPath  string
		checkSilID  bool
		verifyRows  bool
		verbose     bool
		readTimeout time.Duration
	}

	cmd := &cobra.Command{
		Use:   "flash <firmware.cyacd>",
		Short: "Program a .cyacd image onto a device",
		Long: `Program a .cyacd firmware image onto a PSoC device.

The device profile (port, baud, verification options) can come from a YAML
config file; flags override the file.

Examples:
  psocflash flash --port /dev/ttyACM0 firmware.cyacd
  psocflash flash --config device.yaml --verbose firmware.cyacd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := config.Default()
			if flags.configPath != "" {
				var err error
				if profile, err = config.Load(flags.configPath); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("port") || profile.Port == "" {
				profile.Port = flags.port
			}
			if cmd.Flags().Changed("baud") {
				profile.Baud = flags.baud
			}
			if cmd.Flags().Changed("read-timeout") {
				profile.ReadTimeout = config.Duration(flags.readTimeout)
			}
			if cmd.Flags().Changed("check-silicon-id") {
				profile.CheckSiliconID = flags.checkSilID
			}
			if cmd.Flags().Changed("verify-rows") {
				profile.VerifyRowChecksums = flags.verifyRows
			}

			if profile.Port == "" {
				return fmt.Errorf("no serial port given (use --port or a config file)")
			}

			image, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer image.Close()

			port := serialport.New(profile.Port, profile.Baud)
			port.ReadTimeout = time.Duration(profile.ReadTimeout)

			opts := []bootloader.Option{
				bootloader.WithSiliconIDCheck(profile.CheckSiliconID),
				bootloader.WithRowChecksumValidation(profile.VerifyRowChecksums),
				bootloader.WithProgress(func(p bootloader.Progress) {
					if p.Phase == bootloader.PhaseClosed {
						fmt.Printf("\ndone: %d rows, %d bytes in %s\n", p.Rows, p.Bytes, p.Elapsed.Round(time.Millisecond))
						return
					}
					if p.Rows > 0 {
						fmt.Printf("\rrow %d (array %d, row %d), %d bytes", p.Rows, p.ArrayID, p.RowNum, p.Bytes)
					}
				}),
			}
			if flags.verbose {
				opts = append(opts, bootloader.WithLogger(stdLogger{}))
			}

			return bootloader.Bootload(image, port, opts...)
		},
	}

	cmd.Flags().StringVarP(&flags.port, "port", "p", "", "serial port (e.g. /dev/ttyACM0, COM6)")
	cmd.Flags().IntVarP(&flags.baud, "baud", "b", 115200, "serial baud rate")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "device profile YAML file")
	cmd.Flags().DurationVar(&flags.readTimeout, "read-timeout", 5*time.Second, "serial read timeout")
	cmd.Flags().BoolVar(&flags.checkSilID, "check-silicon-id", false, "abort if the device silicon ID does not match the image")
	cmd.Flags().BoolVar(&flags.verifyRows, "verify-rows", false, "validate row checksum bytes on the host before sending")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log protocol diagnostics")

	return cmd
}

// stdLogger adapts the standard log package to the session Logger.
type stdLogger struct{}

func (stdLogger) Debug(msg string, kv ...interface{}) { log.Println(append([]interface{}{"DEBUG", msg}, kv...)...) }
func (stdLogger) Info(msg string, kv ...interface{})  { log.Println(append([]interface{}{"INFO", msg}, kv...)...) }
func (stdLogger) Error(msg string, kv ...interface{}) { log.Println(append([]interface{}{"ERROR", msg}, kv...)...) }
