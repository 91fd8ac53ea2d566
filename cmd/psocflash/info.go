package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robbym/psoc-bootloader/cyacd"
	"github.com/robbym/psoc-bootloader/protocol"
)

func newInfoCmd() *cobra.Command {
	var verifyRows bool

	cmd := &cobra.Command{
		Use:   "info <firmware.cyacd>",
		Short: "Inspect a .cyacd image without touching a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			p := cyacd.NewParser(f)
			header, err := p.Header()
			if err != nil {
				return err
			}

			fmt.Printf("silicon ID:    0x%08X\n", header.SiliconID)
			fmt.Printf("silicon rev:   0x%02X\n", header.SiliconRev)
			fmt.Printf("checksum type: %s\n", header.Checksum)

			rows := 0
			bytes := 0
			badChecksums := 0
			for {
				row, err := p.NextRow()
				if err != nil {
					if protocol.IsEOF(err) {
						break
					}
					return err
				}
				rows++
				bytes += len(row.Data)
				if verifyRows && !row.ChecksumValid() {
					badChecksums++
					fmt.Printf("row checksum invalid: array %d, row %d\n", row.ArrayID, row.RowNum)
				}
			}

			fmt.Printf("rows:          %d\n", rows)
			fmt.Printf("data bytes:    %d\n", bytes)
			if verifyRows && badChecksums > 0 {
				return fmt.Errorf("%d row(s) failed checksum validation", badChecksums)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verifyRows, "verify-rows", false, "validate each row's checksum byte")

	return cmd
}
