package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "psocflash",
		Short: "Flash firmware onto PSoC devices over a serial bootloader",
		Long: `psocflash programs .cyacd firmware images onto PSoC microcontrollers
through the Cypress serial bootloader protocol.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newFlashCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the psocflash version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("psocflash %s\n", version)
		},
	}
}
