package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list file...",
	Short: "Print an assembly listing",
	Long: `List assembles and links the source files, and prints the line number,
address, emitted words and source text of every line. Lines with errors are
marked, and the errors are reported after the listing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		emu, err := newEmulator(memorySize)
		if err != nil {
			return
		}

		buildErr := build(emu, args)

		err = emu.Listing(os.Stdout)
		if err != nil {
			return
		}

		bad := 0
		for range emu.Errors() {
			bad++
		}
		if bad > 0 {
			fmt.Printf("; %d line(s) with errors\n", bad)
		}

		err = buildErr
		return
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
