// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command casl assembles, links and runs CASL II programs on a simulated
// COMET II.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/casl/cpu"
	"github.com/ezrec/casl/translate"
)

var f = translate.From

var (
	memorySize int
	verbose    bool
	language   string
)

var rootCmd = &cobra.Command{
	Use:   "casl",
	Short: "CASL II assembler and COMET II simulator",
	Long: `casl assembles CASL II source files into a single COMET II memory
image, linking them in command line order, and runs the result.

Each source file is its own link unit. Labels declared with START, and
literal constants, are shared by all units.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if language != "" {
			return translate.SetLanguage(language)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&memorySize, "memory", "m", cpu.MEMORY_SIZE_DEFAULT, "memory size, in words")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	flags.StringVar(&language, "lang", "", "message language (BCP 47 tag)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
