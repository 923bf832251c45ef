package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/casl/emulator"
)

var (
	buildOutput  string
	buildSymbols bool
	buildDump    bool
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build file...",
	Short: "Assemble and link CASL II sources",
	Long: `Build assembles and links the source files, then reports the memory
size and the number of words used. With -o the memory image is saved, and
can be run later with 'casl run -i'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		emu, err := newEmulator(memorySize)
		if err != nil {
			return
		}

		err = build(emu, args)
		if err != nil {
			return
		}

		fmt.Println(f("Memory Word Size: %d", len(emu.Memory)))
		fmt.Println(f("Used Word Size: %d", emu.Used()))

		if buildSymbols {
			symbols := map[string]uint16{}
			for name, offset := range emu.Image.Symbols() {
				if _, ok := symbols[name]; !ok {
					symbols[name] = offset
				}
			}
			pp.Println(symbols)
		}

		if buildDump {
			fmt.Print(emu.Image.Dump())
		}

		if buildOutput != "" {
			var ouf *os.File
			ouf, err = os.Create(buildOutput)
			if err != nil {
				return
			}
			defer ouf.Close()

			_, err = emu.Rom().WriteTo(ouf)
		}

		return
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "save the memory image")
	buildCmd.Flags().BoolVar(&buildSymbols, "symbols", false, "dump the symbol table")
	buildCmd.Flags().BoolVar(&buildDump, "dump", false, "dump the memory image in hexadecimal")
	rootCmd.AddCommand(buildCmd)
}

// newEmulator creates an emulator with the global options.
func newEmulator(size int) (emu *emulator.Emulator, err error) {
	emu, err = emulator.NewEmulator(size)
	if err != nil {
		return
	}

	emu.Verbose = verbose
	emu.Tape.Input = os.Stdin
	emu.Tape.Output = os.Stdout
	return
}

// build opens the source files, and builds them in order.
func build(emu *emulator.Emulator, files []string) (err error) {
	var sources []emulator.Source
	for _, name := range files {
		var inf *os.File
		inf, err = os.Open(name)
		if err != nil {
			return
		}
		defer inf.Close()
		sources = append(sources, emulator.Source{Name: name, Reader: inf})
	}

	err = emu.Build(sources...)
	return
}
