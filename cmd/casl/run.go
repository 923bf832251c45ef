package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/casl/config"
	"github.com/ezrec/casl/cpu"
	"github.com/ezrec/casl/emulator"
	"github.com/ezrec/casl/io"
)

var ErrNoSources = errors.New(f("no source files"))

var (
	runBreakpoints []string
	runStep        bool
	runDump        bool
	runManifest    string
	runImage       string
	runInput       string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "Build and run a CASL II program",
	Long: `Run builds the source files, or loads a saved memory image with -i,
and runs it from address 0 until HLT or a fault. SVC console I/O uses stdin
and stdout.

Breakpoints (-b) are a label, a '#' hexadecimal address or a decimal
address. At every breakpoint or single step (-s) the registers are
printed, and execution resumes.

A Starlark build manifest (-c) can provide the sources, memory size,
breakpoints and console input. Console input given as a list of lines is
replayed from memory, and the program output is printed when it stops.
Command line options take precedence.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		size := memorySize
		files := args
		breakpoints := runBreakpoints
		input := runInput
		var inputLines []string

		if runManifest != "" {
			var man *config.Manifest
			man, err = config.Load(runManifest, nil)
			if err != nil {
				return
			}
			if !cmd.Flags().Changed("memory") {
				size = man.MemorySize
			}
			files = append(slices.Clone(man.Sources), files...)
			breakpoints = append(slices.Clone(man.Breakpoints), breakpoints...)
			if input == "" {
				input = man.Input
				inputLines = man.InputLines
			}
			verbose = verbose || man.Verbose
		}

		var rom *io.Rom
		if runImage != "" {
			rom, err = loadRom(runImage)
			if err != nil {
				return
			}
			if !cmd.Flags().Changed("memory") {
				size = rom.Size
			}
		}

		emu, err := newEmulator(size)
		if err != nil {
			return
		}

		if input != "" {
			var inf *os.File
			inf, err = os.Open(input)
			if err != nil {
				return
			}
			defer inf.Close()
			emu.Tape.Input = inf
		} else if len(inputLines) > 0 {
			emu.UseTemporary(inputLines...)
		}

		switch {
		case rom != nil:
			err = emu.Load(rom)
		case len(files) > 0:
			err = build(emu, files)
		default:
			err = ErrNoSources
		}
		if err != nil {
			return
		}

		for _, where := range breakpoints {
			var addr uint16
			addr, err = emu.Breakpoint(where)
			if err != nil {
				return
			}
			emu.SetBreakpoint(addr)
		}

		err = run(emu)

		if emu.Cpu.Console == &emu.Temporary {
			for _, line := range emu.Temporary.Output {
				fmt.Println(string(line))
			}
			if err == nil {
				err = emu.Temporary.Err()
			}
		}
		if tapeErr := emu.Tape.Err(); err == nil && tapeErr != nil {
			err = tapeErr
		}
		return
	},
}

func init() {
	flags := runCmd.Flags()
	flags.StringArrayVarP(&runBreakpoints, "break", "b", nil, "breakpoint (label, #hex or decimal)")
	flags.BoolVarP(&runStep, "step", "s", false, "single step")
	flags.BoolVarP(&runDump, "dump", "d", false, "dump the CPU state at each stop")
	flags.StringVarP(&runManifest, "config", "c", "", "Starlark build manifest")
	flags.StringVarP(&runImage, "image", "i", "", "run a saved memory image")
	flags.StringVar(&runInput, "input", "", "console input file, instead of stdin")
	rootCmd.AddCommand(runCmd)
}

func loadRom(path string) (rom *io.Rom, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	rom = &io.Rom{}
	_, err = rom.ReadFrom(inf)
	return
}

// cpuState is the part of the CPU state shown by --dump.
type cpuState struct {
	PR          uint16
	SP          uint16
	Flags       cpu.Flags
	Register    [8]uint16
	Counter     uint32
	Breakpoints []uint16
}

// report prints where the CPU stopped, and its registers.
func report(emu *emulator.Emulator, cause cpu.StopCause) {
	where := ""
	if prog, line, ok := emu.Locate(emu.PR); ok {
		where = fmt.Sprintf(" %v:%d", prog.Name, line.LineNo)
	}
	text, _ := emu.Disassemble(emu.PR)
	fmt.Fprintf(os.Stderr, "%v at #%04X%v: %v\n", cause, emu.PR, where, text)
	fmt.Fprint(os.Stderr, emu.Cpu.String())

	if runDump {
		pp.Fprintln(os.Stderr, cpuState{
			PR:          emu.PR,
			SP:          emu.SP,
			Flags:       emu.Flags,
			Register:    emu.Register,
			Counter:     emu.Counter,
			Breakpoints: slices.Collect(emu.Breakpoints()),
		})
	}
}

// run executes until HLT or a fault, reporting each breakpoint and step.
func run(emu *emulator.Emulator) (err error) {
	for {
		emu.SetSingleStep(runStep)

		var cause cpu.StopCause
		cause, err = emu.Run()
		if err != nil {
			report(emu, cause)
			return
		}

		switch cause {
		case cpu.STOP_HALT:
			if verbose {
				log.Printf("casl: halt after %d instructions", emu.Counter)
			}
			return
		default:
			report(emu, cause)
		}
	}
}
