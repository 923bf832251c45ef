// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	goio "io"
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/casl/asm"
	"github.com/ezrec/casl/cpu"
	"github.com/ezrec/casl/internal"
	"github.com/ezrec/casl/io"
)

const (
	TEMPORARY_CAPACITY = 8192 // Output lines kept by the temporary channel.
)

// Source is one assembler source file.
type Source struct {
	Name   string
	Reader goio.Reader
}

// SourceString makes a source from text.
func SourceString(name string, text string) Source {
	return Source{Name: name, Reader: strings.NewReader(text)}
}

// Emulator state. CPU + memory image + line I/O channels.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Image    *asm.Image     // Memory image and symbol tables.
	Programs []*asm.Program // Assembly listing of each source, in link order.

	Temporary io.Temporary // Temporary buffer IO channel.
	Tape      io.Tape      // Tape IO channel.

	built bool
	used  int
}

// NewEmulator creates a new emulator with size words of memory. The
// console is the tape channel.
func NewEmulator(size int) (emu *Emulator, err error) {
	mem, err := cpu.NewMemory(size)
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:   cpu.NewCpu(mem),
		Image: asm.NewImage(mem),
	}

	emu.Temporary.Capacity = TEMPORARY_CAPACITY
	emu.Cpu.Console = &emu.Tape

	return
}

// UseTemporary switches the console to the in-memory channel, with lines
// as its input. Output is kept in Temporary.Output.
func (emu *Emulator) UseTemporary(lines ...string) {
	emu.Temporary.Input = nil
	emu.Temporary.AddInput(lines...)
	emu.Temporary.Rewind()
	emu.Cpu.Console = &emu.Temporary
}

// Build assembles and links the sources into memory, one link unit per
// source, then resets the CPU. All assembly errors, or all link errors,
// are returned.
func (emu *Emulator) Build(sources ...Source) (err error) {
	emu.built = false
	emu.used = 0
	emu.Programs = nil
	emu.Image.Reset()
	emu.Image.Verbose = emu.Verbose

	assembler := &asm.Assembler{Verbose: emu.Verbose}

	var errs []error
	for _, src := range sources {
		if emu.Verbose {
			log.Printf("emulator: assemble %v", src.Name)
		}
		prog, asmErr := assembler.Assemble(src.Name, src.Reader, emu.Image)
		emu.Programs = append(emu.Programs, prog)
		if asmErr != nil {
			errs = append(errs, asmErr)
		}
		emu.Image.Snapshot()
	}

	if len(errs) > 0 {
		err = errors.Join(errs...)
		return
	}

	if !emu.Image.End() {
		err = emu.linkError()
		return
	}

	emu.built = true
	emu.used = emu.Image.Used()
	emu.Reset()

	return
}

// linkError maps the unresolved references to the source lines that made
// them, and marks those lines.
func (emu *Emulator) linkError() (err error) {
	var errs []error

	for unit, ref := range emu.Image.Unresolved() {
		le := &ErrLink{Symbol: ref.Name}
		if unit < len(emu.Programs) {
			prog := emu.Programs[unit]
			le.File = prog.Name
			for n := range prog.Lines {
				line := &prog.Lines[n]
				if line.Err != asm.ERR_OK && line.Err != asm.ERR_NO_DEF_SYM {
					continue
				}
				if line.Span() > 0 && line.Contains(ref.Offset) {
					line.Err = asm.ERR_NO_DEF_SYM
					le.LineNo = line.LineNo
					le.Line = line.Text
					break
				}
			}
		}
		errs = append(errs, le)
	}

	err = errors.Join(errs...)
	return
}

// Errors yields the source lines that failed to assemble or link, in
// link order.
func (emu *Emulator) Errors() iter.Seq[*asm.Line] {
	seqs := make([]iter.Seq[*asm.Line], 0, len(emu.Programs))
	for _, prog := range emu.Programs {
		seqs = append(seqs, prog.Errors())
	}
	return internal.IterSeqConcat(seqs...)
}

// Load a memory image, replacing any built program.
func (emu *Emulator) Load(rom *io.Rom) (err error) {
	if len(rom.Data) > len(emu.Memory) {
		err = io.ErrRomSize
		return
	}

	emu.Programs = nil
	emu.Image.Reset()
	copy(emu.Memory, rom.Data)

	emu.built = true
	emu.used = len(rom.Data)
	emu.Reset()

	return
}

// Rom returns the used part of memory as a persistent image.
func (emu *Emulator) Rom() (rom *io.Rom) {
	rom = &io.Rom{
		Size: len(emu.Memory),
		Data: slices.Clone(emu.Memory[:emu.used]),
	}
	return
}

// Used returns the number of memory words used by the program, including
// literal constants.
func (emu *Emulator) Used() int {
	return emu.used
}

// Reset the CPU, and rewind the console.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	if emu.Cpu.Console != nil {
		emu.Cpu.Console.Rewind()
	}
}

// Run the CPU until it stops. Faults are returned as ErrRuntime.
func (emu *Emulator) Run() (cause cpu.StopCause, err error) {
	if !emu.built {
		err = ErrNotBuilt
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	cause = emu.Cpu.Run()
	if cause.Fault() {
		err = emu.runtimeError(emu.Cpu.Fault)
	}

	return
}

// Step executes a single instruction. Faults are returned as ErrRuntime.
func (emu *Emulator) Step() (err error) {
	if !emu.built {
		err = ErrNotBuilt
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	err = emu.Cpu.Step()
	if err != nil {
		err = emu.runtimeError(err)
	}

	return
}

func (emu *Emulator) runtimeError(fault error) error {
	re := &ErrRuntime{Addr: emu.Cpu.PR, Err: fault}

	var eo cpu.ErrOpcode
	if errors.As(fault, &eo) {
		re.Addr = eo.Addr
	}

	if prog, line, ok := emu.Locate(re.Addr); ok {
		re.File = prog.Name
		re.LineNo = line.LineNo
	}

	return re
}

// Locate finds the source line that emitted the word at addr.
func (emu *Emulator) Locate(addr uint16) (prog *asm.Program, line *asm.Line, ok bool) {
	for _, prog = range emu.Programs {
		line, ok = prog.Debug(addr)
		if ok {
			return
		}
	}

	prog = nil
	return
}

// Breakpoint resolves a breakpoint location: a label, a '#' hexadecimal
// address, or a decimal address.
func (emu *Emulator) Breakpoint(where string) (addr uint16, err error) {
	tokens := asm.Tokenize(where)
	if len(tokens) != 1 {
		err = ErrBreakpoint(where)
		return
	}

	tok := tokens[0]
	switch {
	case tok.Kind == asm.TOKEN_LABEL:
		var ok bool
		addr, ok = emu.Image.FindSymbol(tok.Text)
		if !ok {
			err = ErrBreakpoint(where)
			return
		}
	case tok.IsNumber() && tok.Value >= 0:
		addr = tok.Word()
	default:
		err = ErrBreakpoint(where)
		return
	}

	if int(addr) >= len(emu.Memory) {
		err = ErrBreakpoint(where)
	}

	return
}

// Listing writes the address, words and source text of every line.
func (emu *Emulator) Listing(w goio.Writer) (err error) {
	for _, prog := range emu.Programs {
		_, err = fmt.Fprintf(w, "; %v\n", prog.Name)
		if err != nil {
			return
		}
		for _, line := range prog.Lines {
			var words []string
			for addr := line.Start; addr < line.End; addr++ {
				words = append(words, fmt.Sprintf("%04X", emu.Memory[addr]))
			}
			status := ""
			if line.Err != asm.ERR_OK {
				status = "  ! " + line.Err.String()
			}
			_, err = fmt.Fprintf(w, "%4d #%04X %-24v %v%v\n",
				line.LineNo, line.Start, strings.Join(words, " "), line.Text, status)
			if err != nil {
				return
			}
		}
	}

	return
}
