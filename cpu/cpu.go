// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/casl/io"
)

// Channel is the line I/O channel used by supervisor calls.
type Channel io.Channel

// Flags is the flag register.
type Flags struct {
	OF  bool // Overflow.
	SF  bool // Sign.
	ZF  bool // Zero.
	HLT bool // Halted by HLT.
	SS  bool // Single step requested.
}

func (fl *Flags) setSignZero(value uint16) {
	fl.SF = (value & 0x8000) != 0
	fl.ZF = value == 0
}

// setLogical clears the overflow flag, and sets sign and zero from value.
func (fl *Flags) setLogical(value uint16) {
	fl.OF = false
	fl.setSignZero(value)
}

func (fl Flags) String() string {
	bit := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	return fmt.Sprintf("OF=%d SF=%d ZF=%d", bit(fl.OF), bit(fl.SF), bit(fl.ZF))
}

// Cpu is the simulation context for a COMET II processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Memory image, shared with the assembler.
	Register [8]uint16 // General-purpose registers GR0-GR7.
	SP       uint16    // Stack pointer.
	PR       uint16    // Program register.
	Flags    Flags     // Flag register.
	Counter  uint32    // Executed instruction counter.

	Console Channel // Supervisor call line I/O.
	Fault   error   // Error of the instruction that stopped Run(), if any.

	breakpoints map[uint16]struct{}
	breakPR     int // PR of the last breakpoint stop, or -1.
}

// NewCpu creates a new CPU executing from a memory image.
func NewCpu(mem Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:      mem,
		breakpoints: map[uint16]struct{}{},
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
//   - Clears the registers and flags.
//   - Sets SP to the end of memory, and PR to zero.
//   - Zeros the instruction counter.
//
// Breakpoints are kept.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.SP = cpu.Memory.Size()
	cpu.PR = 0
	cpu.Flags = Flags{}
	cpu.Counter = 0
	cpu.Fault = nil
	cpu.breakPR = -1
}

// SetBreakpoint adds a breakpoint address.
func (cpu *Cpu) SetBreakpoint(addr uint16) {
	if cpu.breakpoints == nil {
		cpu.breakpoints = map[uint16]struct{}{}
	}
	cpu.breakpoints[addr] = struct{}{}
}

// ClearBreakpoint removes a breakpoint address.
func (cpu *Cpu) ClearBreakpoint(addr uint16) {
	delete(cpu.breakpoints, addr)
}

// ClearBreakpoints removes all breakpoints.
func (cpu *Cpu) ClearBreakpoints() {
	clear(cpu.breakpoints)
}

// Breakpoints returns the breakpoint addresses in ascending order.
func (cpu *Cpu) Breakpoints() iter.Seq[uint16] {
	return slices.Values(slices.Sorted(maps.Keys(cpu.breakpoints)))
}

// SetSingleStep requests that Run stops after the next instruction.
func (cpu *Cpu) SetSingleStep(enable bool) {
	cpu.Flags.SS = enable
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"PR", "SP", "FR",
		"GR0", "GR1", "GR2", "GR3", "GR4", "GR5", "GR6", "GR7",
		"TOS", "COUNT",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "PR":
			strval = fmt.Sprintf("#%04X", cpu.PR)
		case "SP":
			strval = fmt.Sprintf("#%04X", cpu.SP)
		case "FR":
			strval = cpu.Flags.String()
		case "GR0", "GR1", "GR2", "GR3", "GR4", "GR5", "GR6", "GR7":
			val := cpu.Register[reg[2]-'0']
			strval = fmt.Sprintf("#%04X %6d", val, int16(val))
		case "TOS":
			val, ok := cpu.Peek()
			if ok {
				strval = fmt.Sprintf("#%04X", val)
			} else {
				strval = "-----"
			}
		case "COUNT":
			strval = fmt.Sprintf("%d", cpu.Counter)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Disassemble the instruction at addr, returning its text and size in words.
func (cpu *Cpu) Disassemble(addr uint16) (text string, size int) {
	value, err := cpu.Memory.Fetch(addr)
	if err != nil {
		return
	}

	code := Word(value)
	size = 1
	var adr uint16
	if code.Opcode().Valid() && code.Opcode().Size() == 2 {
		adr, err = cpu.Memory.Fetch(addr + 1)
		if err == nil {
			size = 2
		}
	}

	text = Disassemble(code, adr)
	return
}

// Run executes instructions until a stop condition:
//   - a breakpoint address is reached (unless execution is resuming there),
//   - an instruction faults,
//   - HLT is executed,
//   - or a single step was requested.
func (cpu *Cpu) Run() (cause StopCause) {
	cpu.Flags.HLT = false
	cpu.Fault = nil

	for {
		if cpu.breakPR != int(cpu.PR) {
			if _, ok := cpu.breakpoints[cpu.PR]; ok {
				if cpu.Verbose {
					log.Printf("cpu: breakpoint #%04X", cpu.PR)
				}
				cpu.breakPR = int(cpu.PR)
				cause = STOP_BREAKPOINT
				return
			}
		}
		cpu.breakPR = -1

		err := cpu.Step()
		if err != nil {
			if cpu.Verbose {
				log.Printf("cpu: %v", err)
			}
			cpu.Fault = err
			cause = StopCauseOf(err)
			return
		}

		if cpu.Flags.HLT {
			cause = STOP_HALT
			return
		}

		if cpu.Flags.SS {
			cpu.Flags.SS = false
			cause = STOP_SINGLE_STEP
			return
		}
	}
}

// Step fetches and executes exactly one instruction.
func (cpu *Cpu) Step() (err error) {
	cpu.Counter++

	addr := cpu.PR
	value, err := cpu.Memory.Fetch(addr)
	if err != nil {
		return
	}
	cpu.PR++

	code := Word(value)
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Addr: addr, Word: code}, err)
		}
	}()

	if cpu.Verbose {
		text, _ := cpu.Disassemble(addr)
		log.Printf("cpu: #%04X: %v", addr, text)
	}

	err = cpu.Execute(code)
	return
}

// effectiveAddress fetches the address word at PR, and adds the index
// register. GR0 is an ordinary register, and is added like any other.
func (cpu *Cpu) effectiveAddress(index Reg) (adr uint16, err error) {
	adr, err = cpu.Memory.Fetch(cpu.PR)
	if err != nil {
		return
	}
	cpu.PR++

	adr += cpu.Register[index]
	return
}

// operand fetches the word at the effective address.
func (cpu *Cpu) operand(index Reg) (value uint16, err error) {
	adr, err := cpu.effectiveAddress(index)
	if err != nil {
		return
	}

	value, err = cpu.Memory.Fetch(adr)
	return
}

func (cpu *Cpu) addArithmetic(des *uint16, src uint16) {
	result := int32(int16(*des)) + int32(int16(src))
	*des = uint16(result)
	cpu.Flags.OF = result < -0x8000 || result > 0x7fff
	cpu.Flags.setSignZero(*des)
}

func (cpu *Cpu) subArithmetic(des *uint16, src uint16) {
	result := int32(int16(*des)) - int32(int16(src))
	*des = uint16(result)
	cpu.Flags.OF = result < -0x8000 || result > 0x7fff
	cpu.Flags.setSignZero(*des)
}

func (cpu *Cpu) addLogical(des *uint16, src uint16) {
	result := uint32(*des) + uint32(src)
	*des = uint16(result)
	cpu.Flags.OF = (result & 0x10000) != 0
	cpu.Flags.setSignZero(*des)
}

func (cpu *Cpu) subLogical(des *uint16, src uint16) {
	result := uint32(*des) - uint32(src)
	*des = uint16(result)
	cpu.Flags.OF = (result & 0x10000) != 0
	cpu.Flags.setSignZero(*des)
}

// shift performs SLA, SRA, SLL or SRL on a register.
func (cpu *Cpu) shift(op Opcode, reg *uint16, count uint16) {
	value := *reg
	if count == 0 {
		cpu.Flags.setLogical(value)
		return
	}

	var of bool
	switch op {
	case OP_SLA:
		// Sign bit stays where it is.
		shifted := uint16(uint32(value) << count)
		of = (shifted & 0x8000) != 0
		value = (shifted & 0x7fff) | (value & 0x8000)
	case OP_SRA:
		shifted := int16(value) >> (count - 1)
		of = (shifted & 1) != 0
		value = uint16(shifted >> 1)
	case OP_SLL:
		shifted := uint32(value) << count
		of = (shifted & 0x10000) != 0
		value = uint16(shifted)
	case OP_SRL:
		shifted := uint32(value) >> (count - 1)
		of = (shifted & 1) != 0
		value = uint16(shifted >> 1)
	}

	*reg = value
	cpu.Flags.OF = of
	cpu.Flags.setSignZero(value)
}

// taken evaluates a conditional jump.
func (cpu *Cpu) taken(op Opcode) bool {
	fl := cpu.Flags
	switch op {
	case OP_JPL:
		return !fl.SF && !fl.ZF
	case OP_JMI:
		return fl.SF
	case OP_JNZ:
		return !fl.ZF
	case OP_JZE:
		return fl.ZF
	case OP_JOV:
		return fl.OF
	}
	return true
}

// Execute executes a single decoded instruction. PR has already been
// advanced past the instruction word.
func (cpu *Cpu) Execute(code Word) (err error) {
	op := code.Opcode()
	des := code.Des()
	src := code.Src()

	if des > GR7 || src > GR7 {
		err = ErrInvalidOperation
		return
	}

	gr := &cpu.Register

	switch op {
	case OP_NOP:
		// pass
	case OP_LD_R:
		gr[des] = gr[src]
		cpu.Flags.setLogical(gr[des])
	case OP_LD_M:
		var value uint16
		value, err = cpu.operand(src)
		if err != nil {
			return
		}
		gr[des] = value
		cpu.Flags.setLogical(gr[des])
	case OP_ST:
		var adr uint16
		adr, err = cpu.effectiveAddress(src)
		if err != nil {
			return
		}
		err = cpu.Memory.Store(adr, gr[des])
	case OP_LAD:
		var adr uint16
		adr, err = cpu.effectiveAddress(src)
		if err != nil {
			return
		}
		gr[des] = adr
	case OP_ADDA_R:
		cpu.addArithmetic(&gr[des], gr[src])
	case OP_ADDL_R:
		cpu.addLogical(&gr[des], gr[src])
	case OP_SUBA_R:
		cpu.subArithmetic(&gr[des], gr[src])
	case OP_SUBL_R:
		cpu.subLogical(&gr[des], gr[src])
	case OP_AND_R:
		gr[des] &= gr[src]
		cpu.Flags.setLogical(gr[des])
	case OP_OR_R:
		gr[des] |= gr[src]
		cpu.Flags.setLogical(gr[des])
	case OP_XOR_R:
		gr[des] ^= gr[src]
		cpu.Flags.setLogical(gr[des])
	case OP_CPA_R:
		scratch := gr[des]
		cpu.subArithmetic(&scratch, gr[src])
	case OP_CPL_R:
		scratch := gr[des]
		cpu.subLogical(&scratch, gr[src])
	case OP_ADDA_M, OP_ADDL_M, OP_SUBA_M, OP_SUBL_M,
		OP_AND_M, OP_OR_M, OP_XOR_M,
		OP_CPA_M, OP_CPL_M:
		var value uint16
		value, err = cpu.operand(src)
		if err != nil {
			return
		}
		scratch := gr[des]
		switch op {
		case OP_ADDA_M:
			cpu.addArithmetic(&gr[des], value)
		case OP_ADDL_M:
			cpu.addLogical(&gr[des], value)
		case OP_SUBA_M:
			cpu.subArithmetic(&gr[des], value)
		case OP_SUBL_M:
			cpu.subLogical(&gr[des], value)
		case OP_AND_M:
			gr[des] &= value
			cpu.Flags.setLogical(gr[des])
		case OP_OR_M:
			gr[des] |= value
			cpu.Flags.setLogical(gr[des])
		case OP_XOR_M:
			gr[des] ^= value
			cpu.Flags.setLogical(gr[des])
		case OP_CPA_M:
			cpu.subArithmetic(&scratch, value)
		case OP_CPL_M:
			cpu.subLogical(&scratch, value)
		}
	case OP_SLA, OP_SRA, OP_SLL, OP_SRL:
		var count uint16
		count, err = cpu.effectiveAddress(src)
		if err != nil {
			return
		}
		cpu.shift(op, &gr[des], count)
	case OP_JPL, OP_JMI, OP_JNZ, OP_JZE, OP_JOV, OP_JUMP:
		var adr uint16
		adr, err = cpu.effectiveAddress(src)
		if err != nil {
			return
		}
		if cpu.taken(op) {
			if adr >= cpu.Memory.Size() {
				err = ErrAccess(adr)
				return
			}
			cpu.PR = adr
		}
	case OP_PUSH:
		var adr uint16
		adr, err = cpu.effectiveAddress(src)
		if err != nil {
			return
		}
		err = cpu.Push(adr)
	case OP_POP:
		var value uint16
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		gr[des] = value
	case OP_CALL:
		if cpu.SP == 0 {
			err = ErrStackOverflow
			return
		}
		var adr uint16
		adr, err = cpu.effectiveAddress(src)
		if err != nil {
			return
		}
		err = cpu.call(adr)
	case OP_RET:
		err = cpu.ret()
	case OP_SVC:
		var number uint16
		number, err = cpu.effectiveAddress(src)
		if err != nil {
			return
		}
		err = cpu.svc(number)
	case OP_HLT:
		cpu.Flags.HLT = true
	default:
		err = ErrInvalidOperation
	}

	return
}
