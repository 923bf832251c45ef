package cpu

import (
	"fmt"
)

// Opcode is the 8-bit operation field of an instruction word.
type Opcode uint8

const (
	OP_NOP    = Opcode(0x00)
	OP_LD_M   = Opcode(0x10)
	OP_ST     = Opcode(0x11)
	OP_LAD    = Opcode(0x12)
	OP_LD_R   = Opcode(0x14)
	OP_ADDA_M = Opcode(0x20)
	OP_ADDL_M = Opcode(0x21)
	OP_SUBA_M = Opcode(0x22)
	OP_SUBL_M = Opcode(0x23)
	OP_ADDA_R = Opcode(0x24)
	OP_ADDL_R = Opcode(0x25)
	OP_SUBA_R = Opcode(0x26)
	OP_SUBL_R = Opcode(0x27)
	OP_AND_M  = Opcode(0x30)
	OP_OR_M   = Opcode(0x31)
	OP_XOR_M  = Opcode(0x32)
	OP_AND_R  = Opcode(0x34)
	OP_OR_R   = Opcode(0x35)
	OP_XOR_R  = Opcode(0x36)
	OP_CPA_M  = Opcode(0x40)
	OP_CPL_M  = Opcode(0x41)
	OP_CPA_R  = Opcode(0x44)
	OP_CPL_R  = Opcode(0x45)
	OP_SLA    = Opcode(0x50)
	OP_SRA    = Opcode(0x51)
	OP_SLL    = Opcode(0x52)
	OP_SRL    = Opcode(0x53)
	OP_JPL    = Opcode(0x60)
	OP_JMI    = Opcode(0x61)
	OP_JNZ    = Opcode(0x62)
	OP_JZE    = Opcode(0x63)
	OP_JOV    = Opcode(0x64)
	OP_JUMP   = Opcode(0x65)
	OP_PUSH   = Opcode(0x70)
	OP_POP    = Opcode(0x71)
	OP_CALL   = Opcode(0x80)
	OP_RET    = Opcode(0x81)
	OP_SVC    = Opcode(0xf0)
	OP_HLT    = Opcode(0xf1)
)

// SVC call numbers.
const (
	SVC_IN  = uint16(1) // Read one line.
	SVC_OUT = uint16(2) // Write one line.
)

type opcodeInfo struct {
	name   string
	memory bool // Followed by an address word.
	regReg bool // Register to register form.
}

var opcodeTable = map[Opcode]opcodeInfo{
	OP_NOP:    {"NOP", false, false},
	OP_LD_M:   {"LD", true, false},
	OP_ST:     {"ST", true, false},
	OP_LAD:    {"LAD", true, false},
	OP_LD_R:   {"LD", false, true},
	OP_ADDA_M: {"ADDA", true, false},
	OP_ADDL_M: {"ADDL", true, false},
	OP_SUBA_M: {"SUBA", true, false},
	OP_SUBL_M: {"SUBL", true, false},
	OP_ADDA_R: {"ADDA", false, true},
	OP_ADDL_R: {"ADDL", false, true},
	OP_SUBA_R: {"SUBA", false, true},
	OP_SUBL_R: {"SUBL", false, true},
	OP_AND_M:  {"AND", true, false},
	OP_OR_M:   {"OR", true, false},
	OP_XOR_M:  {"XOR", true, false},
	OP_AND_R:  {"AND", false, true},
	OP_OR_R:   {"OR", false, true},
	OP_XOR_R:  {"XOR", false, true},
	OP_CPA_M:  {"CPA", true, false},
	OP_CPL_M:  {"CPL", true, false},
	OP_CPA_R:  {"CPA", false, true},
	OP_CPL_R:  {"CPL", false, true},
	OP_SLA:    {"SLA", true, false},
	OP_SRA:    {"SRA", true, false},
	OP_SLL:    {"SLL", true, false},
	OP_SRL:    {"SRL", true, false},
	OP_JPL:    {"JPL", true, false},
	OP_JMI:    {"JMI", true, false},
	OP_JNZ:    {"JNZ", true, false},
	OP_JZE:    {"JZE", true, false},
	OP_JOV:    {"JOV", true, false},
	OP_JUMP:   {"JUMP", true, false},
	OP_PUSH:   {"PUSH", true, false},
	OP_POP:    {"POP", false, false},
	OP_CALL:   {"CALL", true, false},
	OP_RET:    {"RET", false, false},
	OP_SVC:    {"SVC", true, false},
	OP_HLT:    {"HLT", false, false},
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() (ok bool) {
	_, ok = opcodeTable[op]
	return
}

// Size returns the number of words used by an instruction with this opcode.
func (op Opcode) Size() int {
	if opcodeTable[op].memory {
		return 2
	}
	return 1
}

func (op Opcode) String() string {
	info, ok := opcodeTable[op]
	if !ok {
		return fmt.Sprintf("Opcode(0x%02x)", uint8(op))
	}
	return info.name
}

// srcSlot lists the operators that carry their single register operand in
// the source (index) slot of the instruction word.
var srcSlot = map[Opcode]bool{
	OP_JMI:  true,
	OP_JNZ:  true,
	OP_JZE:  true,
	OP_JUMP: true,
	OP_JPL:  true,
	OP_JOV:  true,
	OP_PUSH: true,
	OP_CALL: true,
	OP_SVC:  true,
}

// Reg is a general-purpose register number.
type Reg uint8

//go:generate go tool stringer -linecomment -type=Reg
const (
	GR0 = Reg(0) // GR0
	GR1 = Reg(1) // GR1
	GR2 = Reg(2) // GR2
	GR3 = Reg(3) // GR3
	GR4 = Reg(4) // GR4
	GR5 = Reg(5) // GR5
	GR6 = Reg(6) // GR6
	GR7 = Reg(7) // GR7
)

// Word is a 16-bit memory cell, viewed as a packed instruction.
//
//	15       8 7    4 3    0
//	[ opcode ][ src ][ des ]
type Word uint16

// MakeWord packs an instruction word.
func MakeWord(op Opcode, des Reg, src Reg) Word {
	return Word(uint16(op)<<8 | (uint16(src)&0xf)<<4 | uint16(des)&0xf)
}

// OpWord makes an instruction word from an operator and its register
// operands as written in source order.
//
// Jumps, PUSH, CALL and SVC take a single register in the source slot and
// leave the destination as GR0. All other operators take the destination
// register first, then the source register.
func OpWord(op Opcode, regs ...Reg) Word {
	var des, src Reg
	if srcSlot[op] {
		if len(regs) > 0 {
			src = regs[0]
		}
	} else {
		if len(regs) > 0 {
			des = regs[0]
		}
		if len(regs) > 1 {
			src = regs[1]
		}
	}

	return MakeWord(op, des, src)
}

// Opcode decodes the operation field.
func (w Word) Opcode() Opcode {
	return Opcode(uint16(w) >> 8)
}

// Des decodes the destination register field.
func (w Word) Des() Reg {
	return Reg(uint16(w) & 0xf)
}

// Src decodes the source (index) register field.
func (w Word) Src() Reg {
	return Reg((uint16(w) >> 4) & 0xf)
}

func (w Word) String() string {
	return fmt.Sprintf("%v %v,%v", w.Opcode(), w.Des(), w.Src())
}

// Disassemble formats the instruction word, and the address word that
// follows it for memory forms, in assembler syntax.
func Disassemble(w Word, adr uint16) (text string) {
	op := w.Opcode()
	info, ok := opcodeTable[op]
	if !ok {
		return fmt.Sprintf("DC #%04X", uint16(w))
	}

	index := ""
	if w.Src() != GR0 {
		index = "," + w.Src().String()
	}

	switch {
	case info.regReg:
		text = fmt.Sprintf("%v %v,%v", info.name, w.Des(), w.Src())
	case op == OP_POP:
		text = fmt.Sprintf("%v %v", info.name, w.Des())
	case !info.memory:
		text = info.name
	case srcSlot[op]:
		text = fmt.Sprintf("%v #%04X%v", info.name, adr, index)
	default:
		text = fmt.Sprintf("%v %v,#%04X%v", info.name, w.Des(), adr, index)
	}

	return
}
