package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/casl/cpu"
)

// TokenKind classifies a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_OTHER    = TokenKind(0)  // other
	TOKEN_REGISTER = TokenKind(1)  // register
	TOKEN_OPERATOR = TokenKind(2)  // operator
	TOKEN_PSEUDO   = TokenKind(3)  // pseudo
	TOKEN_MACRO    = TokenKind(4)  // macro
	TOKEN_COMMA    = TokenKind(5)  // comma
	TOKEN_LABEL    = TokenKind(6)  // label
	TOKEN_DECIMAL  = TokenKind(7)  // decimal
	TOKEN_HEX      = TokenKind(8)  // hex
	TOKEN_STRING   = TokenKind(9)  // string
	TOKEN_CONST    = TokenKind(10) // const
)

// Mnemonic names an operator, pseudo-instruction or macro.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MN_NONE  = Mnemonic(iota) // -
	MN_LD                     // LD
	MN_ST                     // ST
	MN_LAD                    // LAD
	MN_ADDA                   // ADDA
	MN_ADDL                   // ADDL
	MN_SUBA                   // SUBA
	MN_SUBL                   // SUBL
	MN_AND                    // AND
	MN_OR                     // OR
	MN_XOR                    // XOR
	MN_CPA                    // CPA
	MN_CPL                    // CPL
	MN_SLA                    // SLA
	MN_SRA                    // SRA
	MN_SLL                    // SLL
	MN_SRL                    // SRL
	MN_JPL                    // JPL
	MN_JMI                    // JMI
	MN_JNZ                    // JNZ
	MN_JZE                    // JZE
	MN_JOV                    // JOV
	MN_JUMP                   // JUMP
	MN_PUSH                   // PUSH
	MN_POP                    // POP
	MN_CALL                   // CALL
	MN_RET                    // RET
	MN_SVC                    // SVC
	MN_NOP                    // NOP
	MN_HLT                    // HLT
	MN_START                  // START
	MN_END                    // END
	MN_DC                     // DC
	MN_DS                     // DS
	MN_IN                     // IN
	MN_OUT                    // OUT
)

// Shape is the operand grammar of a mnemonic.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_NONE           = Shape(0) // none
	SHAPE_REG            = Shape(1) // reg
	SHAPE_EADR           = Shape(2) // eadr
	SHAPE_REG_EADR       = Shape(3) // reg-eadr
	SHAPE_REG_REG_OR_MEM = Shape(4) // reg-reg-or-mem
	SHAPE_ADR_ADR        = Shape(5) // adr-adr
	SHAPE_DC_CONST       = Shape(6) // dc-const
	SHAPE_DS_CONST       = Shape(7) // ds-const
)

type opInfo struct {
	kind  TokenKind
	shape Shape
	code  cpu.Opcode // Memory form, or the only form.
	reg   cpu.Opcode // Register-register form.
	svc   uint16     // Supervisor call of a macro.
}

var opTable = map[Mnemonic]opInfo{
	MN_LD:    {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_LD_M, cpu.OP_LD_R, 0},
	MN_ST:    {TOKEN_OPERATOR, SHAPE_REG_EADR, cpu.OP_ST, 0, 0},
	MN_LAD:   {TOKEN_OPERATOR, SHAPE_REG_EADR, cpu.OP_LAD, 0, 0},
	MN_ADDA:  {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_ADDA_M, cpu.OP_ADDA_R, 0},
	MN_ADDL:  {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_ADDL_M, cpu.OP_ADDL_R, 0},
	MN_SUBA:  {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_SUBA_M, cpu.OP_SUBA_R, 0},
	MN_SUBL:  {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_SUBL_M, cpu.OP_SUBL_R, 0},
	MN_AND:   {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_AND_M, cpu.OP_AND_R, 0},
	MN_OR:    {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_OR_M, cpu.OP_OR_R, 0},
	MN_XOR:   {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_XOR_M, cpu.OP_XOR_R, 0},
	MN_CPA:   {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_CPA_M, cpu.OP_CPA_R, 0},
	MN_CPL:   {TOKEN_OPERATOR, SHAPE_REG_REG_OR_MEM, cpu.OP_CPL_M, cpu.OP_CPL_R, 0},
	MN_SLA:   {TOKEN_OPERATOR, SHAPE_REG_EADR, cpu.OP_SLA, 0, 0},
	MN_SRA:   {TOKEN_OPERATOR, SHAPE_REG_EADR, cpu.OP_SRA, 0, 0},
	MN_SLL:   {TOKEN_OPERATOR, SHAPE_REG_EADR, cpu.OP_SLL, 0, 0},
	MN_SRL:   {TOKEN_OPERATOR, SHAPE_REG_EADR, cpu.OP_SRL, 0, 0},
	MN_JPL:   {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_JPL, 0, 0},
	MN_JMI:   {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_JMI, 0, 0},
	MN_JNZ:   {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_JNZ, 0, 0},
	MN_JZE:   {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_JZE, 0, 0},
	MN_JOV:   {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_JOV, 0, 0},
	MN_JUMP:  {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_JUMP, 0, 0},
	MN_PUSH:  {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_PUSH, 0, 0},
	MN_POP:   {TOKEN_OPERATOR, SHAPE_REG, cpu.OP_POP, 0, 0},
	MN_CALL:  {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_CALL, 0, 0},
	MN_RET:   {TOKEN_OPERATOR, SHAPE_NONE, cpu.OP_RET, 0, 0},
	MN_SVC:   {TOKEN_OPERATOR, SHAPE_EADR, cpu.OP_SVC, 0, 0},
	MN_NOP:   {TOKEN_OPERATOR, SHAPE_NONE, cpu.OP_NOP, 0, 0},
	MN_HLT:   {TOKEN_OPERATOR, SHAPE_NONE, cpu.OP_HLT, 0, 0},
	MN_START: {TOKEN_PSEUDO, SHAPE_NONE, 0, 0, 0},
	MN_END:   {TOKEN_PSEUDO, SHAPE_NONE, 0, 0, 0},
	MN_DC:    {TOKEN_PSEUDO, SHAPE_DC_CONST, 0, 0, 0},
	MN_DS:    {TOKEN_PSEUDO, SHAPE_DS_CONST, 0, 0, 0},
	MN_IN:    {TOKEN_MACRO, SHAPE_ADR_ADR, 0, 0, cpu.SVC_IN},
	MN_OUT:   {TOKEN_MACRO, SHAPE_ADR_ADR, 0, 0, cpu.SVC_OUT},
}

// Shape returns the operand grammar of the mnemonic.
func (mn Mnemonic) Shape() Shape {
	return opTable[mn].shape
}

// keywords maps reserved spellings to their tokens.
var keywords = func() (kw map[string]Token) {
	kw = make(map[string]Token, len(opTable)+8)
	for mn, info := range opTable {
		name := mn.String()
		kw[name] = Token{Kind: info.kind, Text: name, Mnemonic: mn}
	}
	for reg := cpu.GR0; reg <= cpu.GR7; reg++ {
		name := reg.String()
		kw[name] = Token{Kind: TOKEN_REGISTER, Text: name, Reg: reg}
	}
	return
}()

// Token is one lexeme of a source line.
type Token struct {
	Kind     TokenKind
	Text     string   // Source spelling, or the contents of a string.
	Value    int      // Value of TOKEN_DECIMAL, TOKEN_HEX and TOKEN_CONST.
	Reg      cpu.Reg  // Register of TOKEN_REGISTER.
	Mnemonic Mnemonic // Mnemonic of TOKEN_OPERATOR, TOKEN_PSEUDO and TOKEN_MACRO.
}

func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_STRING:
		return fmt.Sprintf("%v('%v')", tok.Kind, strings.ReplaceAll(tok.Text, "'", "''"))
	case TOKEN_DECIMAL, TOKEN_HEX, TOKEN_CONST:
		return fmt.Sprintf("%v(%v=%d)", tok.Kind, tok.Text, tok.Value)
	default:
		return fmt.Sprintf("%v(%v)", tok.Kind, tok.Text)
	}
}

// IsNumber returns true for decimal and hex literals.
func (tok Token) IsNumber() bool {
	return tok.Kind == TOKEN_DECIMAL || tok.Kind == TOKEN_HEX
}

// IsAddress returns true if the token can be used as an address operand.
func (tok Token) IsAddress() bool {
	return tok.IsNumber() || tok.Kind == TOKEN_LABEL || tok.Kind == TOKEN_CONST
}

// Word is the 16-bit value of a numeric token.
func (tok Token) Word() uint16 {
	return uint16(tok.Value)
}
