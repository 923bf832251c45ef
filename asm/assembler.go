// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"

	"github.com/ezrec/casl/cpu"
)

// Assembler is a line oriented CASL II assembler.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// AssembleLine assembles a single source line into img. A line with an
// error emits nothing, not even its label.
func (asm *Assembler) AssembleLine(lineno int, text string, img *Image) (line Line) {
	tokens := Tokenize(text)

	line = Line{
		LineNo: lineno,
		Text:   text,
		Tokens: tokens,
		Start:  img.Offset(),
	}

	line.Err = checkSyntax(tokens)
	if line.Err == ERR_OK {
		line.Err = asm.emit(tokens, img)
	}

	line.End = img.Offset()

	if asm.Verbose {
		log.Printf("asm: %d: #%04X-#%04X %v %v", lineno, line.Start, line.End, line.Err, tokens)
	}

	return
}

// Assemble assembles a source stream into img, one line at a time. All line
// errors are collected and returned as ErrSyntax errors.
func (asm *Assembler) Assemble(name string, input io.Reader, img *Image) (prog *Program, err error) {
	prog = &Program{Name: name}

	var errs []error

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := asm.AssembleLine(lineno, scanner.Text(), img)
		prog.Lines = append(prog.Lines, line)
		if line.Err != ERR_OK {
			errs = append(errs, ErrSyntax{
				File:   name,
				LineNo: lineno,
				Line:   line.Text,
				Err:    line.Err.Err(),
			})
		}
	}

	if scanErr := scanner.Err(); scanErr != nil {
		errs = append(errs, scanErr)
	}

	err = errors.Join(errs...)
	return
}

func tokenKinds(tokens []Token, kinds ...TokenKind) bool {
	if len(tokens) != len(kinds) {
		return false
	}

	for n, kind := range kinds {
		if tokens[n].Kind != kind {
			return false
		}
	}

	return true
}

// isIndexed matches "adr" or "adr,x".
func isIndexed(args []Token) bool {
	switch len(args) {
	case 1:
		return args[0].IsAddress()
	case 3:
		return args[0].IsAddress() && tokenKinds(args[1:], TOKEN_COMMA, TOKEN_REGISTER)
	default:
		return false
	}
}

// checkSyntax validates the operand shape of a line.
func checkSyntax(tokens []Token) (code ErrCode) {
	if len(tokens) == 0 {
		return
	}

	if tokens[0].Kind == TOKEN_LABEL {
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return
		}
	}

	head := tokens[0]
	switch head.Kind {
	case TOKEN_OPERATOR, TOKEN_PSEUDO, TOKEN_MACRO:
	case TOKEN_DECIMAL, TOKEN_HEX, TOKEN_STRING, TOKEN_CONST:
		return ERR_NO_DC_OR_DS
	default:
		return ERR_NO_OPERATION
	}

	args := tokens[1:]
	shape := head.Mnemonic.Shape()

	if shape == SHAPE_NONE {
		if len(args) != 0 {
			code = ERR_INVALID_OPERAND
		}
		return
	}

	if len(args) == 0 {
		return ERR_NO_OPERAND
	}

	valid := false
	switch shape {
	case SHAPE_REG:
		valid = tokenKinds(args, TOKEN_REGISTER)
	case SHAPE_EADR:
		valid = isIndexed(args)
	case SHAPE_REG_EADR:
		valid = len(args) > 2 && tokenKinds(args[:2], TOKEN_REGISTER, TOKEN_COMMA) && isIndexed(args[2:])
	case SHAPE_REG_REG_OR_MEM:
		valid = tokenKinds(args, TOKEN_REGISTER, TOKEN_COMMA, TOKEN_REGISTER) ||
			(len(args) > 2 && tokenKinds(args[:2], TOKEN_REGISTER, TOKEN_COMMA) && isIndexed(args[2:]))
	case SHAPE_ADR_ADR:
		valid = len(args) == 3 && args[0].IsAddress() && args[1].Kind == TOKEN_COMMA && args[2].IsAddress()
	case SHAPE_DC_CONST:
		valid = len(args)%2 == 1
		for n := 0; valid && n < len(args); n++ {
			if n%2 == 1 {
				valid = args[n].Kind == TOKEN_COMMA
			} else {
				valid = args[n].IsNumber() || args[n].Kind == TOKEN_STRING || args[n].Kind == TOKEN_LABEL
			}
		}
	case SHAPE_DS_CONST:
		valid = len(args) == 1 && args[0].IsNumber() && args[0].Value >= 0
	}

	if !valid {
		code = ERR_INVALID_OPERAND
	}

	return
}

// address is the item for an address operand.
func address(tok Token) Item {
	switch tok.Kind {
	case TOKEN_LABEL:
		return SymRef(tok.Text)
	case TOKEN_CONST:
		return SymConst(tok.Text, tok.Word())
	default:
		return Data(tok.Word())
	}
}

// index is the index register of an "adr,x" operand at args[n:].
func index(args []Token, n int) cpu.Reg {
	if len(args) > n+2 {
		return args[n+2].Reg
	}
	return cpu.GR0
}

// emit appends the content of a syntactically valid line to img.
func (asm *Assembler) emit(tokens []Token, img *Image) (code ErrCode) {
	if len(tokens) == 0 {
		return
	}

	var items []Item

	if tokens[0].Kind == TOKEN_LABEL {
		name := tokens[0].Text
		if img.Defined(name) {
			return ERR_MULTI_DEF_SYM
		}
		tokens = tokens[1:]
		if len(tokens) > 0 && tokens[0].Mnemonic == MN_START {
			items = append(items, SymStart(name))
		} else {
			items = append(items, SymDef(name))
		}
	}

	if len(tokens) > 0 {
		items = append(items, operation(tokens[0], tokens[1:])...)
	}

	err := img.Emit(items...)
	if err != nil {
		if asm.Verbose {
			log.Printf("asm: %v", err)
		}
		code = ERR_ERR
	}

	return
}

// operation expands an operator, pseudo-instruction or macro into items.
func operation(head Token, args []Token) (items []Item) {
	info := opTable[head.Mnemonic]

	switch info.shape {
	case SHAPE_NONE:
		if head.Kind == TOKEN_OPERATOR {
			items = append(items, Op(cpu.OpWord(info.code)))
		}
	case SHAPE_REG:
		items = append(items, Op(cpu.OpWord(info.code, args[0].Reg)))
	case SHAPE_EADR:
		items = append(items,
			Op(cpu.OpWord(info.code, index(args, 0))),
			address(args[0]))
	case SHAPE_REG_EADR:
		items = append(items,
			Op(cpu.OpWord(info.code, args[0].Reg, index(args, 2))),
			address(args[2]))
	case SHAPE_REG_REG_OR_MEM:
		if args[2].Kind == TOKEN_REGISTER {
			items = append(items, Op(cpu.OpWord(info.reg, args[0].Reg, args[2].Reg)))
		} else {
			items = append(items,
				Op(cpu.OpWord(info.code, args[0].Reg, index(args, 2))),
				address(args[2]))
		}
	case SHAPE_ADR_ADR:
		// Preserve GR1 and GR2 around the supervisor call.
		items = append(items,
			Op(cpu.OpWord(cpu.OP_PUSH, cpu.GR1)), Data(0),
			Op(cpu.OpWord(cpu.OP_PUSH, cpu.GR2)), Data(0),
			Op(cpu.OpWord(cpu.OP_LAD, cpu.GR1)), address(args[0]),
			Op(cpu.OpWord(cpu.OP_LAD, cpu.GR2)), address(args[2]),
			Op(cpu.OpWord(cpu.OP_SVC)), Data(info.svc),
			Op(cpu.OpWord(cpu.OP_POP, cpu.GR2)),
			Op(cpu.OpWord(cpu.OP_POP, cpu.GR1)),
		)
	case SHAPE_DC_CONST:
		for n := 0; n < len(args); n += 2 {
			arg := args[n]
			switch arg.Kind {
			case TOKEN_STRING:
				items = append(items, Bytes([]byte(arg.Text)))
			case TOKEN_LABEL:
				items = append(items, SymRef(arg.Text))
			default:
				items = append(items, Data(arg.Word()))
			}
		}
	case SHAPE_DS_CONST:
		items = append(items, Reserve(args[0].Value))
	}

	return
}
