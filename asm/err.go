package asm

import (
	"errors"

	"github.com/ezrec/casl/translate"
)

var f = translate.From

var (
	// Line errors
	ErrNoOperation    = errors.New(f("no operation"))
	ErrNoOperand      = errors.New(f("no operand"))
	ErrInvalidOperand = errors.New(f("invalid operand"))
	ErrNoDcOrDs       = errors.New(f("constant without DC or DS"))
	ErrNoDefSym       = errors.New(f("symbol not defined"))
	ErrMultiDefSym    = errors.New(f("symbol already defined"))
	ErrUnknown        = errors.New(f("unknown error"))

	// Image errors
	ErrImageFull       = errors.New(f("memory image full"))
	ErrReserveNegative = errors.New(f("negative reservation"))
)

// ErrSyntax reports the source line of an assembly error.
type ErrSyntax struct {
	File   string
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("%v:%d '%v' %v", err.File, err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrCode is the status of one assembled line.
type ErrCode int

//go:generate go tool stringer -linecomment -type=ErrCode
const (
	ERR_OK              = ErrCode(0) // ok
	ERR_NO_OPERATION    = ErrCode(1) // no-operation
	ERR_NO_OPERAND      = ErrCode(2) // no-operand
	ERR_INVALID_OPERAND = ErrCode(3) // invalid-operand
	ERR_NO_DC_OR_DS     = ErrCode(4) // no-dc-or-ds
	ERR_NO_DEF_SYM      = ErrCode(5) // no-def-sym
	ERR_MULTI_DEF_SYM   = ErrCode(6) // multi-def-sym
	ERR_ERR             = ErrCode(7) // err
)

var errCodeMap = map[ErrCode]error{
	ERR_NO_OPERATION:    ErrNoOperation,
	ERR_NO_OPERAND:      ErrNoOperand,
	ERR_INVALID_OPERAND: ErrInvalidOperand,
	ERR_NO_DC_OR_DS:     ErrNoDcOrDs,
	ERR_NO_DEF_SYM:      ErrNoDefSym,
	ERR_MULTI_DEF_SYM:   ErrMultiDefSym,
	ERR_ERR:             ErrUnknown,
}

// Err returns the error for the code, or nil for ERR_OK.
func (code ErrCode) Err() error {
	return errCodeMap[code]
}
