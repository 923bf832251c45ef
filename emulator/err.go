package emulator

import (
	"errors"

	"github.com/ezrec/casl/asm"
	"github.com/ezrec/casl/translate"
)

var f = translate.From

var (
	ErrNotBuilt = errors.New(f("no program built"))
)

// ErrLink reports a symbol reference that could not be resolved.
type ErrLink struct {
	File   string
	LineNo int
	Line   string
	Symbol string
}

func (err *ErrLink) Error() string {
	if err.LineNo == 0 {
		return f("%v: %v %v", err.File, asm.ErrNoDefSym, err.Symbol)
	}
	return f("%v:%d '%v' %v %v", err.File, err.LineNo, err.Line, asm.ErrNoDefSym, err.Symbol)
}

func (err *ErrLink) Unwrap() error {
	return asm.ErrNoDefSym
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	File   string
	LineNo int
	Addr   uint16
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("#%04X %v", err.Addr, err.Err)
	}
	return f("%v:%d #%04X %v", err.File, err.LineNo, err.Addr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrBreakpoint is a breakpoint location that does not name an address.
type ErrBreakpoint string

func (err ErrBreakpoint) Error() string {
	return f("invalid breakpoint '%v'", string(err))
}
