package cpu

import (
	"errors"

	"github.com/ezrec/casl/translate"
)

var f = translate.From

var (
	// Execution faults
	ErrIllegalAccess    = errors.New(f("illegal access"))
	ErrInvalidOperation = errors.New(f("invalid operation"))
	ErrStackOverflow    = errors.New(f("stack overflow"))
	ErrStackUnderflow   = errors.New(f("stack underflow"))

	// Configuration errors
	ErrMemorySize = errors.New(f("memory size invalid"))
)

// ErrOpcode identifies the instruction word that faulted.
type ErrOpcode struct {
	Addr uint16
	Word Word
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x at #%04X %v", uint16(eo.Word), eo.Addr, eo.Word.Opcode())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAccess is an illegal memory access at a specific address.
type ErrAccess uint32

func (ea ErrAccess) Error() string {
	return f("address #%04X out of range", uint32(ea))
}

func (ea ErrAccess) Unwrap() error {
	return ErrIllegalAccess
}
