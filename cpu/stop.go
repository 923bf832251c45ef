package cpu

import (
	"errors"
)

// StopCause is the reason Run returned.
type StopCause int

//go:generate go tool stringer -linecomment -type=StopCause
const (
	STOP_OK                = StopCause(0) // ok
	STOP_SINGLE_STEP       = StopCause(1) // single-step
	STOP_HALT              = StopCause(2) // halt
	STOP_ILLEGAL_ACCESS    = StopCause(3) // illegal-access
	STOP_INVALID_OPERATION = StopCause(4) // invalid-operation
	STOP_STACK_OVERFLOW    = StopCause(5) // stack-overflow
	STOP_STACK_UNDERFLOW   = StopCause(6) // stack-underflow
	STOP_BREAKPOINT        = StopCause(7) // breakpoint
)

// Fault returns true if the cause aborted execution.
func (sc StopCause) Fault() bool {
	switch sc {
	case STOP_ILLEGAL_ACCESS, STOP_INVALID_OPERATION, STOP_STACK_OVERFLOW, STOP_STACK_UNDERFLOW:
		return true
	}
	return false
}

// StopCauseOf maps an execution error from Step to its stop cause.
func StopCauseOf(err error) (cause StopCause) {
	switch {
	case err == nil:
		cause = STOP_OK
	case errors.Is(err, ErrIllegalAccess):
		cause = STOP_ILLEGAL_ACCESS
	case errors.Is(err, ErrStackOverflow):
		cause = STOP_STACK_OVERFLOW
	case errors.Is(err, ErrStackUnderflow):
		cause = STOP_STACK_UNDERFLOW
	default:
		cause = STOP_INVALID_OPERATION
	}
	return
}
