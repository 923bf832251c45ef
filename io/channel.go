// Package io provides the line I/O channels used by supervisor calls, and
// memory image persistence.
//
// Tape connects a channel to an io.Reader and io.Writer, Temporary keeps
// lines in memory, and Rom stores a memory image.
package io

// Channel defines the line I/O interface used by the CPU's supervisor
// calls. Lines never include their terminator.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns the next input line, or ok == false at end of input.
	Receive() (line []byte, ok bool)
	// Send writes a single output line.
	Send(line []byte)
}
