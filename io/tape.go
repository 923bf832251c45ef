package io

import (
	"bufio"
	"bytes"
	"io"
)

// Tape provides line I/O over byte streams.
// It wraps an io.Reader for input and io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	err    error
}

var _ Channel = (*Tape)(nil)

// Rewind drops any buffered input, and forgets prior write errors.
// The underlying streams are not rewound.
func (tc *Tape) Rewind() {
	tc.reader = nil
	tc.err = nil
}

// Receive reads the next line from the input stream. The line terminator
// ('\n' or "\r\n") is removed. A final line without a terminator is still
// returned.
func (tc *Tape) Receive() (line []byte, ok bool) {
	if tc.Input == nil {
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	line, err := tc.reader.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		if err != io.EOF {
			tc.err = err
		}
		line = nil
		return
	}

	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	ok = true

	return
}

// Send writes a line, followed by '\n', to the output stream.
func (tc *Tape) Send(line []byte) {
	if tc.Output == nil || tc.err != nil {
		return
	}

	_, err := tc.Output.Write(append(line, '\n'))
	if err != nil {
		tc.err = err
	}
}

// Err returns the first error seen on either stream, other than end of
// input.
func (tc *Tape) Err() error {
	return tc.err
}
