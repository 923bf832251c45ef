package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("one\r\ntwo\n\nlast")}

	var lines []string
	for {
		line, ok := tape.Receive()
		if !ok {
			break
		}
		lines = append(lines, string(line))
	}
	assert.Equal([]string{"one", "two", "", "last"}, lines)
	assert.NoError(tape.Err())

	_, ok := tape.Receive()
	assert.False(ok)
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	line, ok := tape.Receive()
	assert.False(ok)
	assert.Nil(line)
	assert.NoError(tape.Err())
}

func TestTape_Receive_Error(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	tape := &Tape{Input: iotest.ErrReader(boom)}

	_, ok := tape.Receive()
	assert.False(ok)
	assert.ErrorIs(tape.Err(), boom)

	tape.Rewind()
	assert.NoError(tape.Err())
}

type failWriter struct {
	writes int
}

func (fw *failWriter) Write(buf []byte) (int, error) {
	fw.writes++
	return 0, errors.New("disk on fire")
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	tape := &Tape{Output: &out}

	tape.Send([]byte("Hello"))
	tape.Send(nil)
	tape.Send([]byte("World"))
	assert.Equal("Hello\n\nWorld\n", out.String())
	assert.NoError(tape.Err())

	// No output stream discards.
	tape = &Tape{}
	tape.Send([]byte("lost"))
	assert.NoError(tape.Err())
}

func TestTape_Send_Error(t *testing.T) {
	assert := assert.New(t)

	fw := &failWriter{}
	tape := &Tape{Output: fw}

	tape.Send([]byte("a"))
	tape.Send([]byte("b"))
	assert.Error(tape.Err())
	assert.Equal(1, fw.writes)
}
