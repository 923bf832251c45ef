package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporary(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{}
	temp.AddInput("first", "")

	line, ok := temp.Receive()
	assert.True(ok)
	assert.Equal("first", string(line))

	line, ok = temp.Receive()
	assert.True(ok)
	assert.Empty(line)

	_, ok = temp.Receive()
	assert.False(ok)

	out := []byte("abc")
	temp.Send(out)
	out[0] = 'X'
	assert.Equal([][]byte{[]byte("abc")}, temp.Output)

	temp.Rewind()
	assert.Nil(temp.Output)
	line, ok = temp.Receive()
	assert.True(ok)
	assert.Equal("first", string(line))
}

func TestTemporary_Capacity(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	temp.Send([]byte("1"))
	assert.False(temp.Full())
	temp.Send([]byte("2"))
	assert.True(temp.Full())
	assert.NoError(temp.Err())

	temp.Send([]byte("3"))
	temp.Send([]byte("4"))
	assert.Equal(2, len(temp.Output))
	assert.Equal(2, temp.Dropped)
	assert.ErrorIs(temp.Err(), ErrChannelFull)

	temp.Rewind()
	assert.NoError(temp.Err())
	assert.False(temp.Full())
}
