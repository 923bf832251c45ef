package io

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_WriteTo(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Size: 8, Data: []uint16{0x0001, 0xabcd}}

	var buf bytes.Buffer
	n, err := rom.WriteTo(&buf)
	assert.NoError(err)
	assert.EqualValues(12, n)
	assert.Equal([]byte{'C', 'A', 'S', 'L', 0, 8, 0, 2, 0, 1, 0xab, 0xcd}, buf.Bytes())

	rom = &Rom{Size: 1, Data: []uint16{1, 2}}
	_, err = rom.WriteTo(&buf)
	assert.ErrorIs(err, ErrRomSize)
}

func TestRom_ReadFrom(t *testing.T) {
	assert := assert.New(t)

	input := []byte{'C', 'A', 'S', 'L', 0x01, 0x00, 0, 3, 0, 1, 0, 2, 0xff, 0xff, 0x99}
	rom := &Rom{}
	n, err := rom.ReadFrom(bytes.NewReader(input))
	assert.NoError(err)
	assert.EqualValues(14, n)
	assert.Equal(256, rom.Size)
	assert.Equal([]uint16{1, 2, 0xffff}, rom.Data)
}

func TestRom_ReadFrom_Errors(t *testing.T) {
	table := [](struct {
		name  string
		input []byte
		err   error
	}){
		{"empty", nil, io.EOF},
		{"short-header", []byte{'C', 'A', 'S'}, io.ErrUnexpectedEOF},
		{"magic", []byte{'U', 'C', 'A', 'P', 0, 8, 0, 0}, ErrRomMagic},
		{"zero-size", []byte{'C', 'A', 'S', 'L', 0, 0, 0, 0}, ErrRomSize},
		{"used-too-large", []byte{'C', 'A', 'S', 'L', 0, 1, 0, 2, 0, 0, 0, 0}, ErrRomSize},
		{"short-data", []byte{'C', 'A', 'S', 'L', 0, 8, 0, 2, 0, 1, 0}, io.ErrUnexpectedEOF},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			rom := &Rom{Size: 5}
			_, err := rom.ReadFrom(bytes.NewReader(entry.input))
			assert.ErrorIs(err, entry.err)
			assert.Equal(5, rom.Size)
			assert.Nil(rom.Data)
		})
	}
}
