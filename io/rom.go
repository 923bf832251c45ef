package io

import (
	"bytes"
	"io"
)

// ROM_MAGIC starts every memory image file.
const ROM_MAGIC = "CASL"

// Rom is a persistent memory image.
//
// The file format is the magic, the memory size and the number of used
// words, then the used words. All values are big-endian 16-bit words.
type Rom struct {
	Size int      // Memory size, in words.
	Data []uint16 // Used words, starting at address 0.
}

// WriteTo writes the image.
func (rc *Rom) WriteTo(w io.Writer) (n int64, err error) {
	if rc.Size < len(rc.Data) || rc.Size > 0xffff {
		err = ErrRomSize
		return
	}

	buf := []byte(ROM_MAGIC)
	buf = AppendUint16s(buf, uint16(rc.Size), uint16(len(rc.Data)))
	buf = AppendUint16s(buf, rc.Data...)

	written, err := w.Write(buf)
	n = int64(written)
	return
}

// ReadFrom reads an image.
func (rc *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	header := make([]byte, len(ROM_MAGIC)+4)
	read, err := io.ReadFull(r, header)
	n += int64(read)
	if err != nil {
		return
	}

	if !bytes.Equal(header[:len(ROM_MAGIC)], []byte(ROM_MAGIC)) {
		err = ErrRomMagic
		return
	}

	sizes := Uint16s(header[len(ROM_MAGIC):])
	size, used := int(sizes[0]), int(sizes[1])
	if size == 0 || used > size {
		err = ErrRomSize
		return
	}

	data := make([]byte, used*2)
	read, err = io.ReadFull(r, data)
	n += int64(read)
	if err != nil {
		return
	}

	rc.Size = size
	rc.Data = Uint16s(data)
	return
}
