package io

import (
	"encoding/binary"
)

// AppendUint16s appends words to a byte slice, big-endian.
func AppendUint16s(buf []byte, words ...uint16) []byte {
	for _, word := range words {
		buf = binary.BigEndian.AppendUint16(buf, word)
	}
	return buf
}

// Uint16s decodes big-endian words from a byte slice. A trailing odd byte
// is ignored.
func Uint16s(buf []byte) (words []uint16) {
	words = make([]uint16, 0, len(buf)/2)
	for len(buf) >= 2 {
		words = append(words, binary.BigEndian.Uint16(buf))
		buf = buf[2:]
	}
	return
}
