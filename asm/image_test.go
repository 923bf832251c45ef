package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageEmit(t *testing.T) {
	assert := assert.New(t)

	img := newImage(t, 8)

	err := img.Emit(Data(1), Bytes([]byte("ab")), Reserve(2))
	assert.NoError(err)
	assert.Equal(5, img.Used())
	assert.Equal([]uint16{1, 'a', 'b', 0, 0}, []uint16(img.Memory[:5]))

	err = img.Emit(Reserve(-1))
	assert.ErrorIs(err, ErrReserveNegative)

	err = img.Emit(SymDef("X"), Data(2), Reserve(3))
	assert.ErrorIs(err, ErrImageFull)
	assert.Equal(5, img.Used())
	assert.False(img.Defined("X"))

	img.Reset()
	assert.Equal(0, img.Used())
	assert.EqualValues(0, img.Memory[1])
}

func TestImageLiterals(t *testing.T) {
	assert := assert.New(t)

	img := newImage(t, 64)
	_, err := assemble(t, img,
		"  LD GR1,=5",
		"  LD GR2,=#0005",
		"  LD GR3,=10",
		"  LD GR4,=5",
		"  LD GR5,='A'",
	)
	assert.NoError(err)
	assert.True(img.End())

	// One word per distinct value, in value order.
	assert.Equal(13, img.Used())
	assert.Equal([]uint16{5, 10, 65}, []uint16(img.Memory[10:13]))

	assert.EqualValues(10, img.Memory[1])
	assert.EqualValues(10, img.Memory[3])
	assert.EqualValues(11, img.Memory[5])
	assert.EqualValues(10, img.Memory[7])
	assert.EqualValues(12, img.Memory[9])

	offset, ok := img.FindSymbol("=#0005")
	assert.True(ok)
	assert.EqualValues(10, offset)
}

func TestImageUnits(t *testing.T) {
	assert := assert.New(t)

	img := newImage(t, 64)
	_, err := assemble(t, img,
		"MAIN  START",
		"      CALL  SUB",
		"      LD    GR1,LOCAL",
		"      RET",
		"LOCAL DC    1",
		"      END",
	)
	assert.NoError(err)
	img.Snapshot()

	_, err = assemble(t, img,
		"SUB   START",
		"      LD    GR2,LOCAL",
		"      RET",
		"LOCAL DC    2",
		"      END",
	)
	assert.NoError(err)
	img.Snapshot()

	assert.Equal(2, img.Units())
	assert.True(img.End())

	assert.EqualValues(6, img.Memory[1])
	assert.EqualValues(5, img.Memory[3])
	assert.EqualValues(9, img.Memory[7])

	offset, ok := img.FindSymbol("LOCAL")
	assert.True(ok)
	assert.EqualValues(5, offset)

	type sym struct {
		name   string
		offset uint16
	}
	var syms []sym
	for name, offset := range img.Symbols() {
		syms = append(syms, sym{name, offset})
	}
	assert.Equal([]sym{{"MAIN", 0}, {"SUB", 6}, {"LOCAL", 5}, {"LOCAL", 9}}, syms)

	for range img.Unresolved() {
		t.Error("unexpected unresolved symbol")
	}
}

func TestImageUnresolved(t *testing.T) {
	assert := assert.New(t)

	img := newImage(t, 64)
	_, err := assemble(t, img,
		"MAIN  START",
		"      LD    GR1,OTHER",
		"      RET",
	)
	assert.NoError(err)
	img.Snapshot()

	_, err = assemble(t, img,
		"OTHER DC    2",
		"      LD    GR2,MAIN",
	)
	assert.NoError(err)

	// The open unit is closed by End().
	assert.False(img.End())
	assert.Equal(2, img.Units())

	var units []int
	var refs []Symbol
	for unit, ref := range img.Unresolved() {
		units = append(units, unit)
		refs = append(refs, ref)
	}
	assert.Equal([]int{0}, units)
	assert.Equal([]Symbol{{Name: "OTHER", Offset: 1}}, refs)

	// The extern reference from the second unit resolved.
	assert.EqualValues(0, img.Memory[5])
}

func TestImageDump(t *testing.T) {
	assert := assert.New(t)

	img := newImage(t, 16)
	assert.Equal("", img.Dump())

	words := []Item{}
	for n := range 10 {
		words = append(words, Data(uint16(0xa0+n)))
	}
	assert.NoError(img.Emit(words...))

	expected := "#0000: 00A0 00A1 00A2 00A3 00A4 00A5 00A6 00A7\n" +
		"#0008: 00A8 00A9\n"
	assert.Equal(expected, img.Dump())
}
