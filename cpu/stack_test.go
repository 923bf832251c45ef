package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCpu(t *testing.T, size int, words ...uint16) *Cpu {
	mem, err := NewMemory(size)
	if err != nil {
		t.Fatal(err)
	}
	copy(mem, words)
	return NewCpu(mem)
}

func TestStack_PushPop(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(t, 4)
	assert.True(cpu.Empty())
	assert.Equal(0, cpu.Depth())

	assert.NoError(cpu.Push(0x1234))
	assert.NoError(cpu.Push(0xabcd))
	assert.EqualValues(2, cpu.SP)
	assert.Equal(2, cpu.Depth())
	assert.EqualValues(0x1234, cpu.Memory[3])
	assert.EqualValues(0xabcd, cpu.Memory[2])

	val, ok := cpu.Peek()
	assert.True(ok)
	assert.EqualValues(0xabcd, val)

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.EqualValues(0xabcd, val)

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.EqualValues(0x1234, val)
	assert.True(cpu.Empty())

	_, ok = cpu.Peek()
	assert.False(ok)
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(t, 4)
	_, err := cpu.Pop()
	assert.ErrorIs(err, ErrIllegalAccess)
	assert.EqualValues(4, cpu.SP)
}

func TestStack_Push_Full(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(t, 4)
	for n := range 4 {
		assert.NoError(cpu.Push(uint16(n)))
	}
	assert.EqualValues(0, cpu.SP)

	err := cpu.Push(99)
	assert.ErrorIs(err, ErrIllegalAccess)
	assert.EqualValues(0, cpu.SP)
}

func TestStack_CallRet(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(t, 8)
	cpu.PR = 2

	assert.NoError(cpu.call(5))
	assert.EqualValues(5, cpu.PR)
	assert.EqualValues(7, cpu.SP)
	assert.EqualValues(2, cpu.Memory[7])

	assert.ErrorIs(cpu.call(8), ErrIllegalAccess)
	assert.EqualValues(5, cpu.PR)

	assert.NoError(cpu.ret())
	assert.EqualValues(2, cpu.PR)
	assert.True(cpu.Empty())

	assert.ErrorIs(cpu.ret(), ErrStackUnderflow)

	cpu.SP = 0
	assert.ErrorIs(cpu.call(1), ErrStackOverflow)
}
