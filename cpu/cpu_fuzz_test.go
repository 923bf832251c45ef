package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/casl/io"
)

func FuzzCpu(f *testing.F) {
	for op := range 0x100 {
		if Opcode(op).Valid() {
			f.Add(uint16(op<<8), uint16(0x0004), uint16(0), false)
			f.Add(uint16(op<<8|0x21), uint16(0xfffe), uint16(0x0003), true)
		}
	}
	f.Add(uint16(0xffff), uint16(0xffff), uint16(0xffff), true)

	f.Fuzz(func(t *testing.T, word uint16, adr uint16, gr uint16, stack bool) {
		assert := assert.New(t)

		cpu := newTestCpu(t, 16, word, adr)
		for n := range cpu.Register {
			cpu.Register[n] = gr + uint16(n)
		}
		if stack {
			assert.NoError(cpu.Push(gr))
			assert.NoError(cpu.Push(adr))
		}

		temp := &io.Temporary{}
		temp.AddInput("fuzz")
		cpu.Console = temp

		text, size := cpu.Disassemble(0)
		assert.NotEmpty(text)
		assert.True(size == 1 || size == 2, "size %d", size)

		err := cpu.Step()
		assert.EqualValues(1, cpu.Counter)
		assert.LessOrEqual(cpu.SP, cpu.Memory.Size())

		if err != nil {
			assert.True(StopCauseOf(err).Fault(), "%v", err)

			var eo ErrOpcode
			if assert.True(errors.As(err, &eo)) {
				assert.EqualValues(0, eo.Addr)
				assert.Equal(Word(word), eo.Word)
			}
		}
	})
}
