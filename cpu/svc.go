package cpu

import (
	"log"
)

// svc dispatches a supervisor call.
//
// IN (1): read one line into the buffer at GR1, and store its length in
// the word at GR2. At end of input the length is 0xFFFF (-1) and the buffer
// is not changed.
//
// OUT (2): write the number of words given by the word at GR2, starting at
// GR1, one byte per word, followed by a line terminator.
func (cpu *Cpu) svc(number uint16) (err error) {
	switch number {
	case SVC_IN:
		err = cpu.svcIn()
	case SVC_OUT:
		err = cpu.svcOut()
	default:
		err = ErrInvalidOperation
	}

	return
}

func (cpu *Cpu) svcIn() (err error) {
	buf := cpu.Register[GR1]
	lenAddr := cpu.Register[GR2]

	var line []byte
	ok := false
	if cpu.Console != nil {
		line, ok = cpu.Console.Receive()
	}

	if !ok {
		if cpu.Verbose {
			log.Printf("cpu: svc in: end of input")
		}
		err = cpu.Memory.Store(lenAddr, 0xffff)
		return
	}

	err = cpu.Memory.Store(lenAddr, uint16(len(line)))
	if err != nil {
		return
	}

	for n, c := range line {
		err = cpu.Memory.Store(buf+uint16(n), uint16(c))
		if err != nil {
			return
		}
	}

	return
}

func (cpu *Cpu) svcOut() (err error) {
	buf := cpu.Register[GR1]

	count, err := cpu.Memory.Fetch(cpu.Register[GR2])
	if err != nil {
		return
	}

	line := make([]byte, 0, count)
	for n := range count {
		var value uint16
		value, err = cpu.Memory.Fetch(buf + n)
		if err != nil {
			return
		}
		line = append(line, byte(value))
	}

	if cpu.Console != nil {
		cpu.Console.Send(line)
	}

	return
}
