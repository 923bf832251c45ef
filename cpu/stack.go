package cpu

// The stack lives at the top of memory. SP points at the most recently
// pushed word, and is equal to the memory size when the stack is empty.

// Push a value onto the stack.
func (cpu *Cpu) Push(value uint16) (err error) {
	sp := cpu.SP - 1
	err = cpu.Memory.Store(sp, value)
	if err != nil {
		return
	}

	cpu.SP = sp
	return
}

// Pop a value from the stack.
func (cpu *Cpu) Pop() (value uint16, err error) {
	value, err = cpu.Memory.Fetch(cpu.SP)
	if err != nil {
		return
	}

	cpu.SP++
	return
}

// Peek at the top of the stack.
func (cpu *Cpu) Peek() (value uint16, ok bool) {
	if cpu.Empty() {
		return
	}

	value, err := cpu.Memory.Fetch(cpu.SP)
	ok = err == nil
	return
}

// Empty returns true if nothing has been pushed.
func (cpu *Cpu) Empty() bool {
	return int(cpu.SP) >= len(cpu.Memory)
}

// Depth returns the number of words on the stack.
func (cpu *Cpu) Depth() int {
	if cpu.Empty() {
		return 0
	}
	return len(cpu.Memory) - int(cpu.SP)
}

// call saves PR on the stack and transfers control to target.
func (cpu *Cpu) call(target uint16) (err error) {
	if cpu.SP == 0 {
		err = ErrStackOverflow
		return
	}

	if target >= cpu.Memory.Size() {
		err = ErrAccess(target)
		return
	}

	err = cpu.Push(cpu.PR)
	if err != nil {
		return
	}

	cpu.PR = target
	return
}

// ret restores PR from the stack.
func (cpu *Cpu) ret() (err error) {
	if cpu.Empty() {
		err = ErrStackUnderflow
		return
	}

	cpu.PR, err = cpu.Pop()
	return
}
