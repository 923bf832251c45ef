package cpu

const (
	MEMORY_SIZE_DEFAULT = 4096   // Words of memory in a default machine.
	MEMORY_SIZE_MAX     = 0xffff // SP must be able to hold the memory size.
)

// Memory is the word addressable memory image shared by the assembler and
// the CPU.
type Memory []uint16

// NewMemory allocates a zeroed memory image.
func NewMemory(size int) (mem Memory, err error) {
	if size <= 0 || size > MEMORY_SIZE_MAX {
		err = ErrMemorySize
		return
	}

	mem = make(Memory, size)
	return
}

// Size of the memory, in words.
func (mem Memory) Size() uint16 {
	return uint16(len(mem))
}

// Fetch a word from memory.
func (mem Memory) Fetch(addr uint16) (value uint16, err error) {
	if int(addr) >= len(mem) {
		err = ErrAccess(addr)
		return
	}

	value = mem[addr]
	return
}

// Store a word to memory.
func (mem Memory) Store(addr uint16, value uint16) (err error) {
	if int(addr) >= len(mem) {
		err = ErrAccess(addr)
		return
	}

	mem[addr] = value
	return
}
