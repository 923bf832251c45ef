package asm

import (
	"iter"
)

// Line is the debug record of one source line.
type Line struct {
	LineNo int     // Line number, starting at 1.
	Text   string  // Source text.
	Tokens []Token // Tokens of the source text.
	Start  uint16  // First word emitted by the line.
	End    uint16  // One past the last word emitted by the line.
	Err    ErrCode // Line status.
}

// Span is the number of words emitted by the line.
func (line *Line) Span() int {
	return int(line.End) - int(line.Start)
}

// Contains returns true if the line emitted the word at addr.
func (line *Line) Contains(addr uint16) bool {
	return addr >= line.Start && addr < line.End
}

// Program is the assembly record of one source file.
type Program struct {
	Name  string
	Lines []Line
}

// Debug finds the line that emitted the word at addr.
func (prog *Program) Debug(addr uint16) (line *Line, ok bool) {
	for n := range prog.Lines {
		if prog.Lines[n].Contains(addr) {
			line = &prog.Lines[n]
			ok = true
			break
		}
	}

	return
}

// Errors yields every line that failed to assemble.
func (prog *Program) Errors() iter.Seq[*Line] {
	return func(yield func(*Line) bool) {
		for n := range prog.Lines {
			line := &prog.Lines[n]
			if line.Err == ERR_OK {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Failed returns true if any line failed to assemble.
func (prog *Program) Failed() bool {
	for range prog.Errors() {
		return true
	}
	return false
}

// Words yields the address and contents of every word the program emitted.
func (prog *Program) Words(img *Image) iter.Seq2[uint16, uint16] {
	return func(yield func(uint16, uint16) bool) {
		for _, line := range prog.Lines {
			for addr := line.Start; addr < line.End; addr++ {
				if !yield(addr, img.Memory[addr]) {
					return
				}
			}
		}
	}
}
