package io

// Temporary keeps input and output lines in memory.
type Temporary struct {
	Capacity int // Maximum number of output lines, or 0 for no limit.

	Input  [][]byte // Lines to be received.
	Output [][]byte // Lines sent.

	ReadIndex int
	Dropped   int // Output lines dropped after reaching capacity.
}

var _ Channel = (*Temporary)(nil)

// Rewind restarts input from the first line, and discards output.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.Output = nil
	temp.Dropped = 0
}

// Receive returns the next input line.
func (temp *Temporary) Receive() (line []byte, ok bool) {
	if temp.ReadIndex >= len(temp.Input) {
		return
	}

	line = temp.Input[temp.ReadIndex]
	temp.ReadIndex++
	ok = true
	return
}

// Send appends a copy of the line to the output. Lines past the capacity
// are dropped, see Full.
func (temp *Temporary) Send(line []byte) {
	if temp.Full() {
		temp.Dropped++
		return
	}

	temp.Output = append(temp.Output, append([]byte(nil), line...))
}

// Full returns true if the output has reached its capacity.
func (temp *Temporary) Full() bool {
	return temp.Capacity > 0 && len(temp.Output) >= temp.Capacity
}

// Err returns ErrChannelFull once output lines have been dropped.
func (temp *Temporary) Err() (err error) {
	if temp.Dropped > 0 {
		err = ErrChannelFull
	}
	return
}

// AddInput appends input lines.
func (temp *Temporary) AddInput(lines ...string) {
	for _, line := range lines {
		temp.Input = append(temp.Input, []byte(line))
	}
}
