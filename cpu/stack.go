package cpu

// Stack is the memory-resident stack. It grows downward: a push stores the
// high byte at Pointer-1 and the low byte at Pointer, then moves the pointer
// down by two. A pop reverses that.
type Stack struct {
	Pointer uint16  // Stack pointer.
	Memory  *Memory // Backing memory.
}

// Push writes a 16-bit value below the stack pointer.
func (s *Stack) Push(value uint16) (err error) {
	if s.Full() {
		err = ErrStackFull
		return
	}

	err = s.Memory.Write16(int(s.Pointer)-1, value)
	if err != nil {
		return
	}

	s.Pointer -= 2
	return
}

// Pop reads the 16-bit value above the stack pointer.
func (s *Stack) Pop() (value uint16, err error) {
	if s.Empty() {
		err = ErrStackEmpty
		return
	}

	value, err = s.Memory.Read16(int(s.Pointer) + 1)
	if err != nil {
		return
	}

	s.Pointer += 2
	return
}

// Peek returns the value a Pop would return, without moving the pointer.
func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}

	value, err := s.Memory.Read16(int(s.Pointer) + 1)
	ok = err == nil
	return
}

// Full returns true if a push would move the pointer below address 0.
func (s *Stack) Full() bool {
	return s.Pointer < 2
}

// Empty returns true if a pop would move the pointer past the top of memory.
func (s *Stack) Empty() bool {
	return int(s.Pointer)+2 >= RAM_SIZE
}

// Reset places the stack just below the code origin.
func (s *Stack) Reset(origin uint16) {
	s.Pointer = origin - 1
}
