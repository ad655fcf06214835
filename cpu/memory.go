package cpu

import (
	"encoding/binary"
)

const (
	RAM_SIZE       = 0x10000 // Bytes of memory.
	VECTOR_SIZE    = 2       // Bytes of the start vector at address 0.
	ORIGIN_DEFAULT = 0xa000  // Default code origin.
)

// Memory is the flat, byte-addressable memory of the machine.
// Addresses are passed as int so that stack and pointer arithmetic which
// wraps past either end is caught instead of silently folded back.
type Memory [RAM_SIZE]byte

// check returns an error unless [addr, addr+count) is inside memory.
func (mem *Memory) check(addr int, count int) (err error) {
	if addr < 0 || count < 0 || addr+count > len(mem) {
		err = ErrAddressRange
	}
	return
}

// Read16 reads the big-endian 16-bit value at addr.
func (mem *Memory) Read16(addr int) (value uint16, err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}

	value = binary.BigEndian.Uint16(mem[addr:])
	return
}

// Write16 writes value big-endian at addr. Nothing is written on error.
func (mem *Memory) Write16(addr int, value uint16) (err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}

	binary.BigEndian.PutUint16(mem[addr:], value)
	return
}

// Fetch reads the instruction word at addr.
func (mem *Memory) Fetch(addr int) (word Word, err error) {
	err = mem.check(addr, WORD_SIZE)
	if err != nil {
		return
	}

	copy(word[:], mem[addr:])
	return
}

// Range returns a copy of count bytes starting at addr.
func (mem *Memory) Range(addr uint16, count int) (data []byte, err error) {
	err = mem.check(int(addr), count)
	if err != nil {
		return
	}

	data = make([]byte, count)
	copy(data, mem[addr:])
	return
}
