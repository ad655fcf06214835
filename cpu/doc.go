// Package cpu implements the processor and assembler for the LOL16 system.
//
// The CPU consists of a 16-bit program counter, four 16-bit registers
// (A, X, Y, AX), six comparison flags, a flat 64KiB memory, and a stack that
// lives in that memory just below the code origin. Every instruction is a
// fixed 4-byte word: a register byte, an opcode byte, and a big-endian 16-bit
// immediate or address.
//
// The assembler translates one line of source into one instruction word, and
// lays a whole program out into a memory image behind a big-endian start
// vector.
package cpu
