package cpu

import (
	"encoding/binary"
	"iter"
)

// Opcode represents a line of assembled code with its source location and
// generated instruction.
type Opcode struct {
	LineNo int      // Source line number.
	Ip     int      // Address of the instruction word.
	Words  []string // Source words, after expression evaluation.
	Code   Code     // Assembled instruction.
}

// Program is an assembled program, placed at Origin.
type Program struct {
	Origin  uint16
	Opcodes []Opcode
}

// Debug returns the opcode whose instruction word covers ip, or nil.
func (prog *Program) Debug(ip uint16) (op *Opcode) {
	for n := range prog.Opcodes {
		start := prog.Opcodes[n].Ip
		if int(ip) >= start && int(ip) < start+WORD_SIZE {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Codes iterates over the instructions by address.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(ip uint16, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(uint16(op.Ip), op.Code) {
				return
			}
		}
	}
}

// Binary returns the instruction words of the program, in order.
func (prog *Program) Binary() (words []Word) {
	for _, code := range prog.Codes() {
		words = append(words, code.Word())
	}

	return
}

// Image returns a new memory image holding the program.
func (prog *Program) Image() (image []byte, err error) {
	image = make([]byte, RAM_SIZE)
	err = prog.WriteImage(image)
	if err != nil {
		image = nil
	}

	return
}

// WriteImage lays the program out in a memory image:
//   - bytes 0-1 hold the origin, big-endian;
//   - the words follow from the origin on;
//   - every other byte is zero.
//
// ram must be exactly RAM_SIZE bytes. ram is not modified on error.
func (prog *Program) WriteImage(ram []byte) (err error) {
	if len(ram) != RAM_SIZE {
		err = ErrImageSize
		return
	}
	if prog.Origin < VECTOR_SIZE {
		err = ErrOriginInvalid
		return
	}
	if int(prog.Origin)+WORD_SIZE*len(prog.Opcodes) > RAM_SIZE {
		err = ErrImageOverflow
		return
	}

	var image Memory
	binary.BigEndian.PutUint16(image[0:], prog.Origin)
	ip := int(prog.Origin)
	for _, word := range prog.Binary() {
		copy(image[ip:], word[:])
		ip += WORD_SIZE
	}

	copy(ram, image[:])

	return
}
