package cpu

import (
	"encoding/binary"
	"fmt"
)

// CodeOp is an opcode identifier, the second byte of an instruction word.
type CodeOp uint8

//go:generate go tool stringer -trimprefix=OP_ -type=CodeOp
const (
	OP_MOV_R_R    = CodeOp(0)
	OP_MOV_R_V    = CodeOp(1)
	OP_MOV_R_A    = CodeOp(2)
	OP_MOV_A_R    = CodeOp(3)
	OP_MOV_AR_R   = CodeOp(4)
	OP_MOV_AR_V   = CodeOp(5)
	OP_MOV_R_AR   = CodeOp(6)
	OP_PUSH_R     = CodeOp(7)
	OP_PUSH_V     = CodeOp(8)
	OP_POP_R      = CodeOp(9)
	OP_CALL_A     = CodeOp(10)
	OP_RET        = CodeOp(11)
	OP_CMP_R_V    = CodeOp(12)
	OP_CMP_V_R    = CodeOp(13)
	OP_CMP_R_R    = CodeOp(14)
	OP_JZ_A       = CodeOp(15)
	OP_JNZ_A      = CodeOp(16)
	OP_JN_A       = CodeOp(17)
	OP_JNN_A      = CodeOp(18)
	OP_JMP_A      = CodeOp(19)
	OP_JE_A       = CodeOp(20)
	OP_JNE_A      = CodeOp(21)
	OP_JL_A       = CodeOp(22)
	OP_JLE_A      = CodeOp(23)
	OP_JG_A       = CodeOp(24)
	OP_JGE_A      = CodeOp(25)
	OP_ADD_R_V_R  = CodeOp(26)
	OP_ADD_R_R_R  = CodeOp(27)
	OP_ADC_R_V_R  = CodeOp(28)
	OP_ADC_R_R_R  = CodeOp(29)
	OP_SUB_R_V_R  = CodeOp(30)
	OP_SUB_V_R_R  = CodeOp(31)
	OP_SUB_R_R_R  = CodeOp(32)
	OP_SBB_R_V_R  = CodeOp(33)
	OP_SBB_V_R_R  = CodeOp(34)
	OP_SBB_R_R_R  = CodeOp(35)
	OP_MUL_R_V_R  = CodeOp(36)
	OP_MUL_R_R_R  = CodeOp(37)
	OP_IMUL_R_V_R = CodeOp(38)
	OP_IMUL_R_R_R = CodeOp(39)
	OP_DIV_R_V_R  = CodeOp(40)
	OP_DIV_V_R_R  = CodeOp(41)
	OP_DIV_R_R_R  = CodeOp(42)
	OP_IDIV_R_V_R = CodeOp(43)
	OP_IDIV_V_R_R = CodeOp(44)
	OP_IDIV_R_R_R = CodeOp(45)
	OP_PASS_R     = CodeOp(46)
	OP_HLT        = CodeOp(47)
)

// OP_IMPLEMENTED is the number of opcodes with defined execution semantics.
// All opcodes from OP_JZ_A upward are reserved.
const OP_IMPLEMENTED = int(OP_CMP_R_R) + 1

// OP_COUNT is the number of declared opcode identifiers.
const OP_COUNT = int(OP_HLT) + 1

// Reserved returns true if the opcode is declared but has no semantics.
func (op CodeOp) Reserved() bool {
	return int(op) >= OP_IMPLEMENTED && int(op) < OP_COUNT
}

// Declared returns true if the opcode is part of the enumeration.
func (op CodeOp) Declared() bool {
	return int(op) < OP_COUNT
}

// Instruction word layout.
const (
	WORD_SIZE     = 4    // Bytes per instruction word.
	WORD_REG_MASK = 0x3  // Mask of one register slot.
	WORD_RESERVED = 0xc0 // Reserved bits of the register byte.
)

// Word is the binary form of an instruction, in memory order:
// register byte, opcode, data high byte, data low byte.
type Word [WORD_SIZE]byte

// Code is a decoded instruction.
type Code struct {
	Op   CodeOp   // Opcode identifier.
	R1   Register // First register slot.
	R2   Register // Second register slot.
	R3   Register // Third register slot.
	Data uint16   // Immediate value or address, depending on Op.
}

// Word packs the instruction into its 4-byte binary form.
func (code Code) Word() (word Word) {
	word[0] = byte(code.R1&WORD_REG_MASK) |
		byte(code.R2&WORD_REG_MASK)<<2 |
		byte(code.R3&WORD_REG_MASK)<<4
	word[1] = byte(code.Op)
	binary.BigEndian.PutUint16(word[2:], code.Data)
	return
}

// Uint32 returns the instruction word read as a big-endian 32-bit value.
func (code Code) Uint32() uint32 {
	word := code.Word()
	return binary.BigEndian.Uint32(word[:])
}

// DecodeWord unpacks a 4-byte instruction word.
// The reserved bits of the register byte must be clear.
func DecodeWord(word Word) (code Code, err error) {
	regs := word[0]
	code = Code{
		Op:   CodeOp(word[1]),
		R1:   Register(regs & WORD_REG_MASK),
		R2:   Register((regs >> 2) & WORD_REG_MASK),
		R3:   Register((regs >> 4) & WORD_REG_MASK),
		Data: binary.BigEndian.Uint16(word[2:]),
	}

	if regs&WORD_RESERVED != 0 {
		err = ErrOpcodeDecode
		return
	}

	return
}

// DecodeUint32 unpacks an instruction word given as a big-endian 32-bit value.
func DecodeUint32(value uint32) (code Code, err error) {
	var word Word
	binary.BigEndian.PutUint32(word[:], value)
	return DecodeWord(word)
}

// String returns the assembly language form of the instruction.
// Reserved and unknown opcodes are shown with their raw fields.
func (code Code) String() (out string) {
	imm := fmt.Sprintf("#$%04X", code.Data)
	addr := fmt.Sprintf("$%04X", code.Data)

	switch code.Op {
	case OP_MOV_R_R:
		out = fmt.Sprintf("mov %v, %v", code.R1, code.R2)
	case OP_MOV_R_V:
		out = fmt.Sprintf("mov %v, %v", code.R1, imm)
	case OP_MOV_R_A:
		out = fmt.Sprintf("mov %v, %v", code.R1, addr)
	case OP_MOV_A_R:
		out = fmt.Sprintf("mov %v, %v", addr, code.R1)
	case OP_MOV_AR_R:
		out = fmt.Sprintf("mov [%v], %v", code.R1, code.R2)
	case OP_MOV_AR_V:
		out = fmt.Sprintf("mov [%v], %v", code.R1, imm)
	case OP_MOV_R_AR:
		out = fmt.Sprintf("mov %v, [%v]", code.R1, code.R2)
	case OP_PUSH_R:
		out = fmt.Sprintf("push %v", code.R1)
	case OP_PUSH_V:
		out = fmt.Sprintf("push %v", imm)
	case OP_POP_R:
		out = fmt.Sprintf("pop %v", code.R1)
	case OP_CALL_A:
		out = fmt.Sprintf("call %v", addr)
	case OP_RET:
		out = "ret"
	case OP_CMP_R_V:
		out = fmt.Sprintf("cmp %v, %v", code.R1, imm)
	case OP_CMP_V_R:
		out = fmt.Sprintf("cmp %v, %v", imm, code.R1)
	case OP_CMP_R_R:
		out = fmt.Sprintf("cmp %v, %v", code.R1, code.R2)
	default:
		out = fmt.Sprintf("%v r1:%v r2:%v r3:%v data:%v", code.Op, code.R1, code.R2, code.R3, addr)
	}

	return
}
