package cpu

// Mnemonics and their exact operand counts.
var mnemonicMap = map[string]int{
	"mov":  2,
	"push": 1,
	"pop":  1,
	"call": 1,
	"ret":  0,
	"cmp":  2,
}

// Arity returns the operand count required by a mnemonic.
func Arity(mnemonic string) (count int, ok bool) {
	count, ok = mnemonicMap[mnemonic]
	return
}

// Encode selects the instruction form for a mnemonic from the kinds of its
// operands, and fills in the register slots and data payload.
//
// Slot assignment: for moves, R1 is the destination register (or the pointer
// register of an indirect store) and R2 is the source register (or the
// pointer register of an indirect load). Register-immediate compares keep the
// register in R1 whichever side it was written on.
func Encode(mnemonic string, ops ...Operand) (code Code, err error) {
	count, ok := mnemonicMap[mnemonic]
	if !ok {
		err = ErrInstructionInvalid
		return
	}
	if len(ops) != count {
		err = ErrOpcodeArgCount
		return
	}

	kind := func(n int) OperandKind { return ops[n].Kind }

	switch mnemonic {
	case "mov":
		dst, src := ops[0], ops[1]
		switch {
		case kind(0) == OPERAND_REGISTER && kind(1) == OPERAND_REGISTER:
			code = Code{Op: OP_MOV_R_R, R1: dst.Register, R2: src.Register}
		case kind(0) == OPERAND_REGISTER && kind(1) == OPERAND_IMMEDIATE:
			code = Code{Op: OP_MOV_R_V, R1: dst.Register, Data: src.Value}
		case kind(0) == OPERAND_REGISTER && kind(1) == OPERAND_ADDRESS:
			code = Code{Op: OP_MOV_R_A, R1: dst.Register, Data: src.Value}
		case kind(0) == OPERAND_ADDRESS && kind(1) == OPERAND_REGISTER:
			code = Code{Op: OP_MOV_A_R, R1: src.Register, Data: dst.Value}
		case kind(0) == OPERAND_INDIRECT && kind(1) == OPERAND_REGISTER:
			code = Code{Op: OP_MOV_AR_R, R1: dst.Register, R2: src.Register}
		case kind(0) == OPERAND_INDIRECT && kind(1) == OPERAND_IMMEDIATE:
			code = Code{Op: OP_MOV_AR_V, R1: dst.Register, Data: src.Value}
		case kind(0) == OPERAND_REGISTER && kind(1) == OPERAND_INDIRECT:
			code = Code{Op: OP_MOV_R_AR, R1: dst.Register, R2: src.Register}
		default:
			err = ErrOperandForm
		}
	case "push":
		switch kind(0) {
		case OPERAND_REGISTER:
			code = Code{Op: OP_PUSH_R, R1: ops[0].Register}
		case OPERAND_IMMEDIATE:
			code = Code{Op: OP_PUSH_V, Data: ops[0].Value}
		default:
			err = ErrOperandForm
		}
	case "pop":
		if kind(0) != OPERAND_REGISTER {
			err = ErrOperandForm
			break
		}
		code = Code{Op: OP_POP_R, R1: ops[0].Register}
	case "call":
		if kind(0) != OPERAND_ADDRESS {
			err = ErrOperandForm
			break
		}
		code = Code{Op: OP_CALL_A, Data: ops[0].Value}
	case "ret":
		code = Code{Op: OP_RET}
	case "cmp":
		a, b := ops[0], ops[1]
		switch {
		case kind(0) == OPERAND_REGISTER && kind(1) == OPERAND_IMMEDIATE:
			code = Code{Op: OP_CMP_R_V, R1: a.Register, Data: b.Value}
		case kind(0) == OPERAND_IMMEDIATE && kind(1) == OPERAND_REGISTER:
			code = Code{Op: OP_CMP_V_R, R1: b.Register, Data: a.Value}
		case kind(0) == OPERAND_REGISTER && kind(1) == OPERAND_REGISTER:
			code = Code{Op: OP_CMP_R_R, R1: a.Register, R2: b.Register}
		default:
			err = ErrOperandForm
		}
	}

	if err != nil {
		code = Code{}
	}

	return
}
