package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"RAM_SIZE":    fmt.Sprintf("%d", RAM_SIZE),
	"WORD_SIZE":   fmt.Sprintf("%d", WORD_SIZE),
	"VECTOR_SIZE": fmt.Sprintf("%d", VECTOR_SIZE),
	"REG_A":       fmt.Sprintf("%d", REG_A),
	"REG_X":       fmt.Sprintf("%d", REG_X),
	"REG_Y":       fmt.Sprintf("%d", REG_Y),
	"REG_AX":      fmt.Sprintf("%d", REG_AX),
}

// Cpu is the simulation context for the LOL16 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint16            // Program counter. Zero until the first tick.
	Register [REG_COUNT]uint16 // Register file, indexed by Register.
	Flags    Flags             // Condition flags.
	Stack    Stack             // Memory-resident stack.
	Memory   Memory            // Flat memory.

	Ticks int // Executed instructions counter.
}

// NewCpu creates a new CPU with zeroed memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Stack.Memory = &cpu.Memory

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset clears the registers, flags and counters, and returns the CPU to the
// uninitialized state. Memory is left alone.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Flags = Flags{}
	cpu.Pc = 0
	cpu.Stack = Stack{Memory: &cpu.Memory}
	cpu.Ticks = 0
}

// Load copies a complete memory image into the CPU and resets it.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) != RAM_SIZE {
		err = ErrImageSize
		return
	}

	copy(cpu.Memory[:], image)
	cpu.Reset()

	return
}

// GetRegister returns the value held in a register.
func (cpu *Cpu) GetRegister(reg Register) uint16 {
	return cpu.Register[reg&WORD_REG_MASK]
}

// SetRegister stores a value in a register.
func (cpu *Cpu) SetRegister(reg Register, value uint16) {
	cpu.Register[reg&WORD_REG_MASK] = value
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"A", "X", "Y", "AX",
		"pc", "sp",
		"zero", "neg",
		"equ", "neq", "gr", "ge", "ls", "le",
	}
	bools := map[string]bool{
		"zero": cpu.Flags.Zero,
		"neg":  cpu.Flags.Negative,
		"equ":  cpu.Flags.Equal,
		"neq":  cpu.Flags.NotEqual,
		"gr":   cpu.Flags.Greater,
		"ge":   cpu.Flags.GreaterEqual,
		"ls":   cpu.Flags.Less,
		"le":   cpu.Flags.LessEqual,
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "A", "X", "Y", "AX":
			val := cpu.Register[registerMap[reg]]
			strval = fmt.Sprintf("$%04X (%d)", val, val)
		case "pc":
			strval = fmt.Sprintf("$%04X", cpu.Pc)
		case "sp":
			strval = fmt.Sprintf("$%04X", cpu.Stack.Pointer)
		default:
			strval = "false"
			if bools[reg] {
				strval = "true"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// boot loads the start vector into the program counter, and places the stack
// just below it.
func (cpu *Cpu) boot() (err error) {
	start, err := cpu.Memory.Read16(0)
	if err != nil {
		return
	}
	if start == 0 {
		err = ErrStartVector
		return
	}

	cpu.Pc = start
	cpu.Stack.Reset(start)

	if cpu.Verbose {
		log.Printf("cpu: boot at $%04X, sp $%04X", cpu.Pc, cpu.Stack.Pointer)
	}

	return
}

// FetchCode fetches and decodes the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	// The next program counter must not wrap back to the uninitialized state.
	if int(cpu.Pc)+WORD_SIZE >= RAM_SIZE {
		err = ErrPcRange
		return
	}

	word, err := cpu.Memory.Fetch(int(cpu.Pc))
	if err != nil {
		err = errors.Join(ErrPcRange, err)
		return
	}

	code, err = DecodeWord(word)
	if err != nil {
		err = errors.Join(ErrOpcode(code), err)
		return
	}

	return
}

// Tick executes a single CPU cycle, and returns the instruction executed.
// The first tick after a reset only loads the start vector.
func (cpu *Cpu) Tick() (code Code, err error) {
	if cpu.Pc == 0 {
		err = cpu.boot()
		return
	}

	code, err = cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.execute(code, cpu.Pc+WORD_SIZE)
	return
}

// Execute executes a single decoded instruction in place, without advancing
// the program counter first. A call pushes the current program counter.
func (cpu *Cpu) Execute(code Code) (err error) {
	return cpu.execute(code, cpu.Pc)
}

// execute runs one instruction. No CPU state changes if an error is returned.
func (cpu *Cpu) execute(code Code, next_pc uint16) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Pc, code)
	}

	if !code.R1.Valid() || !code.R2.Valid() || !code.R3.Valid() {
		err = ErrOpcodeDecode
		return
	}

	r1 := cpu.GetRegister(code.R1)
	r2 := cpu.GetRegister(code.R2)

	switch code.Op {
	case OP_MOV_R_R:
		cpu.SetRegister(code.R1, r2)
	case OP_MOV_R_V:
		cpu.SetRegister(code.R1, code.Data)
	case OP_MOV_R_A:
		var value uint16
		value, err = cpu.Memory.Read16(int(code.Data))
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		cpu.SetRegister(code.R1, value)
	case OP_MOV_A_R:
		err = cpu.Memory.Write16(int(code.Data), r1)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
	case OP_MOV_AR_R:
		err = cpu.Memory.Write16(int(r1), r2)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
	case OP_MOV_AR_V:
		err = cpu.Memory.Write16(int(r1), code.Data)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
	case OP_MOV_R_AR:
		var value uint16
		value, err = cpu.Memory.Read16(int(r2))
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		cpu.SetRegister(code.R1, value)
	case OP_PUSH_R:
		err = cpu.Stack.Push(r1)
		if err != nil {
			return
		}
	case OP_PUSH_V:
		err = cpu.Stack.Push(code.Data)
		if err != nil {
			return
		}
	case OP_POP_R:
		var value uint16
		value, err = cpu.Stack.Pop()
		if err != nil {
			return
		}
		cpu.SetRegister(code.R1, value)
	case OP_CALL_A:
		err = cpu.Stack.Push(next_pc)
		if err != nil {
			return
		}
		next_pc = code.Data
	case OP_RET:
		next_pc, err = cpu.Stack.Pop()
		if err != nil {
			return
		}
	case OP_CMP_R_V:
		cpu.Flags.Compare(r1, code.Data)
	case OP_CMP_V_R:
		cpu.Flags.Compare(code.Data, r1)
	case OP_CMP_R_R:
		cpu.Flags.Compare(r1, r2)
	default:
		if code.Op.Reserved() {
			err = ErrOpcodeReserved
		} else {
			err = ErrOpcodeDecode
		}
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
