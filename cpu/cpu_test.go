package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bootCpu assembles the source at origin, loads it and runs the boot tick.
func bootCpu(t *testing.T, origin uint16, source ...string) (cpu *Cpu) {
	image, err := Assemble(strings.NewReader(strings.Join(source, "\n")), origin)
	if err != nil {
		t.Fatal(err)
	}

	cpu = NewCpu()
	err = cpu.Load(image)
	if err != nil {
		t.Fatal(err)
	}

	_, err = cpu.Tick()
	if err != nil {
		t.Fatal(err)
	}

	return
}

// tickCpu runs count ticks, failing on any error.
func tickCpu(t *testing.T, cpu *Cpu, count int) {
	for range count {
		_, err := cpu.Tick()
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestCpu_Boot(t *testing.T) {
	assert := assert.New(t)

	image, err := Assemble(strings.NewReader("ret"), 0)
	assert.NoError(err)

	cpu := NewCpu()
	assert.NoError(cpu.Load(image))
	assert.Equal(uint16(0), cpu.Pc)

	code, err := cpu.Tick()
	assert.NoError(err)
	assert.Equal(Code{}, code)
	assert.Equal(uint16(ORIGIN_DEFAULT), cpu.Pc)
	assert.Equal(uint16(ORIGIN_DEFAULT-1), cpu.Stack.Pointer)
	assert.Equal(0, cpu.Ticks)
	assert.Equal([REG_COUNT]uint16{}, cpu.Register)
}

func TestCpu_StartVector(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Load(make([]byte, RAM_SIZE)))

	_, err := cpu.Tick()
	assert.ErrorIs(err, ErrStartVector)
	assert.Equal(uint16(0), cpu.Pc)
	assert.Equal(uint16(0), cpu.Stack.Pointer)
}

func TestCpu_Load(t *testing.T) {
	assert := assert.New(t)

	cpu := bootCpu(t, 0x1000, "mov A, #7")
	tickCpu(t, cpu, 1)
	assert.Equal(uint16(7), cpu.GetRegister(REG_A))

	err := cpu.Load(make([]byte, 10))
	assert.ErrorIs(err, ErrImageSize)
	assert.Equal(uint16(0x1004), cpu.Pc)

	err = cpu.Load(make([]byte, RAM_SIZE+1))
	assert.ErrorIs(err, ErrImageSize)

	cpu.Reset()
	assert.Equal(uint16(0), cpu.Pc)
	assert.Equal(uint16(0), cpu.GetRegister(REG_A))
	assert.Equal(0, cpu.Ticks)

	// Memory survives a reset.
	tickCpu(t, cpu, 2)
	assert.Equal(uint16(7), cpu.GetRegister(REG_A))
}

func TestCpu_PushPop(t *testing.T) {
	assert := assert.New(t)

	cpu := bootCpu(t, 0xa000,
		"mov A, #5",
		"push A",
		"pop X",
	)

	tickCpu(t, cpu, 2)
	assert.Equal(uint16(0x9ffd), cpu.Stack.Pointer)
	value, ok := cpu.Stack.Peek()
	assert.True(ok)
	assert.Equal(uint16(5), value)

	tickCpu(t, cpu, 1)
	assert.Equal(uint16(5), cpu.GetRegister(REG_A))
	assert.Equal(uint16(5), cpu.GetRegister(REG_X))
	assert.Equal(uint16(0x9fff), cpu.Stack.Pointer)
	assert.Equal(uint16(0xa00c), cpu.Pc)
	assert.Equal(3, cpu.Ticks)
}

func TestCpu_Move(t *testing.T) {
	assert := assert.New(t)

	cpu := bootCpu(t, 0x0100,
		"mov A, #9",
		"mov AX, A",
		"mov X, #$1000",
		"mov [X], #$BEEF",
		"mov Y, [X]",
		"mov $1002, Y",
		"mov A, $1001",
		"mov X, #$2000",
		"mov [X], AX",
	)

	tickCpu(t, cpu, 9)

	assert.Equal(uint16(0xefbe), cpu.GetRegister(REG_A))
	assert.Equal(uint16(0x2000), cpu.GetRegister(REG_X))
	assert.Equal(uint16(0xbeef), cpu.GetRegister(REG_Y))
	assert.Equal(uint16(9), cpu.GetRegister(REG_AX))

	data, err := cpu.Memory.Range(0x1000, 4)
	assert.NoError(err)
	assert.Equal([]byte{0xbe, 0xef, 0xbe, 0xef}, data)

	value, err := cpu.Memory.Read16(0x2000)
	assert.NoError(err)
	assert.Equal(uint16(9), value)
}

func TestCpu_CallRet(t *testing.T) {
	assert := assert.New(t)

	cpu := bootCpu(t, 0xa000,
		"call $A00C",
		"mov Y, #7",
		"mov X, #1",
		"mov A, #3",
		"ret",
	)

	tickCpu(t, cpu, 1)
	assert.Equal(uint16(0xa00c), cpu.Pc)
	assert.Equal(uint16(0x9ffd), cpu.Stack.Pointer)
	value, _ := cpu.Stack.Peek()
	assert.Equal(uint16(0xa004), value)

	tickCpu(t, cpu, 2)
	assert.Equal(uint16(0xa004), cpu.Pc)
	assert.Equal(uint16(0x9fff), cpu.Stack.Pointer)

	tickCpu(t, cpu, 1)
	assert.Equal(uint16(3), cpu.GetRegister(REG_A))
	assert.Equal(uint16(0), cpu.GetRegister(REG_X))
	assert.Equal(uint16(7), cpu.GetRegister(REG_Y))
	assert.Equal(uint16(0xa008), cpu.Pc)
}

func TestCpu_CallFar(t *testing.T) {
	assert := assert.New(t)

	cpu := bootCpu(t, 0xa000,
		"call $B000",
		"mov A, #1",
	)
	ret := Code{Op: OP_RET}.Word()
	copy(cpu.Memory[0xb000:], ret[:])

	tickCpu(t, cpu, 1)
	assert.Equal(uint16(0xb000), cpu.Pc)

	tickCpu(t, cpu, 1)
	assert.Equal(uint16(0xa004), cpu.Pc)
	assert.Equal(uint16(0x9fff), cpu.Stack.Pointer)

	tickCpu(t, cpu, 1)
	assert.Equal(uint16(1), cpu.GetRegister(REG_A))
	assert.Equal(3, cpu.Ticks)
}

func TestCpu_Compare(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b  uint16
		flags Flags
	}){
		{3, 3, Flags{Equal: true, GreaterEqual: true, LessEqual: true}},
		{3, 5, Flags{NotEqual: true, Less: true, LessEqual: true}},
		{5, 3, Flags{NotEqual: true, Greater: true, GreaterEqual: true}},
		{0xffff, 1, Flags{NotEqual: true, Greater: true, GreaterEqual: true}},
	}

	for _, entry := range table {
		var flags Flags
		flags.Compare(entry.a, entry.b)
		assert.Equal(entry.flags, flags, entry)
	}

	cpu := bootCpu(t, 0xa000,
		"mov A, #3",
		"mov Y, #3",
		"cmp A, #5",
	)
	tickCpu(t, cpu, 3)
	assert.Equal(table[1].flags, cpu.Flags)

	assert.NoError(cpu.Execute(Code{Op: OP_CMP_V_R, R1: REG_Y, Data: 5}))
	assert.Equal(table[2].flags, cpu.Flags)

	assert.NoError(cpu.Execute(Code{Op: OP_CMP_R_R, R1: REG_A, R2: REG_Y}))
	assert.Equal(table[0].flags, cpu.Flags)

	// Moves leave the flags alone.
	assert.NoError(cpu.Execute(Code{Op: OP_MOV_R_V, R1: REG_A, Data: 0}))
	assert.Equal(table[0].flags, cpu.Flags)
}

func TestCpu_Execute(t *testing.T) {
	assert := assert.New(t)

	cpu := bootCpu(t, 0xa000)

	assert.NoError(cpu.Execute(Code{Op: OP_MOV_R_V, R1: REG_X, Data: 42}))
	assert.Equal(uint16(42), cpu.GetRegister(REG_X))
	assert.Equal(uint16(0xa000), cpu.Pc)

	assert.NoError(cpu.Execute(Code{Op: OP_CALL_A, Data: 0xb000}))
	assert.Equal(uint16(0xb000), cpu.Pc)

	assert.NoError(cpu.Execute(Code{Op: OP_RET}))
	assert.Equal(uint16(0xa000), cpu.Pc)
	assert.Equal(uint16(0x9fff), cpu.Stack.Pointer)
	assert.Equal(3, cpu.Ticks)
}

func TestCpu_Faults(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		setup func(cpu *Cpu)
		word  Word
		err   error
	}){
		{"pop-empty", func(cpu *Cpu) { cpu.Stack.Pointer = 0xfffe },
			Code{Op: OP_POP_R, R1: REG_X}.Word(), ErrStackEmpty},
		{"ret-empty", func(cpu *Cpu) { cpu.Stack.Pointer = 0xffff },
			Code{Op: OP_RET}.Word(), ErrStackEmpty},
		{"push-full", func(cpu *Cpu) { cpu.Stack.Pointer = 1 },
			Code{Op: OP_PUSH_V, Data: 1}.Word(), ErrStackFull},
		{"call-full", func(cpu *Cpu) { cpu.Stack.Pointer = 0 },
			Code{Op: OP_CALL_A, Data: 0x1000}.Word(), ErrStackFull},
		{"load-range", nil,
			Code{Op: OP_MOV_R_A, R1: REG_A, Data: 0xffff}.Word(), ErrAddressRange},
		{"store-range", nil,
			Code{Op: OP_MOV_A_R, R1: REG_A, Data: 0xffff}.Word(), ErrAddressRange},
		{"indirect-store-range", func(cpu *Cpu) { cpu.SetRegister(REG_X, 0xffff) },
			Code{Op: OP_MOV_AR_V, R1: REG_X, Data: 1}.Word(), ErrAddressRange},
		{"indirect-load-range", func(cpu *Cpu) { cpu.SetRegister(REG_Y, 0xffff) },
			Code{Op: OP_MOV_R_AR, R1: REG_A, R2: REG_Y}.Word(), ErrAddressRange},
		{"reserved", nil,
			Code{Op: OP_JZ_A, Data: 0x1000}.Word(), ErrOpcodeReserved},
		{"halt", nil,
			Code{Op: OP_HLT}.Word(), ErrOpcodeReserved},
		{"undeclared", nil,
			Word{0x00, 48, 0x00, 0x00}, ErrOpcodeDecode},
		{"register-bits", nil,
			Word{0xc0, byte(OP_MOV_R_V), 0x00, 0x01}, ErrOpcodeDecode},
		{"pc-range", func(cpu *Cpu) { cpu.Pc = 0xfffc }, Word{}, ErrPcRange},
	}

	for _, entry := range table {
		cpu := bootCpu(t, 0xa000)
		cpu.SetRegister(REG_A, 0x1111)
		cpu.Flags.Compare(1, 2)
		if entry.setup != nil {
			entry.setup(cpu)
		}
		copy(cpu.Memory[cpu.Pc:], entry.word[:])

		pc := cpu.Pc
		sp := cpu.Stack.Pointer
		registers := cpu.Register
		flags := cpu.Flags
		memory := cpu.Memory

		_, err := cpu.Tick()
		assert.ErrorIs(err, entry.err, entry.name)
		if entry.err != ErrPcRange {
			assert.ErrorIs(err, ErrOpcode{}, entry.name)
		}

		assert.Equal(pc, cpu.Pc, entry.name)
		assert.Equal(sp, cpu.Stack.Pointer, entry.name)
		assert.Equal(registers, cpu.Register, entry.name)
		assert.Equal(flags, cpu.Flags, entry.name)
		assert.True(memory == cpu.Memory, entry.name)
		assert.Equal(0, cpu.Ticks, entry.name)
	}
}

func TestCpu_RunOff(t *testing.T) {
	assert := assert.New(t)

	cpu := bootCpu(t, 0xfff0, "push #1", "pop A", "mov X, A")

	var err error
	for err == nil {
		_, err = cpu.Tick()
	}

	assert.ErrorIs(err, ErrPcRange)
	assert.Equal(3, cpu.Ticks)
	assert.Equal(uint16(0xfffc), cpu.Pc)
	assert.Equal(uint16(1), cpu.GetRegister(REG_X))
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	cpu := bootCpu(t, 0xa000, "mov AX, #$10")
	tickCpu(t, cpu, 1)

	text := cpu.String()
	assert.Contains(text, "AX: $0010 (16)\n")
	assert.Contains(text, "pc: $A004\n")
	assert.Contains(text, "sp: $9FFF\n")
	assert.Contains(text, "equ: false\n")
	assert.Equal(14, strings.Count(text, "\n"))
}

func TestCpu_Defines(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	defines := map[string]string{}
	for key, value := range cpu.Defines() {
		defines[key] = value
	}

	assert.Equal("65536", defines["RAM_SIZE"])
	assert.Equal("2", defines["VECTOR_SIZE"])
	assert.Equal("1", defines["REG_X"])
}
