package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word    string
		operand Operand
	}){
		{"ax", Operand{Kind: OPERAND_REGISTER, Register: REG_AX}},
		{"AX", Operand{Kind: OPERAND_REGISTER, Register: REG_AX}},
		{"Ax", Operand{Kind: OPERAND_REGISTER, Register: REG_AX}},
		{"[Ax]", Operand{Kind: OPERAND_INDIRECT, Register: REG_AX}},
		{"[aX]", Operand{Kind: OPERAND_INDIRECT, Register: REG_AX}},
		{"a", Operand{Kind: OPERAND_REGISTER, Register: REG_A}},
		{"[A]", Operand{Kind: OPERAND_INDIRECT, Register: REG_A}},
		{"x", Operand{Kind: OPERAND_REGISTER, Register: REG_X}},
		{"[y]", Operand{Kind: OPERAND_INDIRECT, Register: REG_Y}},
		{"#10", Operand{Kind: OPERAND_IMMEDIATE, Value: 10}},
		{"#$A", Operand{Kind: OPERAND_IMMEDIATE, Value: 10}},
		{"#$a", Operand{Kind: OPERAND_IMMEDIATE, Value: 10}},
		{"#0b1010", Operand{Kind: OPERAND_IMMEDIATE, Value: 10}},
		{"#65535", Operand{Kind: OPERAND_IMMEDIATE, Value: 0xffff}},
		{"$B000", Operand{Kind: OPERAND_ADDRESS, Value: 0xb000}},
		{"40960", Operand{Kind: OPERAND_ADDRESS, Value: 0xa000}},
		{"0b0", Operand{Kind: OPERAND_ADDRESS, Value: 0}},
		{"007", Operand{Kind: OPERAND_ADDRESS, Value: 7}},
	}

	for _, entry := range table {
		op, err := ParseOperand(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.operand, op, entry.word)
	}
}

func TestParseOperand_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"B",
		"[A",
		"A]",
		"[[A]]",
		"[10]",
		"#",
		"#A",
		"$",
		"$G",
		"0x10",
		"0b102",
		"0b",
		"-1",
		"#-1",
		"1O",
		"##1",
	}

	for _, word := range table {
		op, err := ParseOperand(word)
		assert.Error(err, word)
		assert.ErrorAs(err, new(ErrParseNumber), word)
		assert.Equal(Operand{}, op, word)
	}
}

func TestParseNumber_Range(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []string{"65536", "$10000", "0b10000000000000000", "99999999999999999999"} {
		_, err := ParseNumber(word)
		assert.ErrorIs(err, ErrNumberRange, word)
	}

	value, err := ParseNumber("$FFFF")
	assert.NoError(err)
	assert.Equal(uint16(0xffff), value)
}
