package cpu

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// OperandKind is the classification of an operand token.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(0) // register
	OPERAND_IMMEDIATE = OperandKind(1) // immediate
	OPERAND_ADDRESS   = OperandKind(2) // address
	OPERAND_INDIRECT  = OperandKind(3) // indirect
)

// Operand is a classified operand token.
type Operand struct {
	Kind     OperandKind
	Register Register // Valid for OPERAND_REGISTER and OPERAND_INDIRECT.
	Value    uint16   // Valid for OPERAND_IMMEDIATE and OPERAND_ADDRESS.
}

var (
	reDecimal = regexp.MustCompile(`^[0-9]+$`)
	reHex     = regexp.MustCompile(`^\$[0-9a-fA-F]+$`)
	reBinary  = regexp.MustCompile(`^0b[01]+$`)
)

// ParseNumber parses a numeric literal: decimal digits, '$' followed by
// hexadecimal digits, or '0b' followed by binary digits.
// Values that do not fit in 16 bits are rejected.
func ParseNumber(word string) (value uint16, err error) {
	var digits string
	var base int

	switch {
	case reDecimal.MatchString(word):
		digits, base = word, 10
	case reHex.MatchString(word):
		digits, base = word[1:], 16
	case reBinary.MatchString(word):
		digits, base = word[2:], 2
	default:
		err = ErrParseNumber(word)
		return
	}

	v64, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		err = errors.Join(ErrParseNumber(word), ErrNumberRange)
		return
	}

	value = uint16(v64)
	return
}

// ParseOperand classifies a single operand token.
//
// A register name, case-insensitive and optionally wrapped in one pair of
// square brackets, is a register (or an indirect register if bracketed).
// Otherwise a leading '#' marks an immediate, and anything else is an
// absolute address.
func ParseOperand(word string) (op Operand, err error) {
	name := word
	indirect := false
	if len(word) >= 2 && word[0] == '[' && word[len(word)-1] == ']' {
		name = word[1 : len(word)-1]
		indirect = true
	}

	reg, ok := registerMap[strings.ToUpper(name)]
	if ok {
		op.Register = reg
		op.Kind = OPERAND_REGISTER
		if indirect {
			op.Kind = OPERAND_INDIRECT
		}
		return
	}

	op.Kind = OPERAND_ADDRESS
	if strings.HasPrefix(word, "#") {
		op.Kind = OPERAND_IMMEDIATE
		word = word[1:]
	}

	op.Value, err = ParseNumber(word)
	if err != nil {
		op = Operand{}
		return
	}

	return
}
