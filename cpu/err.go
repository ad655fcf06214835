package cpu

import (
	"errors"

	"github.com/ezrec/lol16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStartVector  = errors.New(f("start vector empty"))
	ErrPcRange      = errors.New(f("pc out of range"))
	ErrAddressRange = errors.New(f("address out of range"))
	ErrStackEmpty   = errors.New(f("stack empty"))
	ErrStackFull    = errors.New(f("stack full"))
	ErrImageSize    = errors.New(f("image size invalid"))

	// Instruction decode errors
	ErrOpcodeDecode   = errors.New(f("decode"))
	ErrOpcodeReserved = errors.New(f("reserved"))
	ErrOpcodeArg1     = errors.New(f("arg1"))
	ErrOpcodeArg2     = errors.New(f("arg2"))

	// Assembler errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOpcodeArgCount     = errors.New(f("wrong operand count"))
	ErrOperandForm        = errors.New(f("no matching instruction form for these operand kinds"))
	ErrNumberRange        = errors.New(f("value out of 16-bit range"))
	ErrImageOverflow      = errors.New(f("program exceeds memory"))
	ErrOriginInvalid      = errors.New(f("origin overlaps start vector"))
)

// ErrOpcode is a fault raised while executing an instruction.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%08x %v", Code(eo).Uint32(), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax is an assembler error at a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseNumber is an operand that is neither a register nor a numeric literal.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a valid numeric literal", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
