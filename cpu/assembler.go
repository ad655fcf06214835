// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"ORIGIN": fmt.Sprintf("%d", ORIGIN_DEFAULT),
}

var (
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reSeparator  = regexp.MustCompile(`[\s,]+`)
)

// Assembler is a single pass, line at a time assembler for the LOL16 system.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Origin  uint16   // Address of the first instruction. Zero selects ORIGIN_DEFAULT.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Equate    map[string]string // Constants visible to $(...) expressions.
}

// Predefine defines a new constant, or redefines an existing one, for use in
// $(...) expressions.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// origin returns the effective code origin.
func (asm *Assembler) origin() uint16 {
	if asm.Origin == 0 {
		return ORIGIN_DEFAULT
	}
	return asm.Origin
}

// reset clears the generated opcodes and rebuilds the constant table.
func (asm *Assembler) reset() {
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, _cpu_defines)
	asm.Equate["ORIGIN"] = fmt.Sprintf("%d", asm.origin())
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
}

// currentIp gets the address of the next instruction word.
func (asm *Assembler) currentIp() int {
	return int(asm.origin()) + WORD_SIZE*len(asm.Opcode)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v64 int64
		v64, err = strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine splits a single line into words, after dropping comments and
// replacing $(...) expressions with their values.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line, _, _ = strings.Cut(line, ";")

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(reSeparator.Split(line, -1), func(a string) bool { return len(a) == 0 })

	return
}

// parseWords assembles the words of one line into an instruction.
// The operand count is checked before any operand is lexed.
func (asm *Assembler) parseWords(words []string) (code Code, err error) {
	mnemonic := words[0]
	count, ok := Arity(mnemonic)
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	if len(args) != count {
		err = ErrOpcodeArgCount
		return
	}

	argErr := []error{ErrOpcodeArg1, ErrOpcodeArg2}
	ops := make([]Operand, count)
	for n, word := range args {
		ops[n], err = ParseOperand(word)
		if err != nil {
			err = errors.Join(argErr[n], err)
			return
		}
	}

	code, err = Encode(mnemonic, ops...)
	return
}

// assembleLine splits and assembles one line. An empty words list means the
// line holds no instruction.
func (asm *Assembler) assembleLine(line string, lineno int) (words []string, code Code, err error) {
	words, err = asm.parseLine(line, lineno)
	if err != nil || len(words) == 0 {
		return
	}

	code, err = asm.parseWords(words)
	return
}

// ParseLine assembles a single line of source.
// ok is false, with no error, for a line that holds no instruction.
func (asm *Assembler) ParseLine(line string, lineno int) (code Code, ok bool, err error) {
	if asm.Equate == nil {
		asm.reset()
	}

	words, code, err := asm.assembleLine(line, lineno)
	ok = err == nil && len(words) > 0
	return
}

// Parse parses an input stream into a Program. Assembly stops at the first
// line in error.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.reset()

	if asm.origin() < VECTOR_SIZE {
		err = ErrOriginInvalid
		return
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var words []string
		var code Code
		words, code, err = asm.assembleLine(line, lineno)
		if err != nil {
			return
		}
		if len(words) == 0 {
			continue
		}

		ip := asm.currentIp()
		if ip+WORD_SIZE > RAM_SIZE {
			err = ErrImageOverflow
			return
		}

		if asm.Verbose {
			log.Printf("%04x: %032b %v", ip, code.Uint32(), code)
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo: lineno,
			Ip:     ip,
			Words:  words,
			Code:   code,
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Origin:  asm.origin(),
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// Assemble assembles source text into a complete memory image.
func Assemble(input io.Reader, origin uint16) (image []byte, err error) {
	asm := &Assembler{Origin: origin}
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	image, err = prog.Image()
	return
}
