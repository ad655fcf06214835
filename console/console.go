// Package console is the interactive command loop of the LOL16 emulator.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/prefixtree/v2"

	"github.com/ezrec/lol16/emulator"
)

const (
	PROMPT        = "LOL16> " // Shown before each command when interactive.
	MEMORY_COUNT  = 10        // Default number of bytes shown by 'memory'.
	RUN_LIMIT     = 10000     // Default tick limit of 'run'.
	EXEC_BITS     = 32        // Binary digits taken by 'exec'.
	BANNER_HEADER = "LOL16 emulator console"
)

// Console reads commands line by line and applies them to an emulator.
type Console struct {
	Emulator    *emulator.Emulator // Emulator under control.
	Interactive bool               // If set, shows a banner and prompts.

	input   *bufio.Scanner
	output  *bufio.Writer
	lastCmd *selection
	done    bool
}

// selection is a command with its arguments.
type selection struct {
	command *command
	args    []string
}

// NewConsole creates a console for an emulator.
func NewConsole(emu *emulator.Emulator) (con *Console) {
	con = &Console{
		Emulator: emu,
	}

	return
}

// lookup finds the command named by the first word of line, by unique
// prefix. A nil selection means the line was blank.
func lookup(line string) (sel *selection, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	cmd, err := commandTree.FindValue(strings.ToLower(words[0]))
	switch {
	case errors.Is(err, prefixtree.ErrPrefixAmbiguous):
		err = ErrCommandAmbiguous(words[0])
		return
	case err != nil:
		err = ErrCommandNotFound(words[0])
		return
	}

	sel = &selection{command: cmd, args: words[1:]}
	return
}

// Run processes commands from r until 'exit' or the end of input.
// Command errors are reported on w and never stop the loop.
func (con *Console) Run(r io.Reader, w io.Writer) (err error) {
	con.input = bufio.NewScanner(r)
	con.output = bufio.NewWriter(w)
	con.done = false

	if con.Interactive {
		con.println(BANNER_HEADER)
	}

	for !con.done {
		con.prompt()

		if !con.input.Scan() {
			err = con.input.Err()
			break
		}

		var sel *selection
		sel, err = lookup(con.input.Text())
		if err != nil {
			con.printf("%v\n", err)
			err = nil
			continue
		}
		if sel == nil {
			sel = con.lastCmd
		}
		if sel == nil {
			continue
		}
		con.lastCmd = sel

		err = sel.command.handler(con, sel.args)
		if err != nil {
			con.printf("%v\n", err)
			err = nil
		}
	}

	con.flush()

	return
}

func (con *Console) prompt() {
	if con.Interactive {
		con.printf("%s", PROMPT)
	}
}

func (con *Console) printf(format string, args ...any) {
	fmt.Fprintf(con.output, format, args...)
	con.flush()
}

func (con *Console) println(args ...any) {
	fmt.Fprintln(con.output, args...)
	con.flush()
}

func (con *Console) flush() {
	con.output.Flush()
}
