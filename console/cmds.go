package console

import (
	"strconv"
	"strings"

	"github.com/beevik/prefixtree/v2"

	"github.com/ezrec/lol16/cpu"
	"github.com/ezrec/lol16/internal"
)

// command is a console command. Commands are found by unique prefix.
type command struct {
	name    string
	usage   string
	brief   string
	handler func(con *Console, args []string) error
}

var (
	commands    []*command
	commandTree = prefixtree.New[*command]()
)

func init() {
	commands = []*command{
		{"step", "step [<count>]", "Execute the next instruction(s)", (*Console).cmdStep},
		{"exec", "exec <32 binary digits>", "Execute one instruction word in place", (*Console).cmdExec},
		{"memory", "memory <address> [<count>]", "Dump memory bytes", (*Console).cmdMemory},
		{"registers", "registers", "Display registers and flags", (*Console).cmdRegisters},
		{"run", "run [<max ticks>]", "Run until a fault or the tick limit", (*Console).cmdRun},
		{"reset", "reset", "Reload the image and reboot", (*Console).cmdReset},
		{"list", "list", "List the assembled program", (*Console).cmdList},
		{"defines", "defines", "List assembler constants", (*Console).cmdDefines},
		{"help", "help [<command>]", "Display help", (*Console).cmdHelp},
		{"exit", "exit", "Leave the console", (*Console).cmdExit},
	}

	for _, cmd := range commands {
		commandTree.Add(cmd.name, cmd)
	}
}

// parseValue parses a console number: decimal, '$' hex, '0b' binary,
// or '0x' hex.
func parseValue(word string) (value uint16, err error) {
	value, err = cpu.ParseNumber(word)
	if err == nil {
		return
	}

	v64, err := strconv.ParseUint(word, 0, 16)
	if err != nil {
		err = ErrArgument(word)
		return
	}

	value = uint16(v64)
	return
}

// parseCount parses an optional count argument.
func parseCount(args []string, index int, count int) (int, error) {
	if len(args) <= index {
		return count, nil
	}

	value, err := strconv.Atoi(args[index])
	if err != nil || value < 0 {
		return 0, ErrArgument(args[index])
	}

	return value, nil
}

// tick runs one instruction and reports what was done.
func (con *Console) tick() (err error) {
	emu := con.Emulator

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	code, err := emu.Tick()
	if err != nil {
		return
	}

	switch {
	case pc == 0:
		con.printf("boot $%04X\n", emu.Cpu.Pc)
	case lineno != 0:
		con.printf("$%04X: %v (line %d)\n", pc, code, lineno)
	default:
		con.printf("$%04X: %v\n", pc, code)
	}

	return
}

func (con *Console) cmdStep(args []string) (err error) {
	if len(args) > 1 {
		return ErrArgCount
	}

	count, err := parseCount(args, 0, 1)
	if err != nil {
		return
	}

	for range count {
		err = con.tick()
		if err != nil {
			return
		}
	}

	return
}

func (con *Console) cmdExec(args []string) (err error) {
	if len(args) != 1 {
		return ErrArgCount
	}

	digits := args[0]
	if len(digits) != EXEC_BITS {
		return ErrExecWidth
	}

	value, err := strconv.ParseUint(digits, 2, EXEC_BITS)
	if err != nil {
		return ErrArgument(digits)
	}

	code, err := cpu.DecodeUint32(uint32(value))
	if err != nil {
		return
	}

	con.printf("exec %v\n", code)

	err = con.Emulator.Execute(code)
	return
}

func (con *Console) cmdMemory(args []string) (err error) {
	if len(args) < 1 || len(args) > 2 {
		return ErrArgCount
	}

	addr, err := parseValue(args[0])
	if err != nil {
		return
	}

	count, err := parseCount(args, 1, MEMORY_COUNT)
	if err != nil {
		return
	}

	data, err := con.Emulator.Memory.Range(addr, count)
	if err != nil {
		return
	}

	for n, b := range data {
		con.printf("$%04X: $%02X (%d)\n", int(addr)+n, b, b)
	}

	return
}

func (con *Console) cmdRegisters(args []string) (err error) {
	con.printf("%v", con.Emulator.Cpu)
	return
}

func (con *Console) cmdRun(args []string) (err error) {
	if len(args) > 1 {
		return ErrArgCount
	}

	limit, err := parseCount(args, 0, RUN_LIMIT)
	if err != nil {
		return
	}

	ticks, err := con.Emulator.Run(limit)
	con.printf("ran %d ticks, pc $%04X\n", ticks, con.Emulator.Cpu.Pc)

	return
}

func (con *Console) cmdReset(args []string) (err error) {
	err = con.Emulator.Reset()
	return
}

func (con *Console) cmdList(args []string) (err error) {
	for _, op := range con.Emulator.Program.Opcodes {
		mark := " "
		if uint16(op.Ip) == con.Emulator.Cpu.Pc {
			mark = ">"
		}
		con.printf("%s $%04X %4d  %v\n", mark, op.Ip, op.LineNo, op.Code)
	}

	return
}

func (con *Console) cmdDefines(args []string) (err error) {
	for key, value := range internal.IterSeq2Sorted(con.Emulator.Defines()) {
		con.printf("%-16s %s\n", key, value)
	}

	return
}

func (con *Console) cmdHelp(args []string) (err error) {
	if len(args) > 0 {
		var sel *selection
		sel, err = lookup(strings.Join(args, " "))
		if err != nil {
			return
		}
		con.printf("%s\n    %s\n", sel.command.usage, sel.command.brief)
		return
	}

	for _, cmd := range commands {
		con.printf("%-28s %s\n", cmd.usage, cmd.brief)
	}
	con.printf("An empty line repeats the last command.\n")

	return
}

func (con *Console) cmdExit(args []string) (err error) {
	con.done = true
	return
}
