package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/lol16/console"
	"github.com/ezrec/lol16/emulator"
)

var (
	consoleSource string
	consoleImage  string
)

var errConsoleArgs = errors.New("only one of --assemble or --rom may be given")

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive emulator console",
	Long: `Console loads a source file (-a) or a memory image (-r), and reads
emulator commands from standard input. Type 'help' for the command list.
`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var emu *emulator.Emulator
		switch {
		case len(consoleSource) != 0 && len(consoleImage) != 0:
			err = errConsoleArgs
		case len(consoleSource) != 0:
			emu, err = loadEmulator(consoleSource, true, "$A000")
		case len(consoleImage) != 0:
			emu, err = loadEmulator(consoleImage, false, "")
		default:
			emu = emulator.NewEmulator()
			emu.Verbose = verbose
		}
		if err != nil {
			return
		}

		con := console.NewConsole(emu)
		input := cmd.InOrStdin()
		con.Interactive = isTerminal(input)

		err = con.Run(input, cmd.OutOrStdout())
		return
	},
}

func init() {
	consoleCmd.Flags().StringVarP(&consoleSource, "assemble", "a", "", "Source file to assemble and load")
	consoleCmd.Flags().StringVarP(&consoleImage, "rom", "r", "", "Memory image to load")
	rootCmd.AddCommand(consoleCmd)
}

// isTerminal returns true if input is a terminal.
func isTerminal(input io.Reader) bool {
	file, ok := input.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
