package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/lol16/emulator"
)

var (
	runSource bool
	runSteps  int
	runOrigin string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run file",
	Short: "Run a memory image, or a source file, and dump the CPU state",
	Long: `Run boots the emulator from a memory image (or, with --source, from an
assembly source file) and ticks until a fault, or until --steps ticks when
that is positive. The final CPU state is written to standard output.
`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		emu, err := loadEmulator(args[0], runSource, runOrigin)
		if err != nil {
			return
		}

		ticks, err := emu.Run(runSteps)
		fmt.Fprintf(cmd.OutOrStdout(), "ticks: %d\n%v", ticks, emu.Cpu)
		return
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runSource, "source", "s", false, "Input file is assembly source")
	runCmd.Flags().IntVarP(&runSteps, "steps", "n", 0, "Maximum ticks, 0 for no limit")
	runCmd.Flags().StringVar(&runOrigin, "origin", "$A000", "Origin for --source")
	rootCmd.AddCommand(runCmd)
}

// loadEmulator creates an emulator booting from an image or source file.
func loadEmulator(path string, source bool, origin string) (emu *emulator.Emulator, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	emu = emulator.NewEmulator()
	emu.Verbose = verbose

	if source {
		var addr uint16
		addr, err = parseAddress(origin)
		if err != nil {
			return
		}
		err = emu.LoadSource(inf, addr)
	} else {
		err = emu.LoadImage(inf)
	}
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		emu = nil
		return
	}

	return
}
