// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/lol16/cpu"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lol16",
	Short: "LOL16 assembler and emulator",
	Long: `Lol16 assembles programs for the LOL16 16-bit processor into 64KiB
memory images, and runs them either to completion or under an interactive
console.
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

// parseAddress parses an address given as '$' hex, '0x' hex, '0b' binary
// or decimal.
func parseAddress(text string) (addr uint16, err error) {
	addr, err = cpu.ParseNumber(text)
	if err == nil {
		return
	}

	v64, err := strconv.ParseUint(text, 0, 16)
	if err != nil {
		err = cpu.ErrParseNumber(text)
		return
	}

	addr = uint16(v64)
	return
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
