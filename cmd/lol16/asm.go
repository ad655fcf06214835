package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/lol16/cpu"
	"github.com/ezrec/lol16/io"
)

var (
	asmOutput  string
	asmOrigin  string
	asmDefines []string
)

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a source file into a memory image",
	Long: `Asm assembles one source file into a complete 65536 byte memory image.
Bytes 0-1 of the image hold the origin, and the program starts at the origin.

Constants for $(...) expressions may be given with -D NAME=VALUE.
`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return assembleFile(args[0], asmOutput)
	},
}

func init() {
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "", "Image file (default: source name with .img)")
	asmCmd.Flags().StringVar(&asmOrigin, "origin", "$A000", "Address of the first instruction")
	asmCmd.Flags().StringArrayVarP(&asmDefines, "define", "D", nil, "Predefine NAME=VALUE")
	rootCmd.AddCommand(asmCmd)
}

// imageName derives the default image file name from a source file name.
func imageName(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".img"
}

func assembleFile(source string, output string) (err error) {
	origin, err := parseAddress(asmOrigin)
	if err != nil {
		return
	}

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose, Origin: origin}
	for _, define := range asmDefines {
		name, value, ok := strings.Cut(define, "=")
		if !ok {
			value = "1"
		}
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", source, err)
		return
	}

	image, err := prog.Image()
	if err != nil {
		err = fmt.Errorf("%v: %w", source, err)
		return
	}

	if len(output) == 0 {
		output = imageName(source)
	}

	ouf, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		close_err := ouf.Close()
		if err == nil {
			err = close_err
		}
	}()

	rom := &io.Rom{Data: image}
	err = rom.Save(ouf)
	if err != nil {
		return
	}

	if verbose {
		log.Printf("%v: %d instructions at $%04X", output, len(prog.Opcodes), prog.Origin)
	}

	return
}
