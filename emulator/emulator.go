// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	stdio "io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/lol16/cpu"
	"github.com/ezrec/lol16/internal"
	"github.com/ezrec/lol16/io"
)

var _emulator_defines = map[string]string{
	"ORIGIN_DEFAULT": fmt.Sprintf("%d", cpu.ORIGIN_DEFAULT),
}

// Emulator state. CPU + loaded image + source listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Listing of the loaded program, empty for raw images.

	Rom io.Rom // Image the CPU boots from.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Rom.Defines(),
	)
}

// LoadSource assembles a program at origin and boots from its image.
// An origin of zero selects cpu.ORIGIN_DEFAULT.
func (emu *Emulator) LoadSource(input stdio.Reader, origin uint16) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose, Origin: origin}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	image, err := prog.Image()
	if err != nil {
		return
	}

	emu.Rom.Data = image
	emu.Program = prog

	err = emu.Reset()
	return
}

// LoadImage reads a memory image and boots from it. No listing is available.
func (emu *Emulator) LoadImage(input stdio.Reader) (err error) {
	err = emu.Rom.Load(input)
	if err != nil {
		return
	}

	emu.Program = &cpu.Program{}

	err = emu.Reset()
	return
}

// Reset reloads the image into memory and returns the CPU to the
// uninitialized state.
func (emu *Emulator) Reset() (err error) {
	err = emu.Cpu.Load(emu.Rom.Data)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: reset, start vector $%04X", emu.Rom.Vector())
	}

	return
}

// LineNo returns the source line number for the instruction at the program
// counter, or zero if there is none.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.Cpu.Pc)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (code cpu.Code, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil && lineno != 0 {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	code, err = emu.Cpu.Tick()
	return
}

// Run ticks until an error, or until max ticks when max is positive.
func (emu *Emulator) Run(max int) (ticks int, err error) {
	for max <= 0 || ticks < max {
		_, err = emu.Tick()
		if err != nil {
			return
		}
		ticks++
	}

	return
}
