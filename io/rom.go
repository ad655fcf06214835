package io

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/lol16/cpu"
)

// ROM_SIZE is the size of a complete memory image.
const ROM_SIZE = cpu.RAM_SIZE

// Rom is a memory image file: the start vector in bytes 0-1, followed by the
// rest of memory.
type Rom struct {
	Data []byte
}

// Defines returns an iter of defines for the image.
func (rom *Rom) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ROM_SIZE": fmt.Sprintf("%d", ROM_SIZE),
	})
}

// Load reads an image. Short images are zero filled to ROM_SIZE.
func (rom *Rom) Load(input io.Reader) (err error) {
	data, err := io.ReadAll(io.LimitReader(input, ROM_SIZE+1))
	if err != nil {
		return
	}

	if len(data) > ROM_SIZE {
		err = ErrImageSize
		return
	}

	rom.Data = make([]byte, ROM_SIZE)
	copy(rom.Data, data)

	return
}

// Save writes the complete image, zero filled to ROM_SIZE.
func (rom *Rom) Save(output io.Writer) (err error) {
	if len(rom.Data) > ROM_SIZE {
		err = ErrImageSize
		return
	}

	data := make([]byte, ROM_SIZE)
	copy(data, rom.Data)

	_, err = output.Write(data)
	return
}

// Vector returns the start vector of the image.
func (rom *Rom) Vector() (vector uint16) {
	if len(rom.Data) >= cpu.VECTOR_SIZE {
		vector = binary.BigEndian.Uint16(rom.Data)
	}

	return
}
