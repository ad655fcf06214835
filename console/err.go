package console

import (
	"errors"

	"github.com/ezrec/lol16/translate"
)

var f = translate.From

var (
	ErrArgCount  = errors.New(f("wrong argument count"))
	ErrExecWidth = errors.New(f("expected 32 binary digits"))
)

// ErrCommandNotFound is an unknown command word.
type ErrCommandNotFound string

func (err ErrCommandNotFound) Error() string {
	return f("'%v': command not found", string(err))
}

// ErrCommandAmbiguous is a command prefix matching more than one command.
type ErrCommandAmbiguous string

func (err ErrCommandAmbiguous) Error() string {
	return f("'%v': command is ambiguous", string(err))
}

// ErrArgument is an argument that could not be parsed.
type ErrArgument string

func (err ErrArgument) Error() string {
	return f("'%v': invalid argument", string(err))
}
