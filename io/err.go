package io

import (
	"errors"

	"github.com/ezrec/lol16/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageSize = errors.New(f("image larger than memory"))
)
