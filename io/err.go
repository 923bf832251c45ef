package io

import (
	"errors"

	"github.com/ezrec/casl/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))

	// Image errors
	ErrRomMagic = errors.New(f("not a memory image"))
	ErrRomSize  = errors.New(f("memory image size invalid"))
)
