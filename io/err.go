package io

import (
	"errors"

	"github.com/ezrec/i8008/translate"
)

var f = translate.From

var (
	// Port errors
	ErrPortRange = errors.New(f("port out of range"))

	// Image errors
	ErrImageByte     = errors.New(f("image byte invalid"))
	ErrImageOverflow = errors.New(f("image exceeds memory"))
	ErrHexRecord     = errors.New(f("hex record invalid"))
	ErrHexChecksum   = errors.New(f("hex record checksum"))
)
