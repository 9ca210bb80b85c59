package emulator

import (
	"errors"

	"github.com/ezrec/i8008/translate"
)

var f = translate.From

var (
	ErrTickLimit    = errors.New(f("tick limit reached"))
	ErrScriptGlobal = errors.New(f("script global invalid"))
	ErrScriptValue  = errors.New(f("script value invalid"))
)
