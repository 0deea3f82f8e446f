package emulator

import (
	"github.com/ezrec/simpletron/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address int // Address of the failing instruction.
	LineNo  int // Source line, if known.
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("address %02d %v", err.Address, err.Err)
	}
	return f("address %02d line %d %v", err.Address, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
