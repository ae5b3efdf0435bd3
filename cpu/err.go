package cpu

import (
	"github.com/ezrec/x86emu/translate"
)

var f = translate.From

// ErrRegisterUnknown is returned when a register identifier does not
// resolve to a storage slot of the requested width.
type ErrRegisterUnknown Register

func (er ErrRegisterUnknown) Error() string {
	return f("register %v unknown", Register(er).String())
}

// Is matches any ErrRegisterUnknown.
func (er ErrRegisterUnknown) Is(err error) (ok bool) {
	_, ok = err.(ErrRegisterUnknown)
	return
}
