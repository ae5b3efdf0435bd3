package memory

import (
	"errors"

	"github.com/ezrec/x86emu/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrAddressInvalid = errors.New(f("address invalid"))
)

// ErrCapacityExceeded is returned when a load would grow memory past its
// reserved capacity.
type ErrCapacityExceeded struct {
	Need     int // Bytes the memory would have held after the load.
	Capacity int // Reserved capacity.
}

func (err ErrCapacityExceeded) Error() string {
	return f("capacity exceeded: need %d bytes, capacity %d", err.Need, err.Capacity)
}

// Is matches any ErrCapacityExceeded.
func (err ErrCapacityExceeded) Is(target error) (ok bool) {
	_, ok = target.(ErrCapacityExceeded)
	return
}
