// Package memory provides the linear memory of the x86 emulator.
//
// Memory grows by sequential append from offset 0, as when a boot sector
// image is loaded, and never past the capacity reserved at construction.
package memory

import (
	"encoding/binary"
	"io"
)

// Linear is a contiguous, append-loaded byte memory.
type Linear struct {
	Capacity int    // Reserved capacity in bytes.
	Data     []byte // Loaded content, offset 0 first.
}

// NewLinear creates an empty memory with capacity bytes reserved.
func NewLinear(capacity int) (mem *Linear) {
	capacity = max(capacity, 0)

	mem = &Linear{
		Capacity: capacity,
		Data:     make([]byte, 0, capacity),
	}

	return
}

// Len returns the number of loaded bytes.
func (mem *Linear) Len() int {
	return len(mem.Data)
}

// Bytes returns the loaded content. The slice aliases the memory.
func (mem *Linear) Bytes() []byte {
	return mem.Data
}

// Reset discards all loaded content, keeping the reservation.
func (mem *Linear) Reset() {
	mem.Data = mem.Data[:0]
}

// Load appends data to the end of memory. If the result would exceed the
// capacity nothing is appended and ErrCapacityExceeded is returned.
func (mem *Linear) Load(data []byte) (err error) {
	need := len(mem.Data) + len(data)
	if need > mem.Capacity {
		err = ErrCapacityExceeded{Need: need, Capacity: mem.Capacity}
		return
	}

	mem.Data = append(mem.Data, data...)
	return
}

// LoadFrom appends everything read from r. A reader with more data than
// the remaining capacity loads nothing and returns ErrCapacityExceeded.
func (mem *Linear) LoadFrom(r io.Reader) (n int, err error) {
	room := mem.Capacity - len(mem.Data)

	// Read one byte past the room to detect overflow.
	data, err := io.ReadAll(io.LimitReader(r, int64(room)+1))
	if err != nil {
		return
	}

	if len(data) > room {
		err = ErrCapacityExceeded{Need: len(mem.Data) + len(data), Capacity: mem.Capacity}
		return
	}

	err = mem.Load(data)
	if err != nil {
		return
	}

	n = len(data)
	return
}

// span checks that [addr, addr+size) lies within loaded content.
func (mem *Linear) span(addr uint32, size int) (err error) {
	if uint64(addr)+uint64(size) > uint64(len(mem.Data)) {
		err = ErrAddressInvalid
	}

	return
}

// Read8 returns the byte at addr.
func (mem *Linear) Read8(addr uint32) (value byte, err error) {
	err = mem.span(addr, 1)
	if err != nil {
		return
	}

	value = mem.Data[addr]
	return
}

// Write8 replaces the byte at addr.
func (mem *Linear) Write8(addr uint32, value byte) (err error) {
	err = mem.span(addr, 1)
	if err != nil {
		return
	}

	mem.Data[addr] = value
	return
}

// Read32 returns the little endian word at addr.
func (mem *Linear) Read32(addr uint32) (value uint32, err error) {
	err = mem.span(addr, 4)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(mem.Data[addr:])
	return
}

// Write32 replaces the little endian word at addr.
func (mem *Linear) Write32(addr uint32, value uint32) (err error) {
	err = mem.span(addr, 4)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint32(mem.Data[addr:], value)
	return
}
