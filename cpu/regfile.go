package cpu

import (
	"log"
)

// RegisterFile holds the eight general purpose registers.
// The 8-bit registers are views onto bytes of the 32-bit slots.
type RegisterFile struct {
	Verbose bool // Set to enable verbose logging.

	Slot [REGISTER_SLOTS]uint32 // EAX, ECX, EDX, EBX, ESP, EBP, ESI, EDI.
}

var _ RegisterAccess = (*RegisterFile)(nil)

// resolve finds the storage slot and bit shift of a register of the given width.
func (rf *RegisterFile) resolve(r Register, width int) (slot int, shift uint, err error) {
	rv, ok := r.view()
	if !ok || rv.width != width {
		err = ErrRegisterUnknown(r)
		return
	}

	return rv.slot, rv.shift, nil
}

// Reset clears all registers.
func (rf *RegisterFile) Reset() {
	clear(rf.Slot[:])
}

// Read8 returns the byte aliased by an 8-bit register.
func (rf *RegisterFile) Read8(r Register) (value byte, err error) {
	slot, shift, err := rf.resolve(r, 8)
	if err != nil {
		return
	}

	value = byte((rf.Slot[slot] >> shift) & 0xff)
	return
}

// Write8 replaces the byte aliased by an 8-bit register, leaving the
// other three bytes of the slot untouched. An unknown register is
// logged and leaves the register file unchanged.
func (rf *RegisterFile) Write8(r Register, value byte) (err error) {
	slot, shift, err := rf.resolve(r, 8)
	if err != nil {
		log.Printf("cpu: write8 %v: %v", r, err)
		return
	}

	old := rf.Slot[slot]
	rf.Slot[slot] = (old &^ (0xff << shift)) | (uint32(value) << shift)

	if rf.Verbose {
		log.Printf("cpu: %v <- 0x%02x (%v 0x%08x -> 0x%08x)", r, value, Registers32[slot], old, rf.Slot[slot])
	}

	return
}

// Read32 returns a 32-bit register.
func (rf *RegisterFile) Read32(r Register) (value uint32, err error) {
	slot, _, err := rf.resolve(r, 32)
	if err != nil {
		return
	}

	value = rf.Slot[slot]
	return
}

// Write32 replaces a 32-bit register.
func (rf *RegisterFile) Write32(r Register, value uint32) (err error) {
	slot, _, err := rf.resolve(r, 32)
	if err != nil {
		log.Printf("cpu: write32 %v: %v", r, err)
		return
	}

	rf.Slot[slot] = value

	if rf.Verbose {
		log.Printf("cpu: %v <- 0x%08x", r, value)
	}

	return
}

// Read returns a register of any width, zero extended.
func (rf *RegisterFile) Read(r Register) (value uint32, err error) {
	switch r.Width() {
	case 8:
		var b byte
		b, err = rf.Read8(r)
		value = uint32(b)
	case 32:
		value, err = rf.Read32(r)
	default:
		err = ErrRegisterUnknown(r)
	}

	return
}

// Write sets a register of any width, truncating value to fit.
func (rf *RegisterFile) Write(r Register, value uint32) (err error) {
	switch r.Width() {
	case 8:
		err = rf.Write8(r, byte(value))
	case 32:
		err = rf.Write32(r, value)
	default:
		err = ErrRegisterUnknown(r)
		log.Printf("cpu: write %v: %v", r, err)
	}

	return
}
