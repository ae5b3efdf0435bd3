package cpu

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/x86emu/internal"
)

// Register identifies a general purpose register or one of its 8-bit views.
type Register int

// Register identifiers. A 32-bit register's value is its RegisterFile slot;
// 8-bit registers resolve through _register_view.
//
//go:generate go tool stringer -linecomment -type=Register
const (
	EAX = Register(0) // EAX
	ECX = Register(1) // ECX
	EDX = Register(2) // EDX
	EBX = Register(3) // EBX
	ESP = Register(4) // ESP
	EBP = Register(5) // EBP
	ESI = Register(6) // ESI
	EDI = Register(7) // EDI

	AL = Register(8)  // AL
	CL = Register(9)  // CL
	DL = Register(10) // DL
	BL = Register(11) // BL
	AH = Register(12) // AH
	CH = Register(13) // CH
	DH = Register(14) // DH
	BH = Register(15) // BH
)

// REGISTER_SLOTS is the number of 32-bit storage slots.
const REGISTER_SLOTS = 8

// registerView places an identifier on its storage slot.
type registerView struct {
	slot  int  // Owning 32-bit slot.
	shift uint // Bit offset of the low bit of the view.
	width int  // Width in bits.
}

// _register_view is the alias resolution table. The slot order must match
// the RegisterFile storage order: EAX, ECX, EDX, EBX, ESP, EBP, ESI, EDI.
var _register_view = [...]registerView{
	EAX: {0, 0, 32},
	ECX: {1, 0, 32},
	EDX: {2, 0, 32},
	EBX: {3, 0, 32},
	ESP: {4, 0, 32},
	EBP: {5, 0, 32},
	ESI: {6, 0, 32},
	EDI: {7, 0, 32},

	AL: {0, 0, 8},
	CL: {1, 0, 8},
	DL: {2, 0, 8},
	BL: {3, 0, 8},
	AH: {0, 8, 8},
	CH: {1, 8, 8},
	DH: {2, 8, 8},
	BH: {3, 8, 8},
}

// Registers32 lists the 32-bit registers in storage order.
var Registers32 = [REGISTER_SLOTS]Register{EAX, ECX, EDX, EBX, ESP, EBP, ESI, EDI}

// Registers8 lists the 8-bit registers in ModR/M encoding order.
var Registers8 = [REGISTER_SLOTS]Register{AL, CL, DL, BL, AH, CH, DH, BH}

// view resolves the identifier, reporting false for values outside the table.
func (r Register) view() (rv registerView, ok bool) {
	if r < 0 || int(r) >= len(_register_view) {
		return
	}

	return _register_view[r], true
}

// Valid returns true if the register resolves to a storage slot.
func (r Register) Valid() bool {
	_, ok := r.view()
	return ok
}

// Width returns the register width in bits, or 0 if unknown.
func (r Register) Width() int {
	rv, _ := r.view()
	return rv.width
}

// Slot returns the owning 32-bit register.
func (r Register) Slot() (slot Register, ok bool) {
	rv, ok := r.view()
	if !ok {
		return
	}

	return Registers32[rv.slot], true
}

// Shift returns the bit offset of the register within its slot.
func (r Register) Shift() uint {
	rv, _ := r.view()
	return rv.shift
}

// RegisterByName looks up a register by its mnemonic, ignoring case.
func RegisterByName(name string) (reg Register, ok bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for r := range Registers() {
		if r.String() == name {
			return r, true
		}
	}

	return
}

// Registers returns an iterator over every identifier, 32-bit registers first.
func Registers() iter.Seq[Register] {
	return func(yield func(Register) bool) {
		for r := range Register(len(_register_view)) {
			if !yield(r) {
				return
			}
		}
	}
}

var _cpu_defines = map[string]string{
	"REGISTER_SLOTS": fmt.Sprintf("%v", REGISTER_SLOTS),
}

func init() {
	for _, flag := range _flag_table {
		_cpu_defines["FLAG_"+flag.name] = fmt.Sprintf("0x%x", uint32(flag.mask))
	}
}

// Defines for the cpu, ordered by name.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Sorted(_cpu_defines)
}
