package cpu

import (
	"fmt"
	"strings"
)

// Flag is a mask of one or more EFLAGS bits.
type Flag uint32

// EFLAGS bits.
const (
	FLAG_CF   = Flag(1 << 0)  // Carry
	FLAG_PF   = Flag(1 << 2)  // Parity
	FLAG_AF   = Flag(1 << 4)  // Auxiliary carry
	FLAG_ZF   = Flag(1 << 6)  // Zero
	FLAG_SF   = Flag(1 << 7)  // Sign
	FLAG_TF   = Flag(1 << 8)  // Trap
	FLAG_IF   = Flag(1 << 9)  // Interrupt enable
	FLAG_DF   = Flag(1 << 10) // Direction
	FLAG_OF   = Flag(1 << 11) // Overflow
	FLAG_IOPL = Flag(3 << 12) // I/O privilege level, two bits
	FLAG_NT   = Flag(1 << 14) // Nested task
	FLAG_MD   = Flag(1 << 15) // Reserved, mode flag on NEC V-series
	FLAG_RF   = Flag(1 << 16) // Resume
	FLAG_VM   = Flag(1 << 17) // Virtual 8086 mode
	FLAG_AC   = Flag(1 << 18) // Alignment check
	FLAG_VIF  = Flag(1 << 19) // Virtual interrupt
	FLAG_VIP  = Flag(1 << 20) // Virtual interrupt pending
	FLAG_ID   = Flag(1 << 21) // CPUID available
	FLAG_R31  = Flag(1 << 31) // Reserved, display only
)

const FLAG_IOPL_SHIFT = 12

// _flag_table is in ascending bit order.
var _flag_table = [...]struct {
	mask Flag
	name string
}{
	{FLAG_CF, "CF"},
	{FLAG_PF, "PF"},
	{FLAG_AF, "AF"},
	{FLAG_ZF, "ZF"},
	{FLAG_SF, "SF"},
	{FLAG_TF, "TF"},
	{FLAG_IF, "IF"},
	{FLAG_DF, "DF"},
	{FLAG_OF, "OF"},
	{FLAG_IOPL, "IOPL"},
	{FLAG_NT, "NT"},
	{FLAG_MD, "MD"},
	{FLAG_RF, "RF"},
	{FLAG_VM, "VM"},
	{FLAG_AC, "AC"},
	{FLAG_VIF, "VIF"},
	{FLAG_VIP, "VIP"},
	{FLAG_ID, "ID"},
	{FLAG_R31, "R31"},
}

// String returns the mnemonic of a single flag, or the mask in hex.
func (fl Flag) String() string {
	for _, entry := range _flag_table {
		if entry.mask == fl {
			return entry.name
		}
	}

	return fmt.Sprintf("Flag(0x%x)", uint32(fl))
}

// Mnemonics decodes an EFLAGS word into the names of its active flags,
// in ascending bit order. IOPL is named once if either of its bits is set.
func Mnemonics(word uint32) (names []string) {
	for _, entry := range _flag_table {
		if word&uint32(entry.mask) != 0 {
			names = append(names, entry.name)
		}
	}

	return
}

// Flags is the EFLAGS status word.
type Flags uint32

var _ FlagAccess = (*Flags)(nil)

// Mnemonics returns the names of the active flags.
func (fl Flags) Mnemonics() []string {
	return Mnemonics(uint32(fl))
}

// String returns the word in hex followed by the active flag names.
func (fl Flags) String() string {
	return strings.Join(append([]string{fmt.Sprintf("%08X", uint32(fl))}, fl.Mnemonics()...), " ")
}

// Test returns true if any bit of flag is set.
func (fl Flags) Test(flag Flag) bool {
	return uint32(fl)&uint32(flag) != 0
}

// Set sets all bits of flag.
func (fl *Flags) Set(flag Flag) {
	*fl |= Flags(flag)
}

// Clear clears all bits of flag.
func (fl *Flags) Clear(flag Flag) {
	*fl &^= Flags(flag)
}

// Assign sets or clears flag.
func (fl *Flags) Assign(flag Flag, on bool) {
	if on {
		fl.Set(flag)
	} else {
		fl.Clear(flag)
	}
}

// Iopl returns the I/O privilege level field.
func (fl Flags) Iopl() uint32 {
	return (uint32(fl) & uint32(FLAG_IOPL)) >> FLAG_IOPL_SHIFT
}

// SetIopl replaces the I/O privilege level field with the low two bits of level.
func (fl *Flags) SetIopl(level uint32) {
	*fl = (*fl &^ Flags(FLAG_IOPL)) | Flags((level<<FLAG_IOPL_SHIFT)&uint32(FLAG_IOPL))
}
