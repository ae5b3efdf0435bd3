package emulator

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ezrec/x86emu/cpu"
)

// WriteTo writes the machine state snapshot to w. The output depends only
// on the machine state, and is not localised.
func (emu *Emulator) WriteTo(w io.Writer) (n int64, err error) {
	var buf bytes.Buffer

	buf.WriteString("x86emu: machine state\n")

	buf.WriteString("registers:\n")
	for slot, reg := range cpu.Registers32 {
		fmt.Fprintf(&buf, "  %v: %08X\n", reg, emu.Registers.Slot[slot])
	}

	fmt.Fprintf(&buf, "eflags: %v\n", emu.Eflags)
	fmt.Fprintf(&buf, "eip: %08X\n", emu.Eip)
	fmt.Fprintf(&buf, "memory: %d/%d bytes\n", emu.Ram.Len(), emu.Ram.Capacity)

	return buf.WriteTo(w)
}

// String returns the machine state snapshot.
func (emu *Emulator) String() string {
	var buf bytes.Buffer
	emu.WriteTo(&buf)
	return buf.String()
}
