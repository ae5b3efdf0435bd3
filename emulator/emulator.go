// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"

	"github.com/ezrec/x86emu/cpu"
	"github.com/ezrec/x86emu/internal"
	"github.com/ezrec/x86emu/memory"
)

const (
	BOOT_ADDR = 0x7c00      // Load address of a boot sector.
	RAM_SIZE  = 1024 * 1024 // Default memory reservation.
)

// Emulator state. Registers + EFLAGS + memory + instruction pointer.
// An Emulator has one owner; it is not safe for concurrent use.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	Registers cpu.RegisterFile // General purpose registers.
	Eflags    cpu.Flags        // EFLAGS status word.
	Ram       *memory.Linear   // Linear memory.
	Eip       uint32           // Instruction pointer.

	initialEip uint32
	initialEsp uint32
	defines    map[string]string
}

var _ cpu.State = (*Emulator)(nil)
var _ cpu.MemoryAccess = (*memory.Linear)(nil)

// NewEmulator creates a new emulator with size bytes of memory reserved.
// ESP is set to esp, EIP to eip, and everything else is zero.
func NewEmulator(size int, eip uint32, esp uint32) (emu *Emulator) {
	emu = &Emulator{
		Ram:        memory.NewLinear(size),
		initialEip: eip,
		initialEsp: esp,
		defines: map[string]string{
			"BOOT_ADDR": fmt.Sprintf("0x%x", BOOT_ADDR),
			"RAM_SIZE":  fmt.Sprintf("%v", size),
		},
	}

	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(internal.IterSeq2Sorted(emu.defines),
		cpu.Defines(),
	)
}

// Reset restores the state the emulator was constructed with.
// Loaded memory is discarded.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset eip 0x%08x esp 0x%08x", emu.initialEip, emu.initialEsp)
	}

	emu.Registers.Reset()
	emu.Registers.Slot[cpu.ESP] = emu.initialEsp
	emu.Eflags = 0
	emu.Ram.Reset()
	emu.Eip = emu.initialEip
}

// Load appends the contents of r to memory.
func (emu *Emulator) Load(r io.Reader) (err error) {
	n, err := emu.Ram.LoadFrom(r)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes, %d/%d used", n, emu.Ram.Len(), emu.Ram.Capacity)
	}

	return
}

// RegisterAccess returns the register file.
func (emu *Emulator) RegisterAccess() cpu.RegisterAccess {
	emu.Registers.Verbose = emu.Verbose
	return &emu.Registers
}

// FlagAccess returns the EFLAGS word.
func (emu *Emulator) FlagAccess() cpu.FlagAccess {
	return &emu.Eflags
}

// MemoryAccess returns the linear memory.
func (emu *Emulator) MemoryAccess() cpu.MemoryAccess {
	return emu.Ram
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() uint32 {
	return emu.Eip
}

// SetIp sets the instruction pointer.
func (emu *Emulator) SetIp(ip uint32) {
	emu.Eip = ip
}
