// Package cpu implements the IA-32 register state for the x86 emulator.
//
// The RegisterFile stores the eight 32-bit general-purpose registers
// (EAX, ECX, EDX, EBX, ESP, EBP, ESI, EDI) in that order. The 8-bit
// registers AL, CL, DL, BL address bits 0-7 and AH, CH, DH, BH address
// bits 8-15 of the first four slots; they have no storage of their own.
//
// Flags holds the EFLAGS word and decodes it into flag mnemonics.
// The RegisterAccess, FlagAccess, MemoryAccess and State interfaces are
// the surface an instruction execution unit depends on.
package cpu
