package cpu

// RegisterAccess is the register view needed by an execution unit.
type RegisterAccess interface {
	Read8(r Register) (byte, error)
	Write8(r Register, value byte) error
	Read32(r Register) (uint32, error)
	Write32(r Register, value uint32) error
}

// FlagAccess is the EFLAGS view needed by an execution unit.
type FlagAccess interface {
	Test(flag Flag) bool
	Set(flag Flag)
	Clear(flag Flag)
	Mnemonics() []string
}

// MemoryAccess is the memory view needed by an execution unit.
type MemoryAccess interface {
	Read8(addr uint32) (byte, error)
	Write8(addr uint32, value byte) error
	Read32(addr uint32) (uint32, error)
	Write32(addr uint32, value uint32) error
}

// State is a machine handed to an execution unit. It is owned by one
// mutator at a time and is not safe for concurrent use.
type State interface {
	RegisterAccess() RegisterAccess
	FlagAccess() FlagAccess
	MemoryAccess() MemoryAccess
	Ip() uint32
	SetIp(ip uint32)
}
