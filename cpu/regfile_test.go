package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile_RoundTrip8(t *testing.T) {
	assert := assert.New(t)

	for _, r := range Registers8 {
		for _, v := range []byte{0x00, 0x01, 0x7f, 0x80, 0xa5, 0xff} {
			rf := &RegisterFile{}
			assert.NoError(rf.Write8(r, v), r.String())
			got, err := rf.Read8(r)
			assert.NoError(err, r.String())
			assert.Equal(v, got, r.String())
		}
	}
}

func TestRegisterFile_RoundTrip32(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	for n, r := range Registers32 {
		assert.NoError(rf.Write32(r, 0x11111111*uint32(n+1)))
	}

	for n, r := range Registers32 {
		got, err := rf.Read32(r)
		assert.NoError(err)
		assert.Equal(0x11111111*uint32(n+1), got, r.String())
		assert.Equal(got, rf.Slot[n], r.String())
	}
}

func TestRegisterFile_SubByteIndependence(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		low  Register
		high Register
	}{
		{AL, AH},
		{CL, CH},
		{DL, DH},
		{BL, BH},
	}

	for _, entry := range table {
		rf := &RegisterFile{}

		assert.NoError(rf.Write8(entry.high, 0x5a))
		assert.NoError(rf.Write8(entry.low, 0xc3))

		hi, err := rf.Read8(entry.high)
		assert.NoError(err)
		assert.Equal(byte(0x5a), hi, entry.high.String())

		assert.NoError(rf.Write8(entry.high, 0x99))
		lo, err := rf.Read8(entry.low)
		assert.NoError(err)
		assert.Equal(byte(0xc3), lo, entry.low.String())
	}
}

func TestRegisterFile_PartialWritePreserves(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	assert.NoError(rf.Write32(EAX, 0xAABBCCDD))

	assert.NoError(rf.Write8(AL, 0x11))
	eax, _ := rf.Read32(EAX)
	assert.Equal(uint32(0xAABBCC11), eax)

	assert.NoError(rf.Write8(AH, 0x22))
	eax, _ = rf.Read32(EAX)
	assert.Equal(uint32(0xAABB2211), eax)

	// Other slots are untouched.
	for _, r := range Registers32[1:] {
		v, _ := rf.Read32(r)
		assert.Equal(uint32(0), v, r.String())
	}
}

func TestRegisterFile_AlAhSameValue(t *testing.T) {
	assert := assert.New(t)

	// AL=8 then AH=8 gives 0x0808; neither half overwrites the other.
	rf := &RegisterFile{}
	assert.NoError(rf.Write8(AL, 8))
	assert.NoError(rf.Write8(AH, 8))

	eax, err := rf.Read32(EAX)
	assert.NoError(err)
	assert.Equal(uint32(0x0808), eax)
}

func TestRegisterFile_Unknown(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name  string
		write func(rf *RegisterFile) error
	}{
		{"write8_wide", func(rf *RegisterFile) error { return rf.Write8(EAX, 0xff) }},
		{"write8_range", func(rf *RegisterFile) error { return rf.Write8(Register(99), 0xff) }},
		{"write8_negative", func(rf *RegisterFile) error { return rf.Write8(Register(-1), 0xff) }},
		{"write32_narrow", func(rf *RegisterFile) error { return rf.Write32(AH, 0xffffffff) }},
		{"write32_range", func(rf *RegisterFile) error { return rf.Write32(Register(16), 0xffffffff) }},
		{"write_range", func(rf *RegisterFile) error { return rf.Write(Register(42), 1) }},
	}

	for _, entry := range table {
		rf := &RegisterFile{}
		rf.Slot = [REGISTER_SLOTS]uint32{1, 2, 3, 4, 5, 6, 7, 8}
		before := rf.Slot

		err := entry.write(rf)
		assert.Error(err, entry.name)
		assert.True(errors.Is(err, ErrRegisterUnknown(0)), entry.name)
		assert.Equal(before, rf.Slot, entry.name)
	}

	rf := &RegisterFile{}
	_, err := rf.Read8(EBX)
	assert.ErrorIs(err, ErrRegisterUnknown(EBX))
	_, err = rf.Read32(BL)
	assert.ErrorIs(err, ErrRegisterUnknown(BL))
	_, err = rf.Read(Register(100))
	assert.ErrorIs(err, ErrRegisterUnknown(0))
}

func TestRegisterFile_ReadWriteWidth(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	assert.NoError(rf.Write(EDX, 0x12345678))
	assert.NoError(rf.Write(DH, 0x1ff))

	v, err := rf.Read(EDX)
	assert.NoError(err)
	assert.Equal(uint32(0x1234ff78), v)

	v, err = rf.Read(DH)
	assert.NoError(err)
	assert.Equal(uint32(0xff), v)

	rf.Reset()
	v, _ = rf.Read(EDX)
	assert.Equal(uint32(0), v)
}

func FuzzRegisterFile(f *testing.F) {
	f.Add(uint32(0), uint8(0), byte(0))
	f.Add(uint32(0xAABBCCDD), uint8(4), byte(0x22))
	f.Add(uint32(0xffffffff), uint8(7), byte(0x00))

	f.Fuzz(func(t *testing.T, initial uint32, index uint8, value byte) {
		assert := assert.New(t)

		r := Registers8[index%REGISTER_SLOTS]
		slot, ok := r.Slot()
		assert.True(ok)

		rf := &RegisterFile{}
		for _, wide := range Registers32 {
			assert.NoError(rf.Write32(wide, initial))
		}

		assert.NoError(rf.Write8(r, value))

		got, err := rf.Read8(r)
		assert.NoError(err)
		assert.Equal(value, got)

		mask := uint32(0xff) << r.Shift()
		wide, err := rf.Read32(slot)
		assert.NoError(err)
		assert.Equal(initial&^mask, wide&^mask)

		for _, other := range Registers32 {
			if other == slot {
				continue
			}
			v, _ := rf.Read32(other)
			assert.Equal(initial, v, other.String())
		}
	})
}
