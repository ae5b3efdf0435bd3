package emulator

import (
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/x86emu/cpu"
)

// predeclared returns the names visible to a preset expression: every
// define, every register, EIP and EFLAGS.
func (emu *Emulator) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for key, str := range emu.Defines() {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	for reg := range cpu.Registers() {
		value, err := emu.Registers.Read(reg)
		if err != nil {
			continue
		}
		pred[reg.String()] = starlark.MakeUint64(uint64(value))
	}

	pred["EIP"] = starlark.MakeUint64(uint64(emu.Eip))
	pred["EFLAGS"] = starlark.MakeUint64(uint64(emu.Eflags))

	return
}

// eval evaluates a Starlark integer expression.
func (emu *Emulator) eval(expr string) (value uint32, err error) {
	thread := starlark.Thread{Name: "preset"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "preset", prog, emu.predeclared())
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrPresetExpression
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrPresetExpression
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrPresetExpression
		return
	}
	value = uint32(st_int64)
	return
}

// Preset assigns a register from a "NAME=EXPR" string. NAME is any 8 or
// 32-bit register, EIP or EFLAGS; EXPR is a Starlark integer expression
// that may refer to registers and defines. Values are truncated to the
// width of the target.
func (emu *Emulator) Preset(text string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrPreset{Preset: text, Err: err}
		}
	}()

	name, expr, ok := strings.Cut(text, "=")
	name = strings.ToUpper(strings.TrimSpace(name))
	expr = strings.TrimSpace(expr)
	if !ok || len(name) == 0 || len(expr) == 0 {
		err = ErrPresetSyntax
		return
	}

	reg, isReg := cpu.RegisterByName(name)
	if !isReg && name != "EIP" && name != "EFLAGS" {
		err = ErrPresetTarget
		return
	}

	value, err := emu.eval(expr)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: preset %v = 0x%08x", name, value)
	}

	switch {
	case isReg:
		emu.Registers.Verbose = emu.Verbose
		err = emu.Registers.Write(reg, value)
	case name == "EIP":
		emu.Eip = value
	case name == "EFLAGS":
		emu.Eflags = cpu.Flags(value)
	}

	return
}
