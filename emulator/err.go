package emulator

import (
	"errors"

	"github.com/ezrec/x86emu/translate"
)

var f = translate.From

var (
	// Preset errors
	ErrPresetSyntax     = errors.New(f("expected NAME=EXPR"))
	ErrPresetTarget     = errors.New(f("unknown register"))
	ErrPresetExpression = errors.New(f("not an integer expression"))
)

// ErrPreset indicates the preset that failed.
type ErrPreset struct {
	Preset string
	Err    error
}

func (err *ErrPreset) Error() string {
	return f("preset '%v' %v", err.Preset, err.Err)
}

func (err *ErrPreset) Unwrap() error {
	return err.Err
}
