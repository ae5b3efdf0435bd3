// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/x86emu/emulator"
	"github.com/ezrec/x86emu/translate"
)

var f = translate.From

func main() {
	var ramSize int
	var load bool
	var verbose bool
	var presets []string

	flag.IntVar(&ramSize, "r", emulator.RAM_SIZE, f("RAM size in bytes"))
	flag.BoolVar(&load, "l", false, f("Append FILE to memory"))
	flag.BoolVar(&verbose, "v", false, f("Verbose mode"))
	flag.Func("s", f("Preset a register, NAME=EXPR (repeatable)"), func(text string) error {
		presets = append(presets, text)
		return nil
	})

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), f("Usage: %v [options] FILE", os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// FILE is a boot sector or flat binary image.
	infile := flag.Arg(0)

	emu := emulator.NewEmulator(ramSize, emulator.BOOT_ADDR, emulator.BOOT_ADDR)
	emu.Verbose = verbose

	if load {
		inf, err := os.Open(infile)
		if err != nil {
			log.Fatalf("%v: %v", infile, err)
		}
		defer inf.Close()

		err = emu.Load(inf)
		if err != nil {
			log.Fatalf("%v: %v", infile, err)
		}
	}

	for _, preset := range presets {
		err := emu.Preset(preset)
		if err != nil {
			log.Fatal(err)
		}
	}

	_, err := emu.WriteTo(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}
