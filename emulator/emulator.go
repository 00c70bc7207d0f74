package emulator

import (
	"errors"
	"log"

	"github.com/littleminion/lmc/cpu"
)

// HaltReason distinguishes how a bounded run ended.
type HaltReason int

const (
	HaltOk        = HaltReason(0) // the program executed HLT
	HaltMaxCycles = HaltReason(1) // the cycle budget ran out first
)

// String returns the halt reason as text.
func (hr HaltReason) String() string {
	if hr == HaltMaxCycles {
		return "max cycles"
	}
	return "halt"
}

// Emulator runs a program image on fresh machines. Each Execute call
// owns its Cpu exclusively, so independent runs may proceed in parallel.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Program *cpu.Program // The image executed by every run.
}

// NewEmulator creates an emulator over a program image.
func NewEmulator(prog *cpu.Program) *Emulator {
	return &Emulator{Program: prog}
}

// Execute runs the program over a fresh machine with the input tray
// preloaded, and returns the full output tray. A nil error with
// HaltMaxCycles means the budget expired before HLT; fatal decode and
// I/O errors are returned as-is.
func (emu *Emulator) Execute(inputs []cpu.Word, maxCycles int) (outputs []cpu.Word, reason HaltReason, err error) {
	c := cpu.NewCpu()
	c.Verbose = emu.Verbose
	c.Load(emu.Program)
	c.PushInput(inputs...)

	cycles, err := c.Run(maxCycles)
	outputs = c.OutTray

	if errors.Is(err, cpu.ErrMaxCycles(0)) {
		reason = HaltMaxCycles
		err = nil
	}
	if err == nil && emu.Verbose {
		log.Printf("emulator: %v after %d cycles, %d outputs", reason, cycles, len(outputs))
	}
	return
}
