// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator wires the processor model to its memory, port
// devices and stimulus schedule, and runs it tick by tick.
package emulator

import (
	"iter"
	"maps"

	"github.com/ezrec/i8008/cpu"
	"github.com/ezrec/i8008/internal"
	"github.com/ezrec/i8008/io"
)

// Console port assignment, matching the monitor firmware: INP 2 reads
// a character, INP 3 reads key-available status, OUT to the first
// output port prints.
const (
	ConsoleDataPort   = 2
	ConsoleStatusPort = 3
	ConsoleOutPort    = 8
)

var _emulator_defines = map[string]string{
	"MEM_SIZE":            "0x4000",
	"PORT_CONSOLE_DATA":   "0x2",
	"PORT_CONSOLE_STATUS": "0x3",
	"PORT_CONSOLE_OUT":    "0x8",
}

// Emulator state: CPU + memory + port devices + stimulus.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the processor simulation.

	Ram     io.Ram     // Memory responder.
	Ports   io.Ports   // Port responder.
	Console io.Console // Terminal bridge device.

	Stimulus Stimulus // External line schedule.
	Trace    *Trace   // Optional per-state trace sink.
}

// NewEmulator creates a new emulator with the console bound to its
// standard ports.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{}
	emu.Cpu = cpu.NewCpu(&emu.Ram, &emu.Ports)

	emu.Ports.BindInput(ConsoleDataPort, io.InputFunc(emu.Console.In))
	emu.Ports.BindInput(ConsoleStatusPort, io.InputFunc(emu.Console.Status))
	emu.Ports.BindOutput(ConsoleOutPort, io.OutputFunc(emu.Console.Out))

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// PowerOn schedules the start-up interrupt pulse that brings the CPU
// out of STOPPED, jamming a RST to the given vector. The hardware
// needs the same external nudge after its internal clear.
func (emu *Emulator) PowerOn(vector uint8) {
	emu.Stimulus.Interrupts = append(emu.Stimulus.Interrupts, IntPulse{
		Tick: emu.Cpu.Ticks + 1,
		Data: cpu.RstOpcode(vector),
	})
}

// Run steps the machine until it halts with nothing scheduled to wake
// it, or until maxTicks clock periods have elapsed.
func (emu *Emulator) Run(maxTicks int) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	for emu.Cpu.Ticks < maxTicks {
		tick := emu.Cpu.Ticks
		out := emu.Cpu.Step(emu.Stimulus.At(tick))

		if emu.Trace != nil {
			emu.Trace.Record(tick+1, out)
		}

		if out.Halted && !emu.Stimulus.PendingAfter(tick) {
			return
		}
	}

	err = ErrTickLimit

	return
}
