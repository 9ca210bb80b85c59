package emulator

import (
	"errors"
	"fmt"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/i8008/cpu"
)

// The request line is held high for a few clock periods so the
// two-flop synchronizer is guaranteed to see an edge.
const pulseWidth = 4

// IntPulse asserts the interrupt request line starting at Tick,
// jamming Data during the acknowledge cycle.
type IntPulse struct {
	Tick int
	Data uint8
}

// Window deasserts the ready line for ticks in [From, To).
type Window struct {
	From int
	To   int
}

// Stimulus is the deterministic schedule of the external input lines.
type Stimulus struct {
	Interrupts []IntPulse
	NotReady   []Window
	Ticks      int // run limit requested by a script, 0 for none
}

// At returns the input lines as sampled at one tick.
func (st *Stimulus) At(tick int) (in cpu.Inputs) {
	in.Ready = true
	for _, w := range st.NotReady {
		if tick >= w.From && tick < w.To {
			in.Ready = false
		}
	}

	for _, p := range st.Interrupts {
		if tick >= p.Tick && tick < p.Tick+pulseWidth {
			in.IntRequest = true
			in.IntData = p.Data
		}
	}

	return
}

// PendingAfter reports whether any interrupt pulse is still scheduled
// at or after a tick, i.e. whether a stopped machine can still wake.
func (st *Stimulus) PendingAfter(tick int) (pending bool) {
	for _, p := range st.Interrupts {
		if p.Tick+pulseWidth > tick {
			pending = true
		}
	}

	return
}

// LoadScript executes a Starlark stimulus script and folds its globals
// into the emulator: "mem" (a list of bytes from address zero, or a
// dict of address to byte), "interrupts" (list of (tick, byte)
// tuples), "not_ready" (list of (from, to) tuples) and "ticks" (run
// limit). The emulator's Defines() are predeclared as integers, so a
// script can say interrupts = [(20, RST_1)].
func (emu *Emulator) LoadScript(filename string, src any) (err error) {
	opts := syntax.FileOptions{}
	thread := starlark.Thread{}

	pred := starlark.StringDict{}
	for key, value := range emu.Defines() {
		value32, perr := strconv.ParseUint(value, 0, 32)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	for key, value := range dict {
		switch key {
		case "mem":
			err = emu.scriptMem(value)
		case "interrupts":
			err = emu.scriptInterrupts(value)
		case "not_ready":
			err = emu.scriptNotReady(value)
		case "ticks":
			var ticks int
			ticks, err = scriptInt(value)
			emu.Stimulus.Ticks = ticks
		}
		if err != nil {
			err = errors.Join(ErrScriptGlobal, fmt.Errorf("%v", key), err)
			return
		}
	}

	return
}

func (emu *Emulator) scriptMem(value starlark.Value) (err error) {
	switch v := value.(type) {
	case *starlark.List:
		for n := range v.Len() {
			var b int
			b, err = scriptInt(v.Index(n))
			if err != nil {
				return
			}
			emu.Ram.Write(uint16(n), uint8(b))
		}
	case *starlark.Dict:
		for _, item := range v.Items() {
			var addr, b int
			addr, err = scriptInt(item[0])
			if err == nil {
				b, err = scriptInt(item[1])
			}
			if err != nil {
				return
			}
			emu.Ram.Write(uint16(addr), uint8(b))
		}
	default:
		err = ErrScriptValue
	}

	return
}

func (emu *Emulator) scriptInterrupts(value starlark.Value) (err error) {
	err = scriptPairs(value, func(tick, data int) {
		emu.Stimulus.Interrupts = append(emu.Stimulus.Interrupts, IntPulse{
			Tick: tick,
			Data: uint8(data),
		})
	})

	return
}

func (emu *Emulator) scriptNotReady(value starlark.Value) (err error) {
	err = scriptPairs(value, func(from, to int) {
		emu.Stimulus.NotReady = append(emu.Stimulus.NotReady, Window{
			From: from,
			To:   to,
		})
	})

	return
}

// scriptPairs walks a list of two element tuples.
func scriptPairs(value starlark.Value, each func(a, b int)) (err error) {
	list, ok := value.(*starlark.List)
	if !ok {
		err = ErrScriptValue
		return
	}

	for n := range list.Len() {
		tuple, ok := list.Index(n).(starlark.Tuple)
		if !ok || tuple.Len() != 2 {
			err = ErrScriptValue
			return
		}
		var a, b int
		a, err = scriptInt(tuple.Index(0))
		if err == nil {
			b, err = scriptInt(tuple.Index(1))
		}
		if err != nil {
			return
		}
		each(a, b)
	}

	return
}

func scriptInt(value starlark.Value) (out int, err error) {
	ival, ok := value.(starlark.Int)
	if !ok {
		err = ErrScriptValue
		return
	}

	out64, ok := ival.Int64()
	if !ok {
		err = ErrScriptValue
		return
	}
	out = int(out64)

	return
}
