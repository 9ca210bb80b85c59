package emulator

import (
	"fmt"
	"io"

	"github.com/ezrec/i8008/cpu"
)

// Trace writes one line per state to W, in the layout the project's
// logic-analyzer decode scripts print, so traces from the model and
// from captures diff cleanly.
type Trace struct {
	W io.Writer

	states int
	cycles int
}

// Record logs the outputs of one clock period.
func (tr *Trace) Record(tick int, out cpu.Outputs) {
	tr.states++

	if out.Sync {
		tr.cycles++
		fmt.Fprintf(tr.W, "\n--- Cycle #%d ---\n", tr.cycles)
	}

	line := fmt.Sprintf("State #%4d @ tick %6d: %-7v Data=0x%02X Drv=%-4v",
		tr.states, tick, out.State, out.Bus, out.Driver)
	if out.State == cpu.StateT2 {
		line += fmt.Sprintf("  CycleType=%v", out.Cycle)
	}

	fmt.Fprintln(tr.W, line)
}

// Cycles returns the number of machine cycles recorded so far.
func (tr *Trace) Cycles() int {
	return tr.cycles
}
