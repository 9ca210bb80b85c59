package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/i8008/io"
)

var _cpu_defines = map[string]string{
	"HLT": "0x00",
}

func init() {
	for n := range uint8(8) {
		_cpu_defines[fmt.Sprintf("RST_%d", n)] = fmt.Sprintf("0x%02x", RstOpcode(n))
	}
	for st := StateStopped; st <= StateT5; st++ {
		_cpu_defines["STATE_"+st.String()] = fmt.Sprintf("0b%03b", st.Code())
	}
}

// Memory is the external memory responder.
type Memory io.Memory

// PortIO is the external I/O port responder.
type PortIO io.PortIO

// Inputs are the external lines sampled each clock period.
type Inputs struct {
	Ready      bool  // responder ready; false stretches the data transfer
	IntRequest bool  // raw interrupt request line level
	IntData    uint8 // byte the requester drives during the acknowledge T3
}

// Outputs are the externally visible signals after one clock period.
type Outputs struct {
	State     TState
	StateCode uint8 // S2:S1:S0 state pins
	Sync      bool  // first state of a machine cycle
	Cycle     CycleType
	Bus       uint8
	Driver    BusDriver
	Halted    bool
}

// Cpu is the cycle model of the processor: the timing sequencer, the
// machine-cycle controller, and the datapath threaded together by a
// single step function. One Step call advances exactly one clock
// period, deterministically, from the state and the sampled inputs.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	PC    uint16 // 14-bit program counter.
	Regs  RegisterFile
	Flags Flags
	Stack AddressStack

	IR    uint8 // Latched opcode byte.
	Instr Instr // Decoded control descriptor.

	state    TState
	held     TState // data-transfer state stalled behind WAIT
	cycle    int    // machine-cycle index within the instruction
	long     bool   // current cycle carries the T4/T5 execute phase
	ack      bool   // current cycle is the interrupt acknowledge
	taken    bool   // evaluated condition of the current instruction
	halted   bool
	injected uint8  // byte jammed by the acknowledged requester
	addr     uint16 // 14-bit internal latch (RET pop)
	temp     uint8  // internal data latch
	low      uint8  // staged low byte of a jump/call target
	busHold  uint8  // remnant left on the released bus

	intSync IntSync

	mem   Memory
	ports PortIO

	Ticks int // Clock periods since reset.
}

// NewCpu creates a processor attached to its memory and I/O responders.
func NewCpu(mem Memory, ports PortIO) (cpu *Cpu) {
	cpu = &Cpu{
		mem:   mem,
		ports: ports,
	}
	cpu.Reset()

	return
}

// Reset models the internal power-on clear: registers, flags, stack
// and program counter all zero, sequencer in STOPPED. Execution does
// not begin until an interrupt pulse arrives.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.PC = 0
	cpu.Regs.Reset()
	cpu.Flags = Flags{}
	cpu.Stack.Reset()
	cpu.intSync.Reset()

	cpu.IR = 0
	cpu.Instr = Instr{}
	cpu.state = StateStopped
	cpu.cycle = 0
	cpu.long = false
	cpu.ack = false
	cpu.halted = true
	cpu.busHold = 0
	cpu.Ticks = 0
}

// Defines returns an iterator over the model's named constants.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// State returns the current sequencer state.
func (cpu *Cpu) State() TState {
	return cpu.state
}

// String returns the current processor state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("pc:%04x %v", cpu.PC, cpu.state)
	for r := RegA; r < RegM; r++ {
		text += fmt.Sprintf(" %v:%02x", r, cpu.Regs.Get(r))
	}
	text += fmt.Sprintf(" c:%v z:%v s:%v p:%v sp:%d",
		cpu.Flags.Carry, cpu.Flags.Zero, cpu.Flags.Sign, cpu.Flags.Parity,
		cpu.Stack.Ptr)

	return
}

// Step advances the machine by one clock period. Identical input
// stimulus always reproduces identical outputs.
func (cpu *Cpu) Step(in Inputs) (out Outputs) {
	cpu.Ticks++
	cpu.intSync.Clock(in.IntRequest, in.IntData)

	cpu.state = cpu.next(in)

	out = cpu.exec()

	return
}

// next is the timing sequencer transition. T1->T2->T3, with T4/T5
// appended when the controller decided so at T3, then the next T1 or
// T1I. WAIT interposes whole clock periods in front of T3 while the
// responder is not ready.
func (cpu *Cpu) next(in Inputs) (state TState) {
	switch cpu.state {
	case StateStopped:
		state = StateStopped
		if cpu.intSync.Pending() {
			state = StateT1I
		}
	case StateWait:
		state = StateWait
		if in.Ready {
			state = cpu.held
		}
	case StateT1, StateT1I:
		state = StateT2
	case StateT2:
		state = StateT3
		if !in.Ready {
			cpu.held = StateT3
			state = StateWait
		}
	case StateT3:
		switch {
		case cpu.halted:
			state = StateStopped
		case cpu.long:
			state = StateT4
		default:
			state = cpu.boundary()
		}
	case StateT4:
		state = StateT5
	case StateT5:
		state = cpu.boundary()
	}

	return
}

// boundary closes the current machine cycle and selects the first
// state of the next. The latched interrupt is honored only here, at an
// instruction boundary: T1I replaces the T1 of the next fetch, so T1I
// can never directly follow a T1.
func (cpu *Cpu) boundary() (state TState) {
	state = StateT1

	if cpu.cycle+1 < cpu.Instr.Cycles() {
		cpu.cycle++
		return
	}

	cpu.cycle = 0
	if cpu.intSync.Pending() {
		state = StateT1I
	}

	return
}

// exec performs the datapath and bus actions of the state just
// entered.
func (cpu *Cpu) exec() (out Outputs) {
	out.State = cpu.state
	out.StateCode = cpu.state.Code()
	out.Cycle = cpu.Instr.Cycle(cpu.cycle)
	out.Halted = cpu.state == StateStopped

	var claims []busClaim

	switch cpu.state {
	case StateStopped, StateWait:
		// Bus released; whatever T3 left floats.
	case StateT4:
		cpu.execT4()
	case StateT5:
		cpu.execT5()
	case StateT1:
		out.Sync = true
		cpu.ack = false
		claims = append(claims, busClaim{DriverCpu, cpu.t1Value()})
	case StateT1I:
		out.Sync = true
		cpu.ack = true
		cpu.halted = false
		cpu.injected = cpu.intSync.Acknowledge()
		claims = append(claims, busClaim{DriverCpu, uint8(cpu.PC)})
	case StateT2:
		claims = append(claims, busClaim{DriverCpu, cpu.t2Value()})
	case StateT3:
		claims = cpu.transfer()
	}

	out.Driver, out.Bus = arbitrate(claims...)
	if out.Driver == DriverNone {
		out.Bus = cpu.busHold
	} else {
		cpu.busHold = out.Bus
	}

	return
}

// t1Value is the byte the CPU drives at T1: the low program counter
// byte for fetches, the low pointer byte for memory operands, and the
// accumulator during an I/O cycle.
func (cpu *Cpu) t1Value() (value uint8) {
	switch cpu.Instr.Cycle(cpu.cycle) {
	case CycleRead, CycleWrite:
		value = uint8(cpu.Regs.Pointer())
	case CycleIo:
		value = cpu.Regs.Get(RegA)
	default:
		value = uint8(cpu.PC)
	}

	return
}

// t2Value is the byte the CPU drives at T2: the cycle type code on
// bits 7:6, and the high address bits (or the I/O port) below it.
func (cpu *Cpu) t2Value() (value uint8) {
	ct := cpu.Instr.Cycle(cpu.cycle)
	switch ct {
	case CycleRead, CycleWrite:
		value = ct.Bits() | uint8(cpu.Regs.Pointer()>>8)&0x3f
	case CycleIo:
		value = ct.Bits() | cpu.Instr.Port&0x1f
	default:
		value = ct.Bits() | uint8(cpu.PC>>8)&0x3f
	}

	return
}

// transfer performs the T3 data transfer of the current cycle and
// settles the cycle length.
func (cpu *Cpu) transfer() (claims []busClaim) {
	switch cpu.Instr.Cycle(cpu.cycle) {
	case CycleFetch:
		var value uint8
		if cpu.ack {
			// The acknowledged requester jams the byte in place
			// of memory; the program counter stays frozen.
			value = cpu.injected
			claims = append(claims, busClaim{DriverInterrupt, value})
		} else {
			value = cpu.mem.Read(cpu.PC)
			cpu.PC = (cpu.PC + 1) & 0x3fff
			claims = append(claims, busClaim{DriverMemory, value})
		}
		cpu.latch(value)
	case CycleRead:
		cpu.temp = cpu.mem.Read(cpu.Regs.Pointer())
		claims = append(claims, busClaim{DriverMemory, cpu.temp})
	case CycleWrite:
		cpu.mem.Write(cpu.Regs.Pointer(), cpu.temp)
		claims = append(claims, busClaim{DriverCpu, cpu.temp})
	case CycleIo:
		if cpu.Instr.Kind == KindInput {
			cpu.temp = cpu.ports.In(cpu.Instr.Port)
			claims = append(claims, busClaim{DriverIo, cpu.temp})
		} else {
			value := cpu.Regs.Get(RegA)
			cpu.ports.Out(cpu.Instr.Port, value)
			claims = append(claims, busClaim{DriverCpu, value})
		}
	}

	cpu.long = cpu.Instr.Executes(cpu.cycle, cpu.taken)

	return
}

// latch routes a fetched byte: cycle 0 loads the instruction register
// and decodes, later cycles collect immediate or address operands.
func (cpu *Cpu) latch(value uint8) {
	if cpu.cycle == 0 {
		cpu.IR = value
		cpu.Instr = Decode(value)
		cpu.taken = !cpu.Instr.HasCond || cpu.Flags.Test(cpu.Instr.Cond)
		if cpu.Instr.Kind == KindHalt {
			cpu.halted = true
		}
		if cpu.Verbose {
			log.Printf("cpu: %04x: %02x %v", (cpu.PC-1)&0x3fff, value, cpu.Instr)
		}

		return
	}

	switch cpu.Instr.Kind {
	case KindJump, KindCall:
		if cpu.cycle == 1 {
			cpu.low = value
		} else {
			cpu.temp = value // high target byte
		}
	default:
		cpu.temp = value
	}
}

// execT4 is the first execute phase: operand staging and stack motion.
func (cpu *Cpu) execT4() {
	in := cpu.Instr

	switch in.Kind {
	case KindMove, KindAluReg:
		if in.Src != RegM {
			cpu.temp = cpu.Regs.Get(in.Src)
		}
	case KindInc, KindDec:
		cpu.temp = cpu.Regs.Get(in.Dst)
	case KindReturn:
		cpu.addr = cpu.Stack.Pop()
	case KindCall, KindRestart:
		cpu.Stack.Push(cpu.PC)
	}
}

// execT5 is the second execute phase: ALU results and register or
// program counter writeback.
func (cpu *Cpu) execT5() {
	in := cpu.Instr

	switch in.Kind {
	case KindMove:
		if in.Dst != RegM {
			cpu.Regs.Set(in.Dst, cpu.temp)
		}
	case KindMoveImm:
		cpu.Regs.Set(in.Dst, cpu.temp)
	case KindInc, KindDec:
		result, flags := AluStep(cpu.temp, in.Kind == KindDec, cpu.Flags)
		cpu.Regs.Set(in.Dst, result)
		cpu.Flags = flags
	case KindRotate:
		result, flags := AluRotate(in.Rot, cpu.Regs.Get(RegA), cpu.Flags)
		cpu.Regs.Set(RegA, result)
		cpu.Flags = flags
	case KindAluReg, KindAluImm:
		result, flags := AluApply(in.Alu, cpu.Regs.Get(RegA), cpu.temp, cpu.Flags)
		cpu.Regs.Set(RegA, result)
		cpu.Flags = flags
	case KindJump, KindCall:
		cpu.PC = uint16(cpu.temp&0x3f)<<8 | uint16(cpu.low)
	case KindReturn:
		cpu.PC = cpu.addr
	case KindRestart:
		cpu.PC = uint16(in.Vector) * 8
	case KindInput:
		cpu.Regs.Set(RegA, cpu.temp)
	}
}
