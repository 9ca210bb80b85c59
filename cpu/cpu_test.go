package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/i8008/io"
)

// bench wires a processor to memory and ports for stepping tests.
type bench struct {
	ram   *io.Ram
	ports *io.Ports
	cpu   *Cpu
}

func newBench(program ...uint8) (b *bench) {
	b = &bench{ram: &io.Ram{}, ports: &io.Ports{}}
	copy(b.ram.Data[:], program)
	b.cpu = NewCpu(b.ram, b.ports)

	return
}

// step advances one clock with the ready line held high.
func (b *bench) step() Outputs {
	return b.cpu.Step(Inputs{Ready: true})
}

// wake pulses the interrupt line, jamming a harmless MOV A,A so
// execution starts at address zero with no other side effect.
func (b *bench) wake() {
	in := Inputs{Ready: true, IntRequest: true, IntData: 0xc0}
	for range 2 {
		b.cpu.Step(in)
	}
}

// run wakes the machine and steps until it halts.
func (b *bench) run(t *testing.T, maxTicks int) {
	t.Helper()

	b.wake()
	for range maxTicks {
		if b.step().Halted {
			return
		}
	}
	t.Fatalf("no halt within %v ticks: %v", maxTicks, b.cpu)
}

func TestPowerOn(t *testing.T) {
	assert := assert.New(t)

	b := newBench()

	// Reset lands in STOPPED; nothing happens without an interrupt.
	for range 4 {
		out := b.step()
		assert.Equal(StateStopped, out.State)
		assert.Equal(uint8(0b011), out.StateCode)
		assert.True(out.Halted)
	}

	// The start pulse is recognized one clock later, through the
	// two flip-flop synchronizer.
	out := b.cpu.Step(Inputs{Ready: true, IntRequest: true, IntData: 0xc0})
	assert.Equal(StateStopped, out.State)

	out = b.cpu.Step(Inputs{Ready: true, IntRequest: true, IntData: 0xc0})
	assert.Equal(StateT1I, out.State)
	assert.Equal(uint8(0b110), out.StateCode)
	assert.True(out.Sync)
	assert.False(out.Halted)

	out = b.step()
	assert.Equal(StateT2, out.State)
	assert.Equal(CycleFetch, out.Cycle)

	// The acknowledged requester jams the byte at T3.
	out = b.step()
	assert.Equal(StateT3, out.State)
	assert.Equal(DriverInterrupt, out.Driver)
	assert.Equal(uint8(0xc0), out.Bus)

	// The program counter stays frozen through the acknowledge cycle.
	assert.Equal(uint16(0), b.cpu.PC)
}

func TestMoveAluStore(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x06, 0x05, // MVI A,5
		0x0e, 0x03, // MVI B,3
		0x81, //       ADD B
		0x2e, 0x08, // MVI H,8
		0x36, 0x00, // MVI L,0
		0xf8, //       MOV M,A
		0x00, //       HLT
	)
	b.run(t, 200)

	assert.Equal(uint8(0x08), b.cpu.Regs.Get(RegA))
	assert.Equal(uint8(0x03), b.cpu.Regs.Get(RegB))
	assert.Equal(uint8(0x08), b.cpu.Regs.Get(RegH))
	assert.Equal(uint8(0x00), b.cpu.Regs.Get(RegL))
	assert.Equal(uint8(0x08), b.ram.Data[0x0800])
	assert.Equal(Flags{}, b.cpu.Flags)
	assert.Equal(StateStopped, b.cpu.State())
}

func TestMemoryOperand(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x2e, 0x00, // MVI H,0
		0x36, 0x20, // MVI L,0x20
		0x3e, 0x42, // MVI M,0x42
		0xcf, //       MOV B,M
		0x87, //       ADD M
		0x00, //       HLT
	)
	b.run(t, 300)

	assert.Equal(uint8(0x42), b.ram.Data[0x0020])
	assert.Equal(uint8(0x42), b.cpu.Regs.Get(RegB))
	assert.Equal(uint8(0x42), b.cpu.Regs.Get(RegA))
}

func TestConditionalJump(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x06, 0x01, // 0000: MVI A,1
		0x3c, 0x01, // 0002: CMPI 1
		0x68, 0x0c, 0x00, // 0004: JTZ 000c
		0x06, 0xaa, // 0007: MVI A,0xaa
		0x00,       // 0009: HLT
		0x00,       // 000a
		0x00,       // 000b
		0x0e, 0x55, // 000c: MVI B,0x55
		0x00, // 000e: HLT
	)
	b.run(t, 300)

	// The taken branch skips the MVI A,0xaa.
	assert.Equal(uint8(0x01), b.cpu.Regs.Get(RegA))
	assert.Equal(uint8(0x55), b.cpu.Regs.Get(RegB))
	assert.Equal(uint16(0x000f), b.cpu.PC)
}

func TestConditionalFallThrough(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x06, 0x01, // 0000: MVI A,1
		0x3c, 0x01, // 0002: CMPI 1
		0x48, 0x0c, 0x00, // 0004: JFZ 000c (not taken, Z is set)
		0x06, 0xaa, // 0007: MVI A,0xaa
		0x00, // 0009: HLT
	)
	b.run(t, 300)

	assert.Equal(uint8(0xaa), b.cpu.Regs.Get(RegA))
	assert.Equal(uint16(0x000a), b.cpu.PC)
}

func TestCallReturn(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x46, 0x08, 0x00, // 0000: CAL 0008
		0x00, //             0003: HLT
		0x00, 0x00, 0x00, 0x00,
		0x06, 0x07, // 0008: MVI A,7
		0x07, //       000a: RET
	)
	b.run(t, 300)

	assert.Equal(uint8(0x07), b.cpu.Regs.Get(RegA))
	assert.Equal(uint16(0x0004), b.cpu.PC)
	assert.Equal(uint8(0), b.cpu.Stack.Ptr)
	// The frame held the address of the HLT.
	assert.Equal(uint16(0x0003), b.cpu.Stack.Slot[0])
}

func TestRestart(t *testing.T) {
	assert := assert.New(t)

	program := make([]uint8, 0x20)
	program[0] = RstOpcode(3)
	program[0x18] = 0x00 // HLT

	b := newBench(program...)
	b.run(t, 100)

	assert.Equal(uint16(0x0019), b.cpu.PC)
	assert.Equal(uint16(0x0001), b.cpu.Stack.Slot[0])
	assert.Equal(uint8(1), b.cpu.Stack.Ptr)
}

// Nine nested calls: the ninth push silently overwrites the oldest
// frame.
func TestCallOverflow(t *testing.T) {
	assert := assert.New(t)

	var program []uint8
	for n := 0; n < 9; n++ {
		next := uint16(3 * (n + 1))
		program = append(program, 0x46, uint8(next), uint8(next>>8))
	}
	program = append(program, 0x00) // 001b: HLT

	b := newBench(program...)
	b.run(t, 1000)

	assert.Equal(uint8(1), b.cpu.Stack.Ptr)
	assert.Equal(uint16(0x001b), b.cpu.Stack.Slot[0]) // ninth frame
	assert.Equal(uint16(0x0006), b.cpu.Stack.Slot[1]) // second frame survives
}

func TestInputOutput(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x45, // INP 2
		0x51, // OUT 8
		0x00, // HLT
	)

	var latched []uint8
	assert.NoError(b.ports.BindInput(2, io.InputFunc(func() uint8 { return 0x5a })))
	assert.NoError(b.ports.BindOutput(8, io.OutputFunc(func(value uint8) {
		latched = append(latched, value)
	})))

	b.run(t, 100)

	assert.Equal(uint8(0x5a), b.cpu.Regs.Get(RegA))
	assert.Equal([]uint8{0x5a}, latched)
}

// The PCC cycle puts the accumulator on the bus at T1 and the port
// select at T2.
func TestIoBusProtocol(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x06, 0x91, // MVI A,0x91
		0x45, //       INP 2
		0x00, //       HLT
	)
	assert.NoError(b.ports.BindInput(2, io.InputFunc(func() uint8 { return 0x33 })))

	b.wake()

	var sawT1, sawT2, sawT3 bool
	for range 200 {
		out := b.step()
		if out.Cycle != CycleIo {
			if out.Halted {
				break
			}
			continue
		}
		switch out.State {
		case StateT1:
			assert.Equal(uint8(0x91), out.Bus)
			assert.Equal(DriverCpu, out.Driver)
			sawT1 = true
		case StateT2:
			assert.Equal(CycleIo.Bits()|2, out.Bus)
			sawT2 = true
		case StateT3:
			assert.Equal(uint8(0x33), out.Bus)
			assert.Equal(DriverIo, out.Driver)
			sawT3 = true
		}
	}
	assert.True(sawT1 && sawT2 && sawT3)
}

// A low ready line stretches the transfer with whole WAIT periods; the
// transfer itself still happens exactly once.
func TestWaitStretch(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x06, 0x11, // MVI A,0x11
		0x00, //       HLT
	)
	b.wake()

	waits := 0
	for n := 0; n < 400; n++ {
		ready := n < 8 || n >= 16
		out := b.cpu.Step(Inputs{Ready: ready})
		if out.State == StateWait {
			waits++
			assert.Equal(uint8(0b000), out.StateCode)
		}
		if out.Halted {
			break
		}
	}

	assert.NotZero(waits)
	assert.Equal(uint8(0x11), b.cpu.Regs.Get(RegA))
}

func TestRotates(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x06, 0x81, // MVI A,0x81
		0x02, //       RLC
		0x12, //       RAL
		0x00, //       HLT
	)
	b.run(t, 200)

	// 0x81 RLC -> 0x03 carry set; RAL shifts the carry back in.
	assert.Equal(uint8(0x07), b.cpu.Regs.Get(RegA))
	assert.False(b.cpu.Flags.Carry)
}

func TestIncDec(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x0e, 0xff, // MVI B,0xff
		0x08, //       INR B
		0x16, 0x01, // MVI C,1
		0x11, //       DCR C
		0x00, //       HLT
	)
	b.run(t, 300)

	assert.Equal(uint8(0x00), b.cpu.Regs.Get(RegB))
	assert.Equal(uint8(0x00), b.cpu.Regs.Get(RegC))
	assert.True(b.cpu.Flags.Zero)
	// INR and DCR never touch Carry.
	assert.False(b.cpu.Flags.Carry)
}

func TestHaltAlias(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []uint8{0x00, 0x01, 0xff} {
		b := newBench(op)
		b.run(t, 50)
		assert.Equal(StateStopped, b.cpu.State(), "op 0x%02x", op)
		assert.Equal(uint16(1), b.cpu.PC, "op 0x%02x", op)
	}
}

// The matrix holes execute as single-fetch NOPs.
func TestHoleNop(t *testing.T) {
	assert := assert.New(t)

	b := newBench(
		0x06, 0x42, // MVI A,0x42
		0x22, 0x2a, 0x32, 0x38, 0x39, 0x3a,
		0x00, // HLT
	)
	b.run(t, 300)

	assert.Equal(uint8(0x42), b.cpu.Regs.Get(RegA))
	assert.Equal(Flags{}, b.cpu.Flags)
	assert.Equal(uint16(9), b.cpu.PC)
}
