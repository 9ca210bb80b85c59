package cpu

// TState is one phase of a machine cycle.
type TState int

//go:generate go tool stringer -linecomment -type=TState
const (
	StateStopped = TState(0) // STOPPED
	StateWait    = TState(1) // TWAIT
	StateT1      = TState(2) // T1
	StateT1I     = TState(3) // T1I
	StateT2      = TState(4) // T2
	StateT3      = TState(5) // T3
	StateT4      = TState(6) // T4
	StateT5      = TState(7) // T5
)

// Hardware S2:S1:S0 encodings, as seen on the state output pins.
var stateCode = [8]uint8{
	StateStopped: 0b011,
	StateWait:    0b000,
	StateT1:      0b010,
	StateT1I:     0b110,
	StateT2:      0b100,
	StateT3:      0b001,
	StateT4:      0b111,
	StateT5:      0b101,
}

// Code returns the 3-bit S2:S1:S0 state code.
func (st TState) Code() uint8 {
	return stateCode[st]
}

// CycleType classifies a machine cycle. The 2-bit code is broadcast
// on bus bits 7:6 during T2.
type CycleType int

//go:generate go tool stringer -linecomment -type=CycleType
const (
	CycleFetch = CycleType(0b00) // PCI
	CycleRead  = CycleType(0b01) // PCR
	CycleWrite = CycleType(0b10) // PCW
	CycleIo    = CycleType(0b11) // PCC
)

// Bits returns the cycle type code positioned at bus bits 7:6.
func (ct CycleType) Bits() uint8 {
	return uint8(ct) << 6
}
