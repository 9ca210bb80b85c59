package cpu

// RegisterFile holds the seven scratchpad registers A through L.
// A doubles as the accumulator. The memory pseudo-register M is not
// stored here; the cycle controller turns RegM selects into PCR/PCW
// cycles addressed through Pointer().
type RegisterFile struct {
	Reg [7]uint8
}

// Get reads a scratchpad register.
func (rf *RegisterFile) Get(r Reg) uint8 {
	return rf.Reg[r]
}

// Set writes a scratchpad register.
func (rf *RegisterFile) Set(r Reg, value uint8) {
	rf.Reg[r] = value
}

// Pointer returns the 14-bit H:L memory address. The two high bits of
// H are don't-cares and never reach the address bus.
func (rf *RegisterFile) Pointer() uint16 {
	return uint16(rf.Reg[RegH]&0x3f)<<8 | uint16(rf.Reg[RegL])
}

// Reset zeroes every register, as the internal power-on clear does.
func (rf *RegisterFile) Reset() {
	clear(rf.Reg[:])
}
