package cpu

const (
	StackDepth = 8 // slots in the address stack
)

// AddressStack is the eight level return-address stack. The pointer
// wraps modulo 8 with no overflow detection: a ninth nested CALL
// silently overwrites the oldest frame, exactly as the hardware does.
type AddressStack struct {
	Slot [StackDepth]uint16
	Ptr  uint8
}

// Push writes a 14-bit return address at the pointer and advances it.
func (s *AddressStack) Push(addr uint16) {
	s.Slot[s.Ptr] = addr & 0x3fff
	s.Ptr = (s.Ptr + 1) % StackDepth
}

// Pop retreats the pointer and returns the address stored there.
func (s *AddressStack) Pop() (addr uint16) {
	s.Ptr = (s.Ptr + StackDepth - 1) % StackDepth
	addr = s.Slot[s.Ptr]

	return
}

// Reset clears all slots and the pointer.
func (s *AddressStack) Reset() {
	clear(s.Slot[:])
	s.Ptr = 0
}
