package io

const (
	MemorySize = 1 << 14 // 16 KiB, the 14-bit address space
	AddrMask   = MemorySize - 1
)

// Ram is a flat random-access memory responder covering the whole
// address space.
type Ram struct {
	Data [MemorySize]uint8
}

var _ Memory = (*Ram)(nil)

// Read returns the byte at a 14-bit address.
func (r *Ram) Read(addr uint16) (value uint8) {
	return r.Data[addr&AddrMask]
}

// Write stores a byte at a 14-bit address.
func (r *Ram) Write(addr uint16, value uint8) {
	r.Data[addr&AddrMask] = value
}

// LoadAt copies an image into memory starting at addr.
func (r *Ram) LoadAt(addr uint16, image []uint8) (err error) {
	if int(addr)+len(image) > MemorySize {
		err = ErrImageOverflow
		return
	}

	copy(r.Data[addr:], image)

	return
}

// Reset clears the memory.
func (r *Ram) Reset() {
	clear(r.Data[:])
}
