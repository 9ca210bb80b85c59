// Package io provides the external responders of the processor model:
// the memory the bus reaches during PCI/PCR/PCW cycles, the I/O ports
// reached during PCC cycles, and device models behind them. It also
// loads memory images in the .mem and Intel HEX formats.
package io

// Memory is the memory responder. Addresses are 14 bits; the model
// masks anything above.
type Memory interface {
	// Read returns the byte at a 14-bit address.
	Read(addr uint16) (value uint8)
	// Write stores a byte at a 14-bit address.
	Write(addr uint16, value uint8)
}

// PortIO is the I/O port responder: eight input ports (0-7) and
// twenty-four output ports (8-31).
type PortIO interface {
	// In returns the byte an input port drives.
	In(port uint8) (value uint8)
	// Out hands a byte to an output port to latch.
	Out(port uint8, value uint8)
}

// InputPort is a device behind a single input port.
type InputPort interface {
	In() (value uint8)
}

// OutputPort is a device behind a single output port.
type OutputPort interface {
	Out(value uint8)
}

// InputFunc adapts a function to an InputPort.
type InputFunc func() uint8

func (f InputFunc) In() (value uint8) {
	return f()
}

// OutputFunc adapts a function to an OutputPort.
type OutputFunc func(value uint8)

func (f OutputFunc) Out(value uint8) {
	f(value)
}
