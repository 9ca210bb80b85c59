package io

const (
	InputPorts  = 8  // input ports 0..7
	OutputPorts = 24 // output ports 8..31
)

// Ports is a port responder multiplexing per-port device models.
// Unbound input ports read as zero; unbound output ports drop the
// byte.
type Ports struct {
	input  [InputPorts]InputPort
	output [OutputPorts]OutputPort
}

var _ PortIO = (*Ports)(nil)

// BindInput attaches a device model to an input port (0..7).
// A nil device detaches the port.
func (p *Ports) BindInput(port uint8, dev InputPort) (err error) {
	if port >= InputPorts {
		err = ErrPortRange
		return
	}

	p.input[port] = dev

	return
}

// BindOutput attaches a device model to an output port (8..31).
// A nil device detaches the port.
func (p *Ports) BindOutput(port uint8, dev OutputPort) (err error) {
	if port < InputPorts || port >= InputPorts+OutputPorts {
		err = ErrPortRange
		return
	}

	p.output[port-InputPorts] = dev

	return
}

// In returns the byte driven by the device on an input port.
func (p *Ports) In(port uint8) (value uint8) {
	if port < InputPorts && p.input[port] != nil {
		value = p.input[port].In()
	}

	return
}

// Out latches a byte into the device on an output port.
func (p *Ports) Out(port uint8, value uint8) {
	if port >= InputPorts && port < InputPorts+OutputPorts {
		if dev := p.output[port-InputPorts]; dev != nil {
			dev.Out(value)
		}
	}
}
