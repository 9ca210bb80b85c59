package cpu

// IntSync is the interrupt synchronizer and request latch. The raw
// request line passes through two clocked flip-flops (the silicon
// erratum requires the line stable around the clock edge), and a
// rising edge of the synchronized level sets the latch. The byte the
// requesting device intends to jam during the acknowledge cycle is
// captured together with the edge.
type IntSync struct {
	ff1  bool
	ff2  bool
	prev bool

	latch bool
	data  uint8
}

// Clock advances the synchronizer by one clock period.
func (is *IntSync) Clock(request bool, data uint8) {
	is.prev = is.ff2
	is.ff2 = is.ff1
	is.ff1 = request

	if is.ff2 && !is.prev && !is.latch {
		is.latch = true
		is.data = data
	}
}

// Pending reports whether a synchronized request is latched.
func (is *IntSync) Pending() bool {
	return is.latch
}

// Acknowledge clears the latch and returns the captured byte. A new
// request cannot latch until the line produces another rising edge.
func (is *IntSync) Acknowledge() (data uint8) {
	is.latch = false
	data = is.data

	return
}

// Reset drops the flip-flops and the latch.
func (is *IntSync) Reset() {
	*is = IntSync{}
}
