package io

import (
	"io"
)

// Console is the terminal bridge device: an output port writes
// characters to Output, one input port reads the next character from
// Input, and a second input port reports whether a character is
// waiting.
//
// Status pulls the next byte from Input to answer, so an interactive
// Input that blocks on Read will pause the simulation; buffered and
// file-backed readers answer immediately.
type Console struct {
	Input  io.Reader
	Output io.Writer

	pending uint8
	waiting bool
}

// Out writes one character to the console output.
func (c *Console) Out(value uint8) {
	if c.Output == nil {
		return
	}

	c.Output.Write([]byte{value})
}

// In returns the next input character, or zero when input is
// exhausted.
func (c *Console) In() (value uint8) {
	if !c.waiting {
		c.fill()
	}

	if c.waiting {
		value = c.pending
		c.waiting = false
	}

	return
}

// Status returns 1 when an input character is waiting.
func (c *Console) Status() (value uint8) {
	if !c.waiting {
		c.fill()
	}

	if c.waiting {
		value = 1
	}

	return
}

func (c *Console) fill() {
	if c.Input == nil {
		return
	}

	var one [1]byte
	n, _ := c.Input.Read(one[:])
	if n == 1 {
		c.pending = one[0]
		c.waiting = true
	}
}
