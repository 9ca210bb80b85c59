// Package cpu implements a cycle model of the Intel 8008 processor.
//
// The model follows the hardware partition: a timing sequencer drives
// the T-state progression through 3- or 5-state machine cycles, a
// machine-cycle controller classifies each cycle as instruction fetch
// (PCI), memory read (PCR), memory write (PCW) or I/O (PCC), and an
// instruction decoder turns each fetched opcode into a control
// descriptor. The datapath units (ALU and flags, the seven scratchpad
// registers, the eight level address stack) are pure functions of
// their inputs and that descriptor; none of them knows about
// instructions.
//
// Step advances the whole machine by one clock period. Memory and I/O
// are external responders reached over a single shared 8-bit bus, with
// exactly one driver per period selected by a fixed priority. The
// interrupt request line is synchronized, latched, and honored only at
// instruction boundaries, where a T1I acknowledge cycle replaces the
// next fetch and the requesting device jams the first opcode byte.
package cpu
