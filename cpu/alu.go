package cpu

import (
	"math/bits"
)

// Flags are the four condition flip-flops.
type Flags struct {
	Carry  bool
	Zero   bool
	Sign   bool
	Parity bool
}

// Test evaluates a 3-bit condition field against the flags. Bits 1:0
// select the flag, bit 2 selects the sense.
func (f Flags) Test(cond uint8) (taken bool) {
	switch cond & 3 {
	case CondCarry:
		taken = f.Carry
	case CondZero:
		taken = f.Zero
	case CondSign:
		taken = f.Sign
	case CondParity:
		taken = f.Parity
	}

	if cond&condSense == 0 {
		taken = !taken
	}

	return
}

// adder8 is the 8-bit carry-lookahead adder. The generate and
// propagate terms ripple the carry chain in a single pass; subtraction
// goes through here as addition of the two's complement.
func adder8(a, b uint8, carryIn bool) (sum uint8, carryOut bool) {
	gen := a & b
	prop := a ^ b

	carry := carryIn
	for n := range 8 {
		if carry {
			sum |= (prop>>n&1 ^ 1) << n
		} else {
			sum |= (prop >> n & 1) << n
		}
		carry = gen>>n&1 == 1 || (prop>>n&1 == 1 && carry)
	}
	carryOut = carry

	return
}

// resultFlags derives Zero, Sign and Parity from a result byte.
// Parity is set for an even number of one bits.
func resultFlags(result uint8, carry bool) (f Flags) {
	f.Carry = carry
	f.Zero = result == 0
	f.Sign = result&0x80 != 0
	f.Parity = bits.OnesCount8(result)%2 == 0

	return
}

// AluApply performs one accumulator operation. CMP computes the flags
// of a subtraction and returns the accumulator unchanged. For
// subtraction Carry is the borrow.
func AluApply(op AluOp, acc uint8, operand uint8, in Flags) (result uint8, out Flags) {
	var carry bool

	switch op {
	case AluAdd:
		result, carry = adder8(acc, operand, false)
	case AluAdc:
		result, carry = adder8(acc, operand, in.Carry)
	case AluSub, AluCmp:
		result, carry = adder8(acc, ^operand, true)
		carry = !carry
	case AluSbb:
		result, carry = adder8(acc, ^operand, !in.Carry)
		carry = !carry
	case AluAnd:
		result = acc & operand
	case AluXor:
		result = acc ^ operand
	case AluOr:
		result = acc | operand
	}

	out = resultFlags(result, carry)
	if op == AluCmp {
		result = acc
	}

	return
}

// AluStep increments or decrements a register byte. Carry is never
// touched by INR/DCR.
func AluStep(value uint8, decrement bool, in Flags) (result uint8, out Flags) {
	operand := uint8(1)
	if decrement {
		operand = 0xff
	}
	result, _ = adder8(value, operand, false)

	out = resultFlags(result, in.Carry)

	return
}

// AluRotate rotates the accumulator one bit. Only Carry is affected.
func AluRotate(op RotOp, acc uint8, in Flags) (result uint8, out Flags) {
	out = in

	carryBit := uint8(0)
	if in.Carry {
		carryBit = 1
	}

	switch op {
	case RotLeft:
		result = acc<<1 | acc>>7
		out.Carry = acc&0x80 != 0
	case RotRight:
		result = acc>>1 | acc<<7
		out.Carry = acc&1 != 0
	case RotLeftCarry:
		result = acc<<1 | carryBit
		out.Carry = acc&0x80 != 0
	case RotRightCarry:
		result = acc>>1 | carryBit<<7
		out.Carry = acc&1 != 0
	}

	return
}
