package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMatrix(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op   uint8
		text string
	}){
		{0x00, "HLT"},
		{0x01, "HLT"},
		{0x02, "RLC"},
		{0x03, "RFC"},
		{0x04, "ADDI"},
		{0x05, "RST 0"},
		{0x06, "MVI A"},
		{0x07, "RET"},
		{0x08, "INR B"},
		{0x09, "DCR B"},
		{0x0a, "RRC"},
		{0x0b, "RFZ"},
		{0x0c, "ADCI"},
		{0x0d, "RST 1"},
		{0x0e, "MVI B"},
		{0x0f, "RET"},
		{0x12, "RAL"},
		{0x1a, "RAR"},
		{0x23, "RTC"},
		{0x25, "RST 4"},
		{0x2b, "RTZ"},
		{0x30, "INR L"},
		{0x34, "ORI"},
		{0x3c, "CMPI"},
		{0x3d, "RST 7"},
		{0x3e, "MVI M"},
		{0x3f, "RET"},
		{0x40, "JFC"},
		{0x41, "INP 0"},
		{0x42, "CFC"},
		{0x44, "JMP"},
		{0x46, "CAL"},
		{0x4f, "INP 7"},
		{0x51, "OUT 8"},
		{0x60, "JTC"},
		{0x68, "JTZ"},
		{0x6a, "CTZ"},
		{0x7c, "JMP"},
		{0x7f, "OUT 31"},
		{0x80, "ADD A"},
		{0x87, "ADD M"},
		{0x90, "SUB A"},
		{0xa1, "AND B"},
		{0xb8, "CMP A"},
		{0xbf, "CMP M"},
		{0xc0, "MOV A,A"},
		{0xc1, "MOV A,B"},
		{0xc7, "MOV A,M"},
		{0xf8, "MOV M,A"},
		{0xff, "HLT"},
	}

	for _, entry := range table {
		in := Decode(entry.op)
		assert.Equal(entry.text, in.String(), "op 0x%02x", entry.op)
	}
}

// The six unpopulated slots of the matrix decode as NOP.
func TestDecodeHoles(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []uint8{0x22, 0x2a, 0x32, 0x38, 0x39, 0x3a} {
		in := Decode(op)
		assert.Equal(KindNop, in.Kind, "op 0x%02x", op)
		assert.Equal("NOP", in.String(), "op 0x%02x", op)
	}
}

// Don't-care bits give RET, JMP and CAL several equivalent encodings.
func TestDecodeAliases(t *testing.T) {
	assert := assert.New(t)

	for dst := uint8(0); dst < 8; dst++ {
		in := Decode(0x07 | dst<<3)
		assert.Equal(KindReturn, in.Kind)
		assert.False(in.HasCond)
	}

	for dst := uint8(0); dst < 8; dst++ {
		assert.Equal(KindJump, Decode(0x44|dst<<3).Kind)
		assert.Equal(KindCall, Decode(0x46|dst<<3).Kind)
	}
}

func TestDecodeFields(t *testing.T) {
	assert := assert.New(t)

	in := Decode(0x9a) // SBB C
	assert.Equal(KindAluReg, in.Kind)
	assert.Equal(AluSbb, in.Alu)
	assert.Equal(RegC, in.Src)

	in = Decode(0x35) // RST 6
	assert.Equal(KindRestart, in.Kind)
	assert.Equal(uint8(6), in.Vector)
	assert.Equal(uint8(0x35), RstOpcode(6))

	in = Decode(0x48) // JFZ
	assert.Equal(KindJump, in.Kind)
	assert.True(in.HasCond)
	assert.Equal(uint8(CondZero), in.Cond)

	in = Decode(0x53) // OUT 9
	assert.Equal(KindOutput, in.Kind)
	assert.Equal(uint8(9), in.Port)
}

// Every byte decodes to a usable descriptor with an in-range cycle plan.
func TestDecodeTotal(t *testing.T) {
	assert := assert.New(t)

	for op := 0; op < 256; op++ {
		in := Decode(uint8(op))
		cycles := in.Cycles()
		assert.GreaterOrEqual(cycles, 1, "op 0x%02x", op)
		assert.LessOrEqual(cycles, 3, "op 0x%02x", op)
		assert.Equal(CycleFetch, in.Cycle(0), "op 0x%02x", op)
		assert.NotEmpty(in.String(), "op 0x%02x", op)
	}
}
