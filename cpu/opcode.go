package cpu

import (
	"fmt"
)

// Reg is a 3-bit register select code. RegM is the memory
// pseudo-register, resolved through the H:L address pointer.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	RegA = Reg(0) // A
	RegB = Reg(1) // B
	RegC = Reg(2) // C
	RegD = Reg(3) // D
	RegE = Reg(4) // E
	RegH = Reg(5) // H
	RegL = Reg(6) // L
	RegM = Reg(7) // M
)

// Kind is the decoded instruction class.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KindHalt    = Kind(0)  // HLT
	KindNop     = Kind(1)  // NOP
	KindMove    = Kind(2)  // MOV
	KindMoveImm = Kind(3)  // MVI
	KindInc     = Kind(4)  // INR
	KindDec     = Kind(5)  // DCR
	KindRotate  = Kind(6)  // ROT
	KindAluReg  = Kind(7)  // ALU
	KindAluImm  = Kind(8)  // ALUI
	KindJump    = Kind(9)  // JMP
	KindCall    = Kind(10) // CAL
	KindReturn  = Kind(11) // RET
	KindRestart = Kind(12) // RST
	KindInput   = Kind(13) // INP
	KindOutput  = Kind(14) // OUT
)

// AluOp is an accumulator operation code.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	AluAdd = AluOp(0) // ADD
	AluAdc = AluOp(1) // ADC
	AluSub = AluOp(2) // SUB
	AluSbb = AluOp(3) // SBB
	AluAnd = AluOp(4) // AND
	AluXor = AluOp(5) // XOR
	AluOr  = AluOp(6) // OR
	AluCmp = AluOp(7) // CMP
)

// RotOp is an accumulator rotate code.
type RotOp int

//go:generate go tool stringer -linecomment -type=RotOp
const (
	RotLeft       = RotOp(0) // RLC
	RotRight      = RotOp(1) // RRC
	RotLeftCarry  = RotOp(2) // RAL
	RotRightCarry = RotOp(3) // RAR
)

// Condition selector codes, bits 1:0 of the 3-bit condition field.
// Bit 2 selects the tested sense (0 = flag false, 1 = flag true).
const (
	CondCarry  = 0
	CondZero   = 1
	CondSign   = 2
	CondParity = 3

	condSense = 0b100
)

// Instr is the control descriptor for one decoded opcode. The datapath
// units consume it without any knowledge of the instruction set.
type Instr struct {
	Kind    Kind
	Dst     Reg   // destination register field
	Src     Reg   // source register field
	Alu     AluOp // KindAluReg / KindAluImm
	Rot     RotOp // KindRotate
	Cond    uint8 // 3-bit condition field for Jcc/Ccc/Rcc
	HasCond bool  // condition field is significant
	Vector  uint8 // KindRestart: target is Vector * 8
	Port    uint8 // KindInput: 0..7, KindOutput: 8..31
}

// Decode classifies an opcode byte. Decode is total: every byte maps to
// a descriptor. Unused bit positions are don't-cares, so several
// instructions have multiple equivalent encodings (RET, JMP, CAL).
// The six holes in the published matrix (0x22, 0x2A, 0x32, 0x38, 0x39,
// 0x3A) decode as NOP, a single fetch cycle with no datapath effect.
func Decode(op uint8) (in Instr) {
	dst := Reg((op >> 3) & 7)
	src := Reg(op & 7)

	switch op >> 6 {
	case 0b00:
		switch op & 7 {
		case 0b000, 0b001:
			// The A slots of INR/DCR are HLT, and the M slots are
			// unpopulated. The hardware decode reproduces both.
			switch dst {
			case RegA:
				in.Kind = KindHalt
			case RegM:
				in.Kind = KindNop
			default:
				in.Kind = KindInc
				if op&1 == 1 {
					in.Kind = KindDec
				}
				in.Dst = dst
			}
		case 0b010:
			if dst < 4 {
				in.Kind = KindRotate
				in.Rot = RotOp(dst)
			} else {
				in.Kind = KindNop
			}
		case 0b011:
			in.Kind = KindReturn
			in.Cond = uint8(dst)
			in.HasCond = true
		case 0b100:
			in.Kind = KindAluImm
			in.Alu = AluOp(dst)
		case 0b101:
			in.Kind = KindRestart
			in.Vector = uint8(dst)
		case 0b110:
			in.Kind = KindMoveImm
			in.Dst = dst
		case 0b111:
			in.Kind = KindReturn // dst bits are don't-cares
		}
	case 0b01:
		if op&1 == 1 {
			port := (op >> 1) & 0x1f
			if port < 8 {
				in.Kind = KindInput
			} else {
				in.Kind = KindOutput
			}
			in.Port = port
		} else {
			switch op & 0b110 {
			case 0b000:
				in.Kind = KindJump
				in.Cond = uint8(dst)
				in.HasCond = true
			case 0b010:
				in.Kind = KindCall
				in.Cond = uint8(dst)
				in.HasCond = true
			case 0b100:
				in.Kind = KindJump // dst bits are don't-cares
			case 0b110:
				in.Kind = KindCall
			}
		}
	case 0b10:
		in.Kind = KindAluReg
		in.Alu = AluOp(dst)
		in.Src = src
	case 0b11:
		if op == 0xff {
			// MOV M,M is HLT in the published matrix.
			in.Kind = KindHalt
		} else {
			in.Kind = KindMove
			in.Dst = dst
			in.Src = src
		}
	}

	return
}

// RstOpcode returns the restart opcode targeting vector * 8.
func RstOpcode(vector uint8) uint8 {
	return 0b00_000_101 | (vector&7)<<3
}

// condition mnemonic suffixes, indexed by the 2-bit selector.
var condSuffix = [4]string{"C", "Z", "S", "P"}

// String returns the instruction mnemonic.
func (in Instr) String() (text string) {
	switch in.Kind {
	case KindMove:
		text = fmt.Sprintf("MOV %v,%v", in.Dst, in.Src)
	case KindMoveImm:
		text = fmt.Sprintf("MVI %v", in.Dst)
	case KindInc:
		text = fmt.Sprintf("INR %v", in.Dst)
	case KindDec:
		text = fmt.Sprintf("DCR %v", in.Dst)
	case KindRotate:
		text = in.Rot.String()
	case KindAluReg:
		text = fmt.Sprintf("%v %v", in.Alu, in.Src)
	case KindAluImm:
		text = fmt.Sprintf("%vI", in.Alu)
	case KindJump, KindCall, KindReturn:
		name := "RET"
		switch in.Kind {
		case KindJump:
			name = "JMP"
		case KindCall:
			name = "CAL"
		}
		if in.HasCond {
			sense := "F"
			if in.Cond&condSense != 0 {
				sense = "T"
			}
			text = fmt.Sprintf("%c%s%s", name[0], sense, condSuffix[in.Cond&3])
		} else {
			text = name
		}
	case KindRestart:
		text = fmt.Sprintf("RST %d", in.Vector)
	case KindInput:
		text = fmt.Sprintf("INP %d", in.Port)
	case KindOutput:
		text = fmt.Sprintf("OUT %d", in.Port)
	default:
		text = in.Kind.String()
	}

	return
}
