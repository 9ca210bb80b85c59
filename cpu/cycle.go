package cpu

// Machine-cycle controller. Classifies each machine cycle of the
// current instruction, and decides whether a cycle carries the T4/T5
// execute phase. The classification for a cycle is settled before its
// T2 broadcasts the type code; the length decision lands at T3, once
// the fetched byte has been decoded.

// Cycles returns the number of machine cycles the instruction occupies.
func (in Instr) Cycles() (count int) {
	count = 1

	switch in.Kind {
	case KindMove:
		if in.Dst == RegM || in.Src == RegM {
			count = 2
		}
	case KindMoveImm:
		count = 2
		if in.Dst == RegM {
			count = 3
		}
	case KindAluReg:
		if in.Src == RegM {
			count = 2
		}
	case KindAluImm, KindInput, KindOutput:
		count = 2
	case KindJump, KindCall:
		count = 3
	}

	return
}

// Cycle returns the classification of machine cycle n of the
// instruction. Cycle 0 is always the instruction fetch; immediate and
// address operand bytes are fetches as well.
func (in Instr) Cycle(n int) (ct CycleType) {
	ct = CycleFetch
	if n == 0 {
		return
	}

	switch in.Kind {
	case KindMove:
		if in.Dst == RegM {
			ct = CycleWrite
		} else {
			ct = CycleRead
		}
	case KindMoveImm:
		if n == 2 {
			ct = CycleWrite
		}
	case KindAluReg:
		ct = CycleRead
	case KindInput, KindOutput:
		ct = CycleIo
	}

	return
}

// Executes reports whether machine cycle n of the instruction needs
// the T4/T5 execute phase. taken is the evaluated condition for flow
// instructions (always true for their unconditional forms).
func (in Instr) Executes(n int, taken bool) (long bool) {
	switch in.Kind {
	case KindMove:
		switch {
		case in.Src == RegM:
			long = n == 1 // register writeback
		case in.Dst == RegM:
			long = n == 0 // stage the source register
		default:
			long = true
		}
	case KindMoveImm:
		long = in.Dst != RegM && n == 1
	case KindInc, KindDec, KindRotate, KindAluReg, KindAluImm:
		long = n == in.Cycles()-1
	case KindReturn:
		long = taken
	case KindJump, KindCall:
		long = n == 2 && taken
	case KindRestart:
		long = true
	case KindInput, KindOutput:
		long = n == 1
	}

	return
}
