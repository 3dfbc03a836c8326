package pipeline

import (
	"github.com/archlab/rvtom/emu"
	"github.com/archlab/rvtom/insts"
)

// stepExecute advances every busy reservation station: it wakes up
// operands whose producer has broadcast, counts down execution latency
// once both operands are ready, and broadcasts the result onto the ROB
// when the countdown completes. Pools are walked
// sequentially within a single pass, so a broadcast from an earlier
// station in this same call is visible to a later station's wake-up
// check in the same cycle.
func (p *Pipeline) stepExecute() {
	p.executePool(p.aluRS)
	p.executePool(p.lsRS)
}

func (p *Pipeline) executePool(pool *RSPool) {
	for i := 0; i < pool.Len(); i++ {
		rs := pool.At(i)
		if !rs.Busy {
			continue
		}
		p.wakeOperand(&rs.Vj, &rs.Qj)
		p.wakeOperand(&rs.Vk, &rs.Qk)
		if !rs.ready() {
			continue
		}

		if rs.Op.IsMemory() {
			p.executeMemory(rs)
		} else {
			p.executeCompute(rs)
		}
	}
}

// wakeOperand resolves an operand still waiting on a producer tag, if
// that producer has since broadcast its result.
func (p *Pipeline) wakeOperand(value *int32, tag *ROBTag) {
	if *tag == 0 {
		return
	}
	if e, ok := p.rob.Get(*tag); ok && e.Ready {
		*value = e.Result
		*tag = 0
	}
}

// executeCompute runs the countdown and completion for a non-memory
// reservation station (ALU ops, branches, and jumps).
func (p *Pipeline) executeCompute(rs *ReservationStation) {
	if rs.Remaining > 0 {
		rs.Remaining--
		return
	}
	result, taken, target := computeResult(rs, rs.PC)
	if rs.Op.IsBranch() {
		fallThrough := rs.PC + 4
		actualTarget := target
		if !taken {
			actualTarget = fallThrough
		}
		p.rob.SetBranchOutcome(rs.Dest, taken, actualTarget, fallThrough)
	}
	p.rob.Broadcast(rs.Dest, result)
	*rs = ReservationStation{}
}

// executeMemory runs the countdown and completion for a load or store.
// On the countdown's first tick it computes the effective address
// alongside that tick's decrement; there is no store-to-load forwarding
// here, loads rely on program-order store-commit for correctness. A
// load's L1D access is statistics-only and never extends the countdown;
// a store never touches the cache during Execute at all (the spec's
// memory-visibility model writes a store through to the cache only at
// Commit).
func (p *Pipeline) executeMemory(rs *ReservationStation) {
	if !rs.AddrComputed {
		rs.Addr = uint32(rs.Vj + rs.Imm)
		rs.AddrComputed = true
		if rs.Remaining > 0 {
			rs.Remaining--
			return
		}
	} else if rs.Remaining > 0 {
		rs.Remaining--
		return
	}

	entry, _ := p.lsq.Find(rs.Dest)

	var result int32
	if rs.Op == insts.OpLW {
		p.l1d.Access(rs.Addr, false)
		result = p.memory.Read(rs.Addr)
		if entry != nil {
			entry.Addr = rs.Addr
			entry.AddrResolved = true
		}
	} else {
		result = rs.Vk
		if entry != nil {
			entry.Addr = rs.Addr
			entry.AddrResolved = true
			entry.Value = result
			entry.ValueReady = true
		}
	}
	if entry != nil {
		entry.Completed = true
	}

	p.rob.Broadcast(rs.Dest, result)
	*rs = ReservationStation{}
}

// computeResult evaluates a non-memory instruction's result, and for
// branches and jumps, its actual taken/target outcome.
func computeResult(rs *ReservationStation, pc uint32) (result int32, taken bool, target uint32) {
	switch rs.Op {
	case insts.OpADD:
		return emu.Add(rs.Vj, rs.Vk), false, 0
	case insts.OpSUB:
		return emu.Sub(rs.Vj, rs.Vk), false, 0
	case insts.OpAND:
		return emu.And(rs.Vj, rs.Vk), false, 0
	case insts.OpOR:
		return emu.Or(rs.Vj, rs.Vk), false, 0
	case insts.OpXOR:
		return emu.Xor(rs.Vj, rs.Vk), false, 0
	case insts.OpSLT:
		return emu.Slt(rs.Vj, rs.Vk), false, 0
	case insts.OpADDI:
		return emu.Add(rs.Vj, rs.Imm), false, 0
	case insts.OpBEQ:
		taken = rs.Vj == rs.Vk
		return branchResult(taken), taken, pc + uint32(rs.Imm)
	case insts.OpBNE:
		taken = rs.Vj != rs.Vk
		return branchResult(taken), taken, pc + uint32(rs.Imm)
	case insts.OpJAL:
		return int32(pc + 4), true, pc + uint32(rs.Imm)
	case insts.OpJALR:
		// NOP-equivalent: the PC+4 result is never written to a register
		// (JALR does not write one), and fetch is never redirected.
		return int32(pc + 4), false, pc + 4
	default:
		return 0, false, 0
	}
}

// branchResult encodes a conditional branch's outcome as its result: 1 if
// the branch condition holds, 0 otherwise.
func branchResult(taken bool) int32 {
	if taken {
		return 1
	}
	return 0
}
