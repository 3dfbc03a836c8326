package pipeline

import "github.com/archlab/rvtom/insts"

// stepIssue fetches, renames, and dispatches up to cfg.IssueWidth
// instructions this cycle. It stops early on a ROB-full, reservation
// station pool full, LSQ-full, or fetch-miss condition.
func (p *Pipeline) stepIssue() {
	for i := 0; i < p.cfg.IssueWidth; i++ {
		if p.rob.Full() {
			return
		}

		inst, ok := p.store.Fetch(p.pc)
		if !ok {
			return
		}

		pool := p.poolFor(inst.Op)
		slot := pool.FreeSlot()
		if slot < 0 {
			return
		}

		if inst.Op.IsMemory() && p.lsq.Full() {
			return
		}

		// L1I access is metric-only: a miss never stalls fetch.
		p.l1i.Access(p.pc, false)

		tag := p.rob.AllocateTag()
		fallThrough := p.pc + 4

		entry := ROBEntry{Tag: tag, Op: inst.Op, Rd: inst.Rd, PC: p.pc, FallThrough: fallThrough}

		// JAL's target is a direct, PC-relative immediate: it carries no
		// misprediction risk, so it redirects fetch immediately rather
		// than going through the predictor/ROB speculation machinery
		// that BEQ/BNE use. JALR is treated as a NOP-equivalent for fetch
		// redirection: it occupies a pipeline slot like any instruction but
		// never redirects the fetch stream.
		nextPC := fallThrough
		switch inst.Op {
		case insts.OpJAL:
			nextPC = p.pc + uint32(inst.Imm)
		case insts.OpBEQ, insts.OpBNE:
			if p.predictor.Predict(p.pc) {
				entry.PredictedTaken = true
				nextPC = p.pc + uint32(inst.Imm)
			}
		}

		p.rob.Push(entry)

		rs := pool.At(slot)
		*rs = ReservationStation{
			Busy:  true,
			Op:    inst.Op,
			Dest:  tag,
			Imm:   inst.Imm,
			PC:    p.pc,
			Total: p.latencyFor(inst.Op),
		}
		rs.Remaining = rs.Total
		p.resolveOperand(rs, true, inst.Rs1)
		p.resolveOperand(rs, false, inst.Rs2)

		if inst.Op.WritesRegister() {
			p.rat.Rename(inst.Rd, tag)
		}

		if inst.Op.IsMemory() {
			p.lsq.Push(LSQEntry{Tag: tag, IsStore: inst.Op == insts.OpSW})
		}

		p.metrics.IssuedTotal++
		p.pc = nextPC
	}
}

// poolFor returns the reservation station pool serving op's functional
// unit class.
func (p *Pipeline) poolFor(op insts.Op) *RSPool {
	if stationPoolFor(op) == poolLoadStore {
		return p.lsRS
	}
	return p.aluRS
}

// latencyFor returns the configured execute latency for op.
func (p *Pipeline) latencyFor(op insts.Op) uint64 {
	switch {
	case op == insts.OpLW:
		return p.cfg.LoadLatency
	case op == insts.OpSW:
		return p.cfg.StoreLatency
	case op.IsBranch():
		return p.cfg.BranchLatency
	default:
		return p.cfg.ALULatency
	}
}

// resolveOperand fills rs's j (first) or k (second) operand slot from the
// RAT: either the committed register value, or the producing ROB tag
// (with same-cycle bypass if that producer already broadcast its
// result).
func (p *Pipeline) resolveOperand(rs *ReservationStation, first bool, reg uint8) {
	ratEntry := p.rat.Lookup(reg)

	var value int32
	var tag ROBTag

	if !ratEntry.Renamed {
		value = p.regFile.Read(reg)
	} else if producer, ok := p.rob.Get(ratEntry.Tag); ok && producer.Ready {
		value = producer.Result
	} else {
		tag = ratEntry.Tag
	}

	if first {
		rs.Vj, rs.Qj = value, tag
	} else {
		rs.Vk, rs.Qk = value, tag
	}
}
