package pipeline

import "github.com/archlab/rvtom/insts"

// stepCommit retires the ROB head if it is ready, in program order.
// Memory operations gate on the LSQ head before
// writing the register file, so a stalled cycle leaves both the ROB head
// and the register file untouched. Returns true if a branch misprediction
// was discovered and the pipeline was flushed this cycle, in which case
// Execute and Issue must not run for this cycle.
func (p *Pipeline) stepCommit() bool {
	entry, ok := p.rob.PeekHead()
	if !ok || !entry.Ready {
		return false
	}

	if entry.Op.IsMemory() {
		lsqHead, ok := p.lsq.PeekHead()
		if !ok || lsqHead.Tag != entry.Tag || !lsqHead.Completed {
			return false
		}
		if entry.Op == insts.OpSW {
			p.l1d.Access(lsqHead.Addr, true)
			p.memory.Write(lsqHead.Addr, lsqHead.Value)
		}
		p.lsq.PopHead()
	}

	if entry.Op.WritesRegister() {
		p.regFile.Write(entry.Rd, entry.Result)
		p.rat.Commit(entry.Rd, entry.Tag)
	}

	mispredicted := false
	if entry.Op.IsBranch() {
		p.predictor.Update(entry.PC, entry.ActualTaken)
		mispredicted = entry.PredictedTaken != entry.ActualTaken
	}

	tag := entry.Tag
	correctPC := entry.TargetAddr
	p.rob.PopHead()
	p.metrics.Committed++

	if mispredicted {
		p.flush(correctPC)
		return true
	}

	_ = tag
	return false
}
