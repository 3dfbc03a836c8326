package pipeline

// flush discards every in-flight instruction younger than the
// just-committed branch, restores the RAT to the architectural register
// file, and redirects fetch to correctPC. It runs
// after the mispredicted branch has already committed itself, so the
// entries it discards here are strictly its younger, speculative
// successors.
func (p *Pipeline) flush(correctPC uint32) {
	discarded := uint64(p.rob.Len())

	p.rob.Clear()
	p.lsq.Clear()
	p.aluRS.Clear()
	p.lsRS.Clear()
	p.rat.Flush()

	p.metrics.IssuedTotal -= discarded
	p.metrics.Flushes++
	p.pc = correctPC
}
