// Package emu provides the architectural state of the simulated core: the
// committed register file and main memory. Nothing in this package is
// speculative — it holds only values that have actually committed.
package emu

// NumRegisters is the number of architectural integer registers.
const NumRegisters = 32

// RegFile represents the RISC-V architectural register file.
// x0 is hardwired to zero: reads always return 0 and writes are discarded.
type RegFile struct {
	X [NumRegisters]int32
}

// Read reads a register's committed value. Register 0 always reads as 0.
func (r *RegFile) Read(reg uint8) int32 {
	if reg == 0 {
		return 0
	}
	return r.X[reg]
}

// Write writes a committed value to a register. Writes to register 0 are discarded.
func (r *RegFile) Write(reg uint8, value int32) {
	if reg == 0 {
		return
	}
	r.X[reg] = value
}

// Snapshot returns a copy of the register file contents.
func (r *RegFile) Snapshot() [NumRegisters]int32 {
	return r.X
}
