// Package program provides the addressable instruction store the pipeline
// fetches from, and a builder for placing decoded instructions at
// consecutive program-counter values.
//
// Binary ELF loading is explicitly out of scope
// and assembly-text parsing is an external collaborator this simulator does
// not implement; this package instead works directly in
// terms of the decoded instruction format insts.Instruction already
// describes, the same way the predecessor's loader package handed the
// pipeline a fully-formed representation of the program to run.
package program

import "github.com/archlab/rvtom/insts"

// InstructionSize is the byte size of one instruction slot; PCs advance by
// this amount unless a taken branch or jump redirects them.
const InstructionSize = 4

// Store is an addressable map from program counter to decoded instruction.
type Store struct {
	instructions map[uint32]*insts.Instruction
}

// NewStore creates an empty program store.
func NewStore() *Store {
	return &Store{instructions: make(map[uint32]*insts.Instruction)}
}

// Fetch returns the instruction at pc, and false if none is mapped there.
func (s *Store) Fetch(pc uint32) (*insts.Instruction, bool) {
	inst, ok := s.instructions[pc]
	return inst, ok
}

// Set maps an instruction at the given pc, overwriting any existing mapping.
func (s *Store) Set(pc uint32, inst *insts.Instruction) {
	inst.PC = pc
	s.instructions[pc] = inst
}

// Len returns the number of mapped instructions.
func (s *Store) Len() int {
	return len(s.instructions)
}

// Builder appends instructions at consecutive program counters starting
// from a base address, mirroring how an assembler would lay out a
// straight-line listing. This is how every scenario program in this
// repository's tests is constructed.
type Builder struct {
	store *Store
	next  uint32
}

// NewBuilder creates a Builder that will place its first instruction at base.
func NewBuilder(base uint32) *Builder {
	return &Builder{store: NewStore(), next: base}
}

// Add appends inst at the builder's current PC and advances by InstructionSize.
// Returns the PC the instruction was placed at, for building branch offsets.
func (b *Builder) Add(inst *insts.Instruction) uint32 {
	pc := b.next
	b.store.Set(pc, inst)
	b.next += InstructionSize
	return pc
}

// PC returns the PC the next Add call will use.
func (b *Builder) PC() uint32 {
	return b.next
}

// Build returns the assembled program store.
func (b *Builder) Build() *Store {
	return b.store
}
