package pipeline

import "github.com/archlab/rvtom/emu"

// RATEntry is one architectural register's renaming state: either the
// register file holds its committed value, or a live ROB tag will produce
// it.
type RATEntry struct {
	Renamed bool
	Tag     ROBTag
}

func architecturalEntry() RATEntry {
	return RATEntry{Renamed: false}
}

func renamedEntry(tag ROBTag) RATEntry {
	return RATEntry{Renamed: true, Tag: tag}
}

// RAT is the register alias table: one entry per architectural register,
// mapping it either to the architectural register file or to the ROB tag
// that will produce its next value.
type RAT struct {
	entries [emu.NumRegisters]RATEntry
}

// NewRAT creates a RAT with every register mapped to the architectural
// file.
func NewRAT() *RAT {
	return &RAT{}
}

// Lookup returns reg's current renaming state.
func (t *RAT) Lookup(reg uint8) RATEntry {
	return t.entries[reg]
}

// Rename points reg at tag, the ROB entry that will produce its next
// value. x0 is never renamed: it is hardwired to zero.
func (t *RAT) Rename(reg uint8, tag ROBTag) {
	if reg == 0 {
		return
	}
	t.entries[reg] = renamedEntry(tag)
}

// Commit clears reg's renaming if it still points at tag, restoring the
// architectural mapping. If a younger instruction has since renamed reg
// again, the RAT is left untouched — the younger mapping must win.
func (t *RAT) Commit(reg uint8, tag ROBTag) {
	if reg == 0 {
		return
	}
	if e := t.entries[reg]; e.Renamed && e.Tag == tag {
		t.entries[reg] = architecturalEntry()
	}
}

// Flush clears every renaming, restoring every register to the
// architectural file.
func (t *RAT) Flush() {
	for i := range t.entries {
		t.entries[i] = architecturalEntry()
	}
}

// Snapshot returns a copy of every architectural register's renaming
// state, for reporting.
func (t *RAT) Snapshot() [emu.NumRegisters]RATEntry {
	return t.entries
}
