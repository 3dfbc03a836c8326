package pipeline

import "testing"

func TestRATStartsArchitectural(t *testing.T) {
	rat := NewRAT()
	if e := rat.Lookup(5); e.Renamed {
		t.Fatalf("fresh RAT entry should not be renamed, got %+v", e)
	}
}

func TestRATRenameThenLookup(t *testing.T) {
	rat := NewRAT()
	rat.Rename(5, ROBTag(7))

	e := rat.Lookup(5)
	if !e.Renamed || e.Tag != 7 {
		t.Fatalf("Lookup(5) = %+v, want renamed to tag 7", e)
	}
}

func TestRATRegisterZeroNeverRenamed(t *testing.T) {
	rat := NewRAT()
	rat.Rename(0, ROBTag(3))

	if e := rat.Lookup(0); e.Renamed {
		t.Fatalf("x0 must never be renamed, got %+v", e)
	}
}

func TestRATCommitClearsMatchingRename(t *testing.T) {
	rat := NewRAT()
	rat.Rename(5, ROBTag(7))
	rat.Commit(5, ROBTag(7))

	if e := rat.Lookup(5); e.Renamed {
		t.Fatalf("Commit of the current tag should restore architectural mapping, got %+v", e)
	}
}

func TestRATCommitIgnoresStaleTag(t *testing.T) {
	rat := NewRAT()
	rat.Rename(5, ROBTag(7))
	rat.Rename(5, ROBTag(9)) // a younger instruction renames the same register

	rat.Commit(5, ROBTag(7)) // the older instruction's commit must not win

	e := rat.Lookup(5)
	if !e.Renamed || e.Tag != 9 {
		t.Fatalf("Lookup(5) = %+v, want still renamed to the younger tag 9", e)
	}
}

func TestRATSnapshotReflectsCurrentRenames(t *testing.T) {
	rat := NewRAT()
	rat.Rename(5, ROBTag(7))

	snap := rat.Snapshot()
	if !snap[5].Renamed || snap[5].Tag != 7 {
		t.Fatalf("Snapshot()[5] = %+v, want renamed to tag 7", snap[5])
	}
	if snap[1].Renamed {
		t.Fatalf("Snapshot()[1] = %+v, want architectural", snap[1])
	}
}

func TestRATFlushRestoresArchitecturalForAll(t *testing.T) {
	rat := NewRAT()
	rat.Rename(1, ROBTag(2))
	rat.Rename(3, ROBTag(4))
	rat.Flush()

	if e := rat.Lookup(1); e.Renamed {
		t.Fatalf("Lookup(1) after Flush = %+v, want architectural", e)
	}
	if e := rat.Lookup(3); e.Renamed {
		t.Fatalf("Lookup(3) after Flush = %+v, want architectural", e)
	}
}
