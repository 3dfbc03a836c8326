package pipeline

import "github.com/archlab/rvtom/insts"

// ROBTag identifies a reorder buffer entry. Tags are monotonically
// increasing and never reused, so a stale tag observed after a flush can
// never alias a live entry. The zero value means "no tag" (an operand is
// already resolved to a value, not waiting on a producer) and is never
// allocated to a real entry.
type ROBTag uint64

// ROBEntry is one in-flight instruction's speculative state.
type ROBEntry struct {
	Tag            ROBTag
	Op             insts.Op
	Rd             uint8
	PC             uint32
	Ready          bool
	Result         int32
	PredictedTaken bool   // branches only
	ActualTaken    bool   // branches only; set at Execute
	TargetAddr     uint32 // branches only; set at Execute from the actual outcome
	FallThrough    uint32 // branches only; PC+4, the not-taken target
}

// ROB is the reorder buffer: a fixed-capacity, in-order ring buffer of
// ROBEntry, indexed additionally by tag for O(1) resolution from a
// reservation station or the RAT without comparing array
// positions, which shift on every commit.
type ROB struct {
	entries  []ROBEntry
	occupied []bool
	head     int
	count    int
	nextTag  ROBTag
	byTag    map[ROBTag]int
}

// NewROB creates an empty ROB with the given capacity.
func NewROB(capacity int) *ROB {
	return &ROB{
		entries:  make([]ROBEntry, capacity),
		occupied: make([]bool, capacity),
		nextTag:  1,
		byTag:    make(map[ROBTag]int, capacity),
	}
}

// Capacity returns the ROB's maximum number of in-flight entries.
func (r *ROB) Capacity() int {
	return len(r.entries)
}

// Len returns the number of live entries.
func (r *ROB) Len() int {
	return r.count
}

// Full reports whether the ROB has no free slot.
func (r *ROB) Full() bool {
	return r.count == len(r.entries)
}

// Empty reports whether the ROB has no live entries.
func (r *ROB) Empty() bool {
	return r.count == 0
}

// AllocateTag reserves the next monotonic tag without inserting an entry.
func (r *ROB) AllocateTag() ROBTag {
	t := r.nextTag
	r.nextTag++
	return t
}

// Push inserts entry at the tail. The caller must have allocated entry.Tag
// via AllocateTag and must not call Push when Full.
func (r *ROB) Push(entry ROBEntry) {
	tail := (r.head + r.count) % len(r.entries)
	r.entries[tail] = entry
	r.occupied[tail] = true
	r.byTag[entry.Tag] = tail
	r.count++
}

// PeekHead returns the oldest live entry, if any.
func (r *ROB) PeekHead() (*ROBEntry, bool) {
	if r.count == 0 {
		return nil, false
	}
	return &r.entries[r.head], true
}

// PopHead removes the oldest live entry in program order.
func (r *ROB) PopHead() {
	if r.count == 0 {
		return
	}
	delete(r.byTag, r.entries[r.head].Tag)
	r.occupied[r.head] = false
	r.head = (r.head + 1) % len(r.entries)
	r.count--
}

// Get resolves tag to its live entry, for wake-up and RAT lookups.
func (r *ROB) Get(tag ROBTag) (*ROBEntry, bool) {
	idx, ok := r.byTag[tag]
	if !ok {
		return nil, false
	}
	return &r.entries[idx], true
}

// Broadcast writes a computed result onto tag's entry and marks it ready.
// This is the abstracted CDB: any RS wake-up later in
// this same cycle, or in a later cycle, observes the update through Get.
func (r *ROB) Broadcast(tag ROBTag, result int32) {
	if idx, ok := r.byTag[tag]; ok {
		r.entries[idx].Result = result
		r.entries[idx].Ready = true
	}
}

// SetBranchOutcome records the actual branch outcome computed at Execute:
// whether it was taken, its target, and its fall-through address.
func (r *ROB) SetBranchOutcome(tag ROBTag, taken bool, target, fallThrough uint32) {
	if idx, ok := r.byTag[tag]; ok {
		r.entries[idx].ActualTaken = taken
		r.entries[idx].TargetAddr = target
		r.entries[idx].FallThrough = fallThrough
	}
}

// Snapshot returns live entries in program order (oldest first), for
// reporting and test assertions.
func (r *ROB) Snapshot() []ROBEntry {
	out := make([]ROBEntry, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, r.entries[(r.head+i)%len(r.entries)])
	}
	return out
}

// Clear discards every live entry, as on a flush. The
// tag counter is never reset: tags must stay unique across the whole run,
// including across a flush.
func (r *ROB) Clear() {
	for i := range r.occupied {
		r.occupied[i] = false
	}
	r.byTag = make(map[ROBTag]int, len(r.entries))
	r.head = 0
	r.count = 0
}
