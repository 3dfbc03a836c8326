package pipeline

// LSQEntry tracks one in-flight load or store's memory-ordering state.
// The LSQ preserves program order for memory operations independently of
// the out-of-order reservation stations that compute their addresses and
// values.
type LSQEntry struct {
	Tag          ROBTag
	IsStore      bool
	AddrResolved bool
	Addr         uint32
	ValueReady   bool
	Value        int32
	Completed    bool
}

// LSQ is a fixed-capacity, in-order ring buffer of LSQEntry.
type LSQ struct {
	entries  []LSQEntry
	occupied []bool
	head     int
	count    int
}

// NewLSQ creates an empty LSQ with the given capacity.
func NewLSQ(capacity int) *LSQ {
	return &LSQ{
		entries:  make([]LSQEntry, capacity),
		occupied: make([]bool, capacity),
	}
}

// Full reports whether the LSQ has no free slot.
func (q *LSQ) Full() bool {
	return q.count == len(q.entries)
}

// Len returns the number of live entries.
func (q *LSQ) Len() int {
	return q.count
}

// Push inserts a new entry at the tail in program order.
func (q *LSQ) Push(entry LSQEntry) {
	tail := (q.head + q.count) % len(q.entries)
	q.entries[tail] = entry
	q.occupied[tail] = true
	q.count++
}

// PeekHead returns the oldest live entry, if any.
func (q *LSQ) PeekHead() (*LSQEntry, bool) {
	if q.count == 0 {
		return nil, false
	}
	return &q.entries[q.head], true
}

// PopHead removes the oldest live entry, once its memory op has
// committed.
func (q *LSQ) PopHead() {
	if q.count == 0 {
		return
	}
	q.occupied[q.head] = false
	q.head = (q.head + 1) % len(q.entries)
	q.count--
}

// Find locates the live entry for tag, for the Execute stage to fill in
// its resolved address/value.
func (q *LSQ) Find(tag ROBTag) (*LSQEntry, bool) {
	for i := 0; i < q.count; i++ {
		idx := (q.head + i) % len(q.entries)
		if q.occupied[idx] && q.entries[idx].Tag == tag {
			return &q.entries[idx], true
		}
	}
	return nil, false
}

// Snapshot returns live entries in program order, for reporting.
func (q *LSQ) Snapshot() []LSQEntry {
	out := make([]LSQEntry, 0, q.count)
	for i := 0; i < q.count; i++ {
		out = append(out, q.entries[(q.head+i)%len(q.entries)])
	}
	return out
}

// Clear discards every live entry, as on a flush.
func (q *LSQ) Clear() {
	for i := range q.occupied {
		q.occupied[i] = false
	}
	q.head = 0
	q.count = 0
}
