package pipeline

import "github.com/archlab/rvtom/insts"

// ReservationStation holds one in-flight operation waiting on its
// operands, and then waiting out its execution latency, Tomasulo-style.
type ReservationStation struct {
	Busy bool
	Op   insts.Op
	Dest ROBTag

	// Vj, Vk hold resolved operand values; Qj, Qk hold the producing ROB
	// tag when a value is not yet ready (the zero ROBTag, matching
	// ROBTag's "no tag" sentinel).
	Vj, Vk int32
	Qj, Qk ROBTag

	// Imm is the instruction's immediate, used directly by ops that need
	// it (ADDI, LW/SW offset, branch/jump offset).
	Imm int32

	// Remaining and Total track execution countdown: Remaining counts
	// down from Total to 0, at which point the result is broadcast.
	Remaining uint64
	Total     uint64

	// Addr and AddrComputed cache a load/store's effective address, so it
	// is computed once (on the countdown's first tick, alongside that
	// tick's decrement) rather than every cycle.
	Addr         uint32
	AddrComputed bool

	// PC is the originating instruction's address, needed by branches to
	// compute fall-through/target addresses.
	PC uint32
}

// ready reports whether both operands are resolved.
func (rs *ReservationStation) ready() bool {
	return rs.Qj == 0 && rs.Qk == 0
}

// RSPool is a fixed-size pool of reservation stations serving one
// functional unit class (ALU, including branches and jumps, or
// load/store).
type RSPool struct {
	stations []ReservationStation
}

// NewRSPool creates a pool with the given number of stations.
func NewRSPool(size int) *RSPool {
	return &RSPool{stations: make([]ReservationStation, size)}
}

// Len returns the pool's capacity.
func (p *RSPool) Len() int {
	return len(p.stations)
}

// FreeSlot returns the index of a free station, or -1 if the pool is
// full.
func (p *RSPool) FreeSlot() int {
	for i := range p.stations {
		if !p.stations[i].Busy {
			return i
		}
	}
	return -1
}

// At returns a pointer to the station at index i, for direct mutation by
// Issue and Execute.
func (p *RSPool) At(i int) *ReservationStation {
	return &p.stations[i]
}

// All returns the pool's stations for iteration.
func (p *RSPool) All() []ReservationStation {
	return p.stations
}

// BusyCount returns the number of occupied stations, for occupancy
// reporting.
func (p *RSPool) BusyCount() int {
	n := 0
	for i := range p.stations {
		if p.stations[i].Busy {
			n++
		}
	}
	return n
}

// Clear marks every station free, as on a pipeline flush.
func (p *RSPool) Clear() {
	for i := range p.stations {
		p.stations[i] = ReservationStation{}
	}
}
