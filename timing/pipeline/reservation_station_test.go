package pipeline

import (
	"testing"

	"github.com/archlab/rvtom/insts"
)

func TestRSPoolFreeSlotFindsFirstAvailable(t *testing.T) {
	pool := NewRSPool(2)
	if slot := pool.FreeSlot(); slot != 0 {
		t.Fatalf("FreeSlot() = %d, want 0 on an empty pool", slot)
	}
	pool.At(0).Busy = true
	if slot := pool.FreeSlot(); slot != 1 {
		t.Fatalf("FreeSlot() = %d, want 1 once slot 0 is busy", slot)
	}
}

func TestRSPoolFreeSlotReturnsMinusOneWhenFull(t *testing.T) {
	pool := NewRSPool(1)
	pool.At(0).Busy = true
	if slot := pool.FreeSlot(); slot != -1 {
		t.Fatalf("FreeSlot() = %d, want -1 when full", slot)
	}
}

func TestReservationStationReadyRequiresBothOperands(t *testing.T) {
	rs := &ReservationStation{Op: insts.OpADD, Qj: 1, Qk: 0}
	if rs.ready() {
		t.Fatal("station waiting on Qj should not be ready")
	}
	rs.Qj = 0
	if !rs.ready() {
		t.Fatal("station with both tags resolved should be ready")
	}
}

func TestRSPoolBusyCountCountsOccupiedStations(t *testing.T) {
	pool := NewRSPool(3)
	if n := pool.BusyCount(); n != 0 {
		t.Fatalf("BusyCount() = %d, want 0 on an empty pool", n)
	}
	pool.At(0).Busy = true
	pool.At(2).Busy = true
	if n := pool.BusyCount(); n != 2 {
		t.Fatalf("BusyCount() = %d, want 2", n)
	}
}

func TestRSPoolClearFreesAllStations(t *testing.T) {
	pool := NewRSPool(2)
	pool.At(0).Busy = true
	pool.At(1).Busy = true
	pool.Clear()
	if slot := pool.FreeSlot(); slot != 0 {
		t.Fatalf("FreeSlot() after Clear = %d, want 0", slot)
	}
}
