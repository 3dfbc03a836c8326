// Package predictor provides the gshare branch predictor used by the
// pipeline's Issue stage.
package predictor

// GHRBits is the width of the global history register.
const GHRBits = 10

// tableSize is the number of 2-bit saturating counters (2^GHRBits).
const tableSize = 1 << GHRBits

// historyMask keeps the global history register within GHRBits bits.
const historyMask = tableSize - 1

// Saturating counter states.
const (
	stronglyNotTaken uint8 = 0
	weaklyNotTaken   uint8 = 1
	weaklyTaken      uint8 = 2
	stronglyTaken    uint8 = 3
)

// Stats holds cumulative predictor counters.
type Stats struct {
	Predictions uint64
	Correct     uint64
	Mispredicts uint64
}

// Accuracy returns the prediction accuracy as a percentage, 0 when no
// prediction has been made yet.
func (s Stats) Accuracy() float64 {
	if s.Predictions == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Predictions) * 100
}

// Gshare is a gshare branch predictor: a table of 2-bit saturating counters
// indexed by the XOR of the branch PC and a global history register.
type Gshare struct {
	ghr   uint32
	table [tableSize]uint8
	stats Stats
}

// New creates a gshare predictor with every counter initialised to weakly
// not-taken.
func New() *Gshare {
	g := &Gshare{}
	for i := range g.table {
		g.table[i] = weaklyNotTaken
	}
	return g
}

// index computes the PHT index for pc under the current global history.
func (g *Gshare) index(pc uint32) uint32 {
	return (pc ^ g.ghr) & historyMask
}

// Predict returns true iff the indexed counter is weakly-taken or stronger.
func (g *Gshare) Predict(pc uint32) bool {
	g.stats.Predictions++
	return g.table[g.index(pc)] >= weaklyTaken
}

// Update saturatingly adjusts the indexed counter toward the actual outcome
// and shifts that outcome into the global history register from the LSB.
func (g *Gshare) Update(pc uint32, taken bool) {
	idx := g.index(pc)
	predictedTaken := g.table[idx] >= weaklyTaken
	if predictedTaken == taken {
		g.stats.Correct++
	} else {
		g.stats.Mispredicts++
	}

	if taken {
		if g.table[idx] < stronglyTaken {
			g.table[idx]++
		}
	} else {
		if g.table[idx] > stronglyNotTaken {
			g.table[idx]--
		}
	}

	g.ghr = (g.ghr << 1) & historyMask
	if taken {
		g.ghr |= 1
	}
}

// Stats returns the predictor's cumulative counters.
func (g *Gshare) Stats() Stats {
	return g.stats
}
