// Package pipeline implements the two-wide, out-of-order, speculative
// Tomasulo pipeline: register renaming through a RAT, dynamic scheduling
// through per-functional-unit reservation stations, in-order completion
// through a reorder buffer, and program-order memory access through a
// load/store queue.
package pipeline

import (
	"fmt"

	"github.com/archlab/rvtom/emu"
	"github.com/archlab/rvtom/insts"
	"github.com/archlab/rvtom/program"
	"github.com/archlab/rvtom/timing/cache"
	"github.com/archlab/rvtom/timing/latency"
	"github.com/archlab/rvtom/timing/predictor"
)

// Pipeline is the cycle-accurate Tomasulo machine.
type Pipeline struct {
	cfg latency.TimingConfig

	regFile *emu.RegFile
	memory  *emu.Memory
	store   *program.Store

	rat       *RAT
	rob       *ROB
	aluRS     *RSPool
	lsRS      *RSPool
	lsq       *LSQ
	l1i, l1d  *cache.Cache
	predictor *predictor.Gshare

	pc      uint32
	halted  bool
	metrics Metrics

	trace   bool
	logger  func(string)
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithTrace enables per-cycle logging through logger, matching the teacher's
// functional-option style for optional instrumentation.
func WithTrace(logger func(string)) Option {
	return func(p *Pipeline) {
		p.trace = true
		p.logger = logger
	}
}

// WithMemoryWords overrides the backing memory size.
func WithMemoryWords(words int) Option {
	return func(p *Pipeline) {
		p.memory = emu.NewMemoryWithWords(words)
	}
}

// NewPipeline creates a Pipeline over store, configured by cfg.
func NewPipeline(store *program.Store, cfg latency.TimingConfig, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:       cfg,
		regFile:   &emu.RegFile{},
		memory:    emu.NewMemoryWithWords(cfg.MemoryWords),
		store:     store,
		rat:       NewRAT(),
		rob:       NewROB(cfg.ROBCapacity),
		aluRS:     NewRSPool(cfg.ALUStations),
		lsRS:      NewRSPool(cfg.LoadStoreStations),
		lsq:       NewLSQ(cfg.LSQCapacity),
		l1i:       cache.New(cache.Config{Sets: cfg.CacheSets, Associativity: cfg.CacheAssociativity, BlockSize: cfg.CacheBlockSize, HitLatency: cfg.L1IHitLatency, MissPenalty: cfg.CacheMissPenalty}),
		l1d:       cache.New(cache.Config{Sets: cfg.CacheSets, Associativity: cfg.CacheAssociativity, BlockSize: cfg.CacheBlockSize, HitLatency: cfg.L1DHitLatency, MissPenalty: cfg.CacheMissPenalty}),
		predictor: predictor.New(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// SetPC sets the program counter the next Fetch will read from.
func (p *Pipeline) SetPC(pc uint32) {
	p.pc = pc
}

// PC returns the current fetch program counter.
func (p *Pipeline) PC() uint32 {
	return p.pc
}

// Halted reports whether the pipeline has no remaining work: nothing
// fetchable at the current PC, and every in-flight structure drained.
func (p *Pipeline) Halted() bool {
	if p.halted {
		return true
	}
	if _, ok := p.store.Fetch(p.pc); ok {
		return false
	}
	return p.rob.Empty() && p.lsq.Len() == 0
}

// RegisterFile exposes the architectural register file for inspection.
func (p *Pipeline) RegisterFile() *emu.RegFile {
	return p.regFile
}

// Memory exposes the backing memory for inspection.
func (p *Pipeline) Memory() *emu.Memory {
	return p.memory
}

// Snapshot is a point-in-time view of every structural piece of pipeline
// state, for a driver that wants to render ROB/RAT/RS/LSQ contents rather
// than just aggregate counters.
type Snapshot struct {
	ROB               []ROBEntry
	RegisterFile      [emu.NumRegisters]int32
	RAT               [emu.NumRegisters]RATEntry
	ALUStations       []ReservationStation
	LoadStoreStations []ReservationStation
	LSQ               []LSQEntry
}

// Snapshot captures the current contents of the ROB, register file, RAT,
// both reservation-station pools, and the LSQ.
func (p *Pipeline) Snapshot() Snapshot {
	return Snapshot{
		ROB:               p.rob.Snapshot(),
		RegisterFile:      p.regFile.Snapshot(),
		RAT:               p.rat.Snapshot(),
		ALUStations:       p.aluRS.All(),
		LoadStoreStations: p.lsRS.All(),
		LSQ:               p.lsq.Snapshot(),
	}
}

// Stats reports cumulative pipeline performance counters.
type Stats struct {
	Cycles            uint64
	Committed         uint64
	IssuedTotal       uint64
	Flushes           uint64
	IPC               float64
	MeanROBOccupancy  float64
	MaxROBOccupancy   int
	MeanLSQOccupancy  float64
	MaxLSQOccupancy   int
	MeanRSOccupancy   float64
	MaxRSOccupancy    int
	PredictorAccuracy float64
	L1IStats          cache.Statistics
	L1DStats          cache.Statistics
}

// Stats returns a snapshot of the pipeline's cumulative counters.
func (p *Pipeline) Stats() Stats {
	predStats := p.predictor.Stats()
	return Stats{
		Cycles:            p.metrics.Cycles,
		Committed:         p.metrics.Committed,
		IssuedTotal:       p.metrics.IssuedTotal,
		Flushes:           p.metrics.Flushes,
		IPC:               p.metrics.IPC(),
		MeanROBOccupancy:  p.metrics.MeanROBOccupancy(),
		MaxROBOccupancy:   p.metrics.MaxROBOccupancy(),
		MeanLSQOccupancy:  p.metrics.MeanLSQOccupancy(),
		MaxLSQOccupancy:   p.metrics.MaxLSQOccupancy(),
		MeanRSOccupancy:   p.metrics.MeanRSOccupancy(),
		MaxRSOccupancy:    p.metrics.MaxRSOccupancy(),
		PredictorAccuracy: predStats.Accuracy(),
		L1IStats:          p.l1i.Stats(),
		L1DStats:          p.l1d.Stats(),
	}
}

// busyRSCount returns the total number of occupied reservation stations
// across both pools, for occupancy reporting.
func (p *Pipeline) busyRSCount() int {
	return p.aluRS.BusyCount() + p.lsRS.BusyCount()
}

// Step advances the pipeline by exactly one cycle: Commit, then Execute,
// then Issue/Fetch, in that order so an instruction that completes
// execution this cycle is visible to Commit only on the NEXT cycle, and a
// value broadcast during Execute is visible to a dependent reservation
// station issued earlier in the same pass.
func (p *Pipeline) Step() {
	if p.halted {
		return
	}

	flushed := p.stepCommit()
	if !flushed {
		p.stepExecute()
		p.stepIssue()
	}

	p.metrics.recordCycle(p.rob.Len(), p.lsq.Len(), p.busyRSCount())
	p.log(fmt.Sprintf("cycle %d: pc=0x%08x rob=%d lsq=%d", p.metrics.Cycles, p.pc, p.rob.Len(), p.lsq.Len()))
}

// Run steps the pipeline until Halted, up to maxCycles cycles (a 0 or
// negative maxCycles means unbounded).
func (p *Pipeline) Run(maxCycles int) {
	for i := 0; !p.Halted(); i++ {
		if maxCycles > 0 && i >= maxCycles {
			return
		}
		p.Step()
	}
}

func (p *Pipeline) log(msg string) {
	if p.trace && p.logger != nil {
		p.logger(msg)
	}
}

// stationPoolFor reports the class of reservation station pool an op
// dispatches to: LW/SW go to the load/store pool, everything else
// (including branches and jumps) goes to the ALU pool.
func stationPoolFor(op insts.Op) int {
	if op.IsMemory() {
		return poolLoadStore
	}
	return poolALU
}

const (
	poolALU = iota
	poolLoadStore
)
