// Package core provides the cycle-accurate CPU core model. It wraps the
// Tomasulo pipeline implementation to provide a high-level simulation
// interface, the way the teacher's core package wraps its pipeline.
package core

import (
	"github.com/archlab/rvtom/program"
	"github.com/archlab/rvtom/timing/latency"
	"github.com/archlab/rvtom/timing/pipeline"
)

// Stats holds performance statistics for the core.
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
	PredictorAccuracy float64
}

// Core represents a cycle-accurate, out-of-order CPU core model. It wraps
// a Tomasulo pipeline and provides a simple interface for simulation.
type Core struct {
	Pipeline *pipeline.Pipeline
}

// NewCore creates a Core over store, configured by cfg.
func NewCore(store *program.Store, cfg latency.TimingConfig, opts ...pipeline.Option) *Core {
	return &Core{
		Pipeline: pipeline.NewPipeline(store, cfg, opts...),
	}
}

// SetPC sets the program counter.
func (c *Core) SetPC(pc uint32) {
	c.Pipeline.SetPC(pc)
}

// Tick executes one pipeline cycle.
func (c *Core) Tick() {
	c.Pipeline.Step()
}

// Halted returns true if the core has no remaining work.
func (c *Core) Halted() bool {
	return c.Pipeline.Halted()
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	p := c.Pipeline.Stats()
	return Stats{
		Cycles:            p.Cycles,
		Committed:         p.Committed,
		IssuedTotal:       p.IssuedTotal,
		Flushes:           p.Flushes,
		IPC:               p.IPC,
		MeanROBOccupancy:  p.MeanROBOccupancy,
		MaxROBOccupancy:   p.MaxROBOccupancy,
		MeanLSQOccupancy:  p.MeanLSQOccupancy,
		MaxLSQOccupancy:   p.MaxLSQOccupancy,
		PredictorAccuracy: p.PredictorAccuracy,
	}
}

// Run executes the core until it halts, up to maxCycles cycles (0 means
// unbounded).
func (c *Core) Run(maxCycles int) {
	c.Pipeline.Run(maxCycles)
}

// RunCycles executes the core for exactly the given number of cycles, or
// until it halts, whichever comes first. Returns true if still running.
func (c *Core) RunCycles(cycles int) bool {
	for i := 0; i < cycles && !c.Pipeline.Halted(); i++ {
		c.Pipeline.Step()
	}
	return !c.Pipeline.Halted()
}
