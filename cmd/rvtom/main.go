// Package main provides the rvtom command-line simulator driver.
//
// rvtom loads a JSON-encoded instruction program and steps a two-wide,
// out-of-order Tomasulo pipeline over it, reporting cycle-accurate
// performance statistics.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/archlab/rvtom/program"
	"github.com/archlab/rvtom/timing/latency"
	"github.com/archlab/rvtom/timing/pipeline"
)

var (
	programPath = flag.String("program", "", "path to a JSON-encoded instruction program (required)")
	configPath  = flag.String("config", "", "path to a timing configuration JSON file (optional)")
	cycles      = flag.Int("cycles", 0, "maximum cycles to run (0 = unbounded, run to halt)")
	trace       = flag.Bool("trace", false, "log a line per cycle to stderr")
)

func main() {
	flag.Parse()

	if *programPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: rvtom -program <path.json> [-config <timing.json>] [-cycles N] [-trace]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := latency.DefaultTimingConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rvtom: open config: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		cfg, err = latency.Load(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rvtom: %v\n", err)
			os.Exit(1)
		}
	}

	progFile, err := os.Open(*programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rvtom: open program: %v\n", err)
		os.Exit(1)
	}
	defer progFile.Close()

	store, err := program.Load(progFile, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rvtom: %v\n", err)
		os.Exit(1)
	}

	var opts []pipeline.Option
	if *trace {
		opts = append(opts, pipeline.WithTrace(func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		}))
	}

	pipe := pipeline.NewPipeline(store, cfg, opts...)
	pipe.Run(*cycles)

	stats := pipe.Stats()
	fmt.Printf("cycles:              %d\n", stats.Cycles)
	fmt.Printf("committed:           %d\n", stats.Committed)
	fmt.Printf("IPC:                 %.3f\n", stats.IPC)
	fmt.Printf("flushes:             %d\n", stats.Flushes)
	fmt.Printf("predictor accuracy:  %.2f%%\n", stats.PredictorAccuracy)
	fmt.Printf("mean ROB occupancy:  %.2f (max %d)\n", stats.MeanROBOccupancy, stats.MaxROBOccupancy)
	fmt.Printf("mean LSQ occupancy:  %.2f (max %d)\n", stats.MeanLSQOccupancy, stats.MaxLSQOccupancy)
	fmt.Printf("mean RS occupancy:   %.2f (max %d)\n", stats.MeanRSOccupancy, stats.MaxRSOccupancy)
	fmt.Printf("L1I: %d accesses, %d hits, %d misses\n", stats.L1IStats.Accesses, stats.L1IStats.Hits, stats.L1IStats.Misses)
	fmt.Printf("L1D: %d accesses, %d hits, %d misses\n", stats.L1DStats.Accesses, stats.L1DStats.Hits, stats.L1DStats.Misses)

	if !pipe.Halted() && *cycles > 0 {
		fmt.Printf("\n(stopped at cycle limit %d; program did not halt)\n", *cycles)
	}
}
