// Package main provides the entry point for rvtom.
// rvtom is a cycle-accurate simulator of a two-wide, out-of-order,
// speculative RISC-V core using Tomasulo-style register renaming.
//
// For the full CLI, use: go run ./cmd/rvtom
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("rvtom - Tomasulo RISC-V pipeline simulator")
	fmt.Println("")
	fmt.Println("Usage: rvtom -program <path.json> [-config <timing.json>] [-cycles N] [-trace]")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rvtom' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rvtom' instead.")
	}
}
