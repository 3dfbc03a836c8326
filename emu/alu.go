package emu

// ALU implements the arithmetic and logic operations of the supported
// opcodes. Unlike a functional emulator's ALU, this one is stateless and
// works directly on captured operand values: in the Tomasulo machine, an
// operand may have been forwarded from a not-yet-committed producer, so the
// arithmetic cannot simply read the register file.

// Add computes a + b with 32-bit two's-complement wraparound.
func Add(a, b int32) int32 {
	return a + b
}

// Sub computes a - b with 32-bit two's-complement wraparound.
func Sub(a, b int32) int32 {
	return a - b
}

// And computes a & b.
func And(a, b int32) int32 {
	return a & b
}

// Or computes a | b.
func Or(a, b int32) int32 {
	return a | b
}

// Xor computes a ^ b.
func Xor(a, b int32) int32 {
	return a ^ b
}

// Slt computes the signed "set less than": 1 if a < b, else 0.
func Slt(a, b int32) int32 {
	if a < b {
		return 1
	}
	return 0
}
