package program

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/archlab/rvtom/insts"
)

// encodedInstruction is the JSON shape of one decoded instruction, matching
// the decoded instruction format an external assembler is expected to emit:
// the CLI driver never parses assembly text, only this already-decoded
// representation.
type encodedInstruction struct {
	Op  string `json:"op"`
	Rd  uint8  `json:"rd"`
	Rs1 uint8  `json:"rs1"`
	Rs2 uint8  `json:"rs2"`
	Imm int32  `json:"imm"`
}

var mnemonicToOp = map[string]insts.Op{
	"NOP":  insts.OpNOP,
	"ADD":  insts.OpADD,
	"SUB":  insts.OpSUB,
	"AND":  insts.OpAND,
	"OR":   insts.OpOR,
	"XOR":  insts.OpXOR,
	"SLT":  insts.OpSLT,
	"ADDI": insts.OpADDI,
	"LW":   insts.OpLW,
	"SW":   insts.OpSW,
	"BEQ":  insts.OpBEQ,
	"BNE":  insts.OpBNE,
	"JAL":  insts.OpJAL,
	"JALR": insts.OpJALR,
}

// Load decodes a JSON array of encoded instructions from r and lays them out
// at consecutive addresses starting at base, returning the resulting Store.
func Load(r io.Reader, base uint32) (*Store, error) {
	var encoded []encodedInstruction
	if err := json.NewDecoder(r).Decode(&encoded); err != nil {
		return nil, fmt.Errorf("program: decode json: %w", err)
	}

	b := NewBuilder(base)
	for i, e := range encoded {
		op, ok := mnemonicToOp[e.Op]
		if !ok {
			return nil, fmt.Errorf("program: instruction %d: unknown opcode %q", i, e.Op)
		}
		b.Add(&insts.Instruction{
			Op:  op,
			Rd:  e.Rd,
			Rs1: e.Rs1,
			Rs2: e.Rs2,
			Imm: e.Imm,
		})
	}
	return b.Build(), nil
}
