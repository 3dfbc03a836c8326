package insts_test

import (
	"testing"

	"github.com/archlab/rvtom/insts"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		op   insts.Op
		want string
	}{
		{insts.OpNOP, "NOP"},
		{insts.OpADD, "ADD"},
		{insts.OpADDI, "ADDI"},
		{insts.OpLW, "LW"},
		{insts.OpSW, "SW"},
		{insts.OpBEQ, "BEQ"},
		{insts.OpBNE, "BNE"},
		{insts.OpJAL, "JAL"},
		{insts.OpJALR, "JALR"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestOpClassification(t *testing.T) {
	if !insts.OpBEQ.IsBranch() || !insts.OpBNE.IsBranch() {
		t.Error("BEQ/BNE should be classified as branches")
	}
	if insts.OpADD.IsBranch() {
		t.Error("ADD should not be classified as a branch")
	}

	if !insts.OpLW.IsMemory() || !insts.OpSW.IsMemory() {
		t.Error("LW/SW should be classified as memory ops")
	}
	if insts.OpADDI.IsMemory() {
		t.Error("ADDI should not be classified as a memory op")
	}

	if !insts.OpADD.WritesRegister() || !insts.OpLW.WritesRegister() {
		t.Error("ADD/LW should write a register")
	}
	if insts.OpSW.WritesRegister() || insts.OpBEQ.WritesRegister() {
		t.Error("SW/BEQ should not write a register")
	}
}

func TestConstructors(t *testing.T) {
	add := insts.ADD(3, 1, 2)
	if add.Op != insts.OpADD || add.Rd != 3 || add.Rs1 != 1 || add.Rs2 != 2 {
		t.Errorf("ADD constructor produced %+v", add)
	}

	addi := insts.ADDI(1, 0, 5)
	if addi.Op != insts.OpADDI || addi.Rd != 1 || addi.Rs1 != 0 || addi.Imm != 5 {
		t.Errorf("ADDI constructor produced %+v", addi)
	}

	lw := insts.LW(2, 0, 0)
	if lw.Op != insts.OpLW || lw.Rd != 2 || lw.Rs1 != 0 {
		t.Errorf("LW constructor produced %+v", lw)
	}

	sw := insts.SW(1, 0, 0)
	if sw.Op != insts.OpSW || sw.Rs2 != 1 || sw.Rs1 != 0 {
		t.Errorf("SW constructor produced %+v", sw)
	}

	beq := insts.BEQ(1, 1, 8)
	if beq.Op != insts.OpBEQ || beq.Imm != 8 {
		t.Errorf("BEQ constructor produced %+v", beq)
	}
}

func TestInstructionString(t *testing.T) {
	i := insts.ADDI(1, 0, 5)
	if got, want := i.String(), "ADDI x1, x0, 5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
