package register

import "testing"

func TestRegisterPair_Uint16(t *testing.T) {
	var r Registers
	r.Wire()

	r.A = 0x12
	r.F = 0x34
	if got := r.AF.Uint16(); got != 0x1234 {
		t.Errorf("expected AF to be 0x1234, got %#04x", got)
	}
}

func TestRegisterPair_SetUint16(t *testing.T) {
	var r Registers
	r.Wire()

	r.HL.SetUint16(0xBEEF)
	if r.H != 0xBE || r.L != 0xEF {
		t.Errorf("expected H=0xBE L=0xEF, got H=%#02x L=%#02x", r.H, r.L)
	}
}

func TestRegisters_Reset(t *testing.T) {
	var r Registers
	r.Wire()
	r.BC.SetUint16(0x1234)

	r.Reset()

	if r.BC.Uint16() != 0 {
		t.Errorf("expected BC to be zeroed after Reset, got %#04x", r.BC.Uint16())
	}
	r.DE.SetUint16(0x5678)
	if r.D != 0x56 || r.E != 0x78 {
		t.Errorf("expected the pairs to still be wired after Reset")
	}
}
