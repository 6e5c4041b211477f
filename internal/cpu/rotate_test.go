package cpu

import "testing"

func TestRotate_Accumulator(t *testing.T) {
	testInstruction(t, "RLCA", 0x07, func(t *testing.T, instr Instruction) {
		c.A = 0b10000001
		instr.fn(c, nil)
		if c.A != 0b00000011 {
			t.Errorf("expected A to be 0x03, got %#02x", c.A)
		}
		if !c.isFlagSet(FlagCarry) {
			t.Errorf("expected carry to capture the evicted bit 7")
		}
		if c.isFlagSet(FlagZero) {
			t.Errorf("RLCA always clears the zero flag regardless of the result")
		}
	})
	testInstruction(t, "RRCA", 0x0F, func(t *testing.T, instr Instruction) {
		c.A = 0b00000001
		instr.fn(c, nil)
		if c.A != 0b10000000 {
			t.Errorf("expected A to be 0x80, got %#02x", c.A)
		}
		if !c.isFlagSet(FlagCarry) {
			t.Errorf("expected carry to capture the evicted bit 0")
		}
	})
	testInstruction(t, "RLA", 0x17, func(t *testing.T, instr Instruction) {
		c.A = 0b10000000
		c.clearFlag(FlagCarry)
		instr.fn(c, nil)
		if c.A != 0 {
			t.Errorf("expected A to be 0, got %#02x", c.A)
		}
		if !c.isFlagSet(FlagCarry) {
			t.Errorf("expected carry to capture the evicted bit 7")
		}
	})
	testInstruction(t, "RRA", 0x1F, func(t *testing.T, instr Instruction) {
		c.A = 0b00000001
		c.setFlag(FlagCarry)
		instr.fn(c, nil)
		if c.A != 0b10000000 {
			t.Errorf("expected the old carry to enter at bit 7, got %#02x", c.A)
		}
	})
}

func TestRotate_CB(t *testing.T) {
	testInstructionCB(t, "RLC B", 0x00, func(t *testing.T, instr Instruction) {
		c.B = 0
		instr.fn(c, nil)
		if !c.isFlagSet(FlagZero) {
			t.Errorf("expected CB RLC to set the zero flag on a zero result, unlike RLCA")
		}
	})
	testInstructionCB(t, "RRC (HL)", 0x0E, func(t *testing.T, instr Instruction) {
		c.HL.SetUint16(0x1234)
		c.writeByte(c.HL.Uint16(), 0b00000001)
		instr.fn(c, nil)
		if c.readByte(c.HL.Uint16()) != 0b10000000 {
			t.Errorf("expected (HL) to be rotated in place, got %#02x", c.readByte(c.HL.Uint16()))
		}
	})
}
