package cpu

import "testing"

func TestArithmetic_Add(t *testing.T) {
	testInstruction(t, "ADD A,(HL)", 0x86, func(t *testing.T, instr Instruction) {
		c.A = 0x42
		c.HL.SetUint16(0x1234)
		c.writeByte(c.HL.Uint16(), 0x42)

		instr.fn(c, nil)

		if c.A != 0x84 {
			t.Errorf("expected A to be 0x84, got %#02x", c.A)
		}
		if c.isFlagSet(FlagSubtract) || c.isFlagSet(FlagZero) || c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
			t.Errorf("expected flags clear, got F=%#02x", c.F)
		}

		c.A = 0x0F
		c.writeByte(c.HL.Uint16(), 0x01)
		instr.fn(c, nil)
		if !c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected half carry flag to be set")
		}

		c.A = 0xFF
		c.writeByte(c.HL.Uint16(), 0x01)
		instr.fn(c, nil)
		if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
			t.Errorf("expected zero and carry flags to be set, got F=%#02x", c.F)
		}
	})
}

func TestArithmetic_Adc(t *testing.T) {
	testInstruction(t, "ADC A,(HL)", 0x8E, func(t *testing.T, instr Instruction) {
		c.A = 0x42
		c.setFlag(FlagCarry)
		c.HL.SetUint16(0x1234)
		c.writeByte(c.HL.Uint16(), 0x42)

		instr.fn(c, nil)

		if c.A != 0x85 {
			t.Errorf("expected A to be 0x85, got %#02x", c.A)
		}
		if c.isFlagSet(FlagCarry) {
			t.Errorf("expected carry to be cleared by a non-overflowing add")
		}
	})
}

func TestArithmetic_Sub(t *testing.T) {
	testInstruction(t, "SUB A,(HL)", 0x96, func(t *testing.T, instr Instruction) {
		c.A = 0x42
		c.HL.SetUint16(0x1234)
		c.writeByte(c.HL.Uint16(), 0x10)

		instr.fn(c, nil)

		if c.A != 0x32 {
			t.Errorf("expected A to be 0x32, got %#02x", c.A)
		}
		if !c.isFlagSet(FlagSubtract) {
			t.Errorf("expected subtract flag to be set")
		}

		c.A = 0x00
		c.writeByte(c.HL.Uint16(), 0x01)
		instr.fn(c, nil)
		if !c.isFlagSet(FlagCarry) {
			t.Errorf("expected borrow to set the carry flag")
		}
	})
}

func TestArithmetic_Sbc(t *testing.T) {
	testInstruction(t, "SBC A,(HL)", 0x9E, func(t *testing.T, instr Instruction) {
		c.A = 0x42
		c.HL.SetUint16(0x1234)
		c.writeByte(c.HL.Uint16(), 0x10)
		c.setFlag(FlagCarry)

		instr.fn(c, nil)

		if c.A != 0x31 {
			t.Errorf("expected A to be 0x31, got %#02x", c.A)
		}
	})
}

func TestArithmetic_IncDec8(t *testing.T) {
	testInstruction(t, "INC B", 0x04, func(t *testing.T, instr Instruction) {
		c.B = 0xFF
		instr.fn(c, nil)
		if c.B != 0 {
			t.Errorf("expected B to wrap to 0, got %#02x", c.B)
		}
		if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected zero and half-carry set, got F=%#02x", c.F)
		}
	})
	testInstruction(t, "DEC B", 0x05, func(t *testing.T, instr Instruction) {
		c.B = 0x00
		instr.fn(c, nil)
		if c.B != 0xFF {
			t.Errorf("expected B to wrap to 0xFF, got %#02x", c.B)
		}
		if !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected subtract and half-carry set, got F=%#02x", c.F)
		}
	})
}

func TestArithmetic_AddHL16(t *testing.T) {
	testInstruction(t, "ADD HL,BC", 0x09, func(t *testing.T, instr Instruction) {
		c.HL.SetUint16(0xFFFF)
		c.BC.SetUint16(0x0001)
		instr.fn(c, nil)
		if c.HL.Uint16() != 0 {
			t.Errorf("expected HL to wrap to 0, got %#04x", c.HL.Uint16())
		}
		if !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected carry and half-carry set, got F=%#02x", c.F)
		}
	})
}

func TestArithmetic_AddSPSigned(t *testing.T) {
	testInstruction(t, "ADD SP,e8", 0xE8, func(t *testing.T, instr Instruction) {
		c.SP = 0x0005
		instr.fn(c, []byte{0xFB}) // -5
		if c.SP != 0 {
			t.Errorf("expected SP to be 0, got %#04x", c.SP)
		}
		if c.isFlagSet(FlagZero) {
			t.Errorf("ADD SP,e8 must always clear the zero flag")
		}
	})
}

func TestDAA(t *testing.T) {
	testInstruction(t, "DAA after add", 0x27, func(t *testing.T, instr Instruction) {
		c.A = 0x45
		c.B = 0x38
		result, z, n, h, cy := add8(c.A, c.B)
		c.A = result
		c.setFlags(z, n, h, cy)

		instr.fn(c, nil)

		if c.A != 0x83 {
			t.Errorf("expected BCD-corrected A to be 0x83, got %#02x", c.A)
		}
	})
}
