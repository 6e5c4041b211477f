package cpu

import "testing"

func TestLogic_And(t *testing.T) {
	testInstruction(t, "AND A,(HL)", 0xA6, func(t *testing.T, instr Instruction) {
		c.A = 0b10101010
		c.HL.SetUint16(0x1234)
		c.writeByte(c.HL.Uint16(), 0b11010101)

		instr.fn(c, nil)

		if c.A != 0x80 {
			t.Errorf("expected A to be 0x80, got %#02x", c.A)
		}
		if c.isFlagSet(FlagSubtract) || c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
			t.Errorf("expected only half-carry set, got F=%#02x", c.F)
		}
	})
}

func TestLogic_Xor(t *testing.T) {
	testInstruction(t, "XOR A,A", 0xAF, func(t *testing.T, instr Instruction) {
		c.A = 0b10101010
		instr.fn(c, nil)
		if c.A != 0 {
			t.Errorf("expected A XOR A to be 0, got %#02x", c.A)
		}
		if !c.isFlagSet(FlagZero) {
			t.Errorf("expected zero flag to be set")
		}
	})
}

func TestLogic_Or(t *testing.T) {
	testInstruction(t, "OR A,(HL)", 0xB6, func(t *testing.T, instr Instruction) {
		c.A = 0b10101010
		c.HL.SetUint16(0x1234)
		c.writeByte(c.HL.Uint16(), 0b11010101)

		instr.fn(c, nil)

		if c.A != 0xFF {
			t.Errorf("expected A to be 0xFF, got %#02x", c.A)
		}
		if c.isFlagSet(FlagSubtract) || c.isFlagSet(FlagZero) || c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
			t.Errorf("expected all flags clear, got F=%#02x", c.F)
		}
	})
}

func TestLogic_Cp(t *testing.T) {
	testInstruction(t, "CP A,B", 0xB8, func(t *testing.T, instr Instruction) {
		c.A = 0x10
		c.B = 0x10
		instr.fn(c, nil)
		if c.A != 0x10 {
			t.Errorf("expected CP to leave A untouched, got %#02x", c.A)
		}
		if !c.isFlagSet(FlagZero) {
			t.Errorf("expected zero flag when A equals the operand")
		}
	})
}
