package cpu

// rotateLeft rotates value left by one bit, the evicted bit 7 becoming
// both bit 0 and the new carry flag.
func rotateLeft(value uint8) (result uint8, carry bool) {
	carry = value&0x80 != 0
	result = value<<1 | value>>7
	return
}

// rotateRight rotates value right by one bit, the evicted bit 0 becoming
// both bit 7 and the new carry flag.
func rotateRight(value uint8) (result uint8, carry bool) {
	carry = value&0x01 != 0
	result = value>>1 | value<<7
	return
}

// rotateLeftThroughCarry rotates value left by one bit through the carry
// flag: the old carry enters at bit 0, and bit 7 becomes the new carry.
func (c *Cpu) rotateLeftThroughCarry(value uint8) (result uint8, carry bool) {
	oldCarry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		oldCarry = 1
	}
	carry = value&0x80 != 0
	result = value<<1 | oldCarry
	return
}

// rotateRightThroughCarry rotates value right by one bit through the
// carry flag: the old carry enters at bit 7, and bit 0 becomes the new
// carry.
func (c *Cpu) rotateRightThroughCarry(value uint8) (result uint8, carry bool) {
	oldCarry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		oldCarry = 1
	}
	carry = value&0x01 != 0
	result = value>>1 | oldCarry<<7
	return
}

func init() {
	// The four accumulator-only rotate opcodes (0x07/0x0F/0x17/0x1F) clear
	// the zero flag unconditionally, unlike their CB-prefixed counterparts.
	defineInstruction(0x07, "RLCA", 0, func(c *Cpu, _ []byte) {
		result, cy := rotateLeft(c.A)
		c.A = result
		c.setFlags(false, false, false, cy)
	})
	defineInstruction(0x0F, "RRCA", 0, func(c *Cpu, _ []byte) {
		result, cy := rotateRight(c.A)
		c.A = result
		c.setFlags(false, false, false, cy)
	})
	defineInstruction(0x17, "RLA", 0, func(c *Cpu, _ []byte) {
		result, cy := c.rotateLeftThroughCarry(c.A)
		c.A = result
		c.setFlags(false, false, false, cy)
	})
	defineInstruction(0x1F, "RRA", 0, func(c *Cpu, _ []byte) {
		result, cy := c.rotateRightThroughCarry(c.A)
		c.A = result
		c.setFlags(false, false, false, cy)
	})

	type rotateOp struct {
		base int
		name string
		fn   func(c *Cpu, v uint8) (uint8, bool)
	}
	ops := []rotateOp{
		{0x00, "RLC", func(c *Cpu, v uint8) (uint8, bool) { return rotateLeft(v) }},
		{0x08, "RRC", func(c *Cpu, v uint8) (uint8, bool) { return rotateRight(v) }},
		{0x10, "RL", func(c *Cpu, v uint8) (uint8, bool) { return c.rotateLeftThroughCarry(v) }},
		{0x18, "RR", func(c *Cpu, v uint8) (uint8, bool) { return c.rotateRightThroughCarry(v) }},
	}

	for _, op := range ops {
		op := op
		for i := uint8(0); i < 8; i++ {
			i := i
			opcode := uint8(op.base) + i
			if i == 6 {
				defineInstructionCB(opcode, op.name+" (HL)", func(c *Cpu, _ []byte) {
					result, cy := op.fn(c, c.readByte(c.HL.Uint16()))
					c.writeByte(c.HL.Uint16(), result)
					c.setFlags(result == 0, false, false, cy)
				})
				continue
			}
			defineInstructionCB(opcode, op.name+" r", func(c *Cpu, _ []byte) {
				reg := c.registerIndex(i)
				result, cy := op.fn(c, *reg)
				*reg = result
				c.setFlags(result == 0, false, false, cy)
			})
		}
	}
}
