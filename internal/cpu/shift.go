package cpu

// shiftLeftArithmetic shifts value left by one bit, filling bit 0 with
// zero. Bit 7 becomes the carry flag.
func shiftLeftArithmetic(value uint8) (result uint8, carry bool) {
	carry = value&0x80 != 0
	result = value << 1
	return
}

// shiftRightArithmetic shifts value right by one bit, preserving bit 7
// (sign extension). Bit 0 becomes the carry flag.
func shiftRightArithmetic(value uint8) (result uint8, carry bool) {
	carry = value&0x01 != 0
	result = value>>1 | value&0x80
	return
}

// shiftRightLogical shifts value right by one bit, filling bit 7 with
// zero. Bit 0 becomes the carry flag.
func shiftRightLogical(value uint8) (result uint8, carry bool) {
	carry = value&0x01 != 0
	result = value >> 1
	return
}

func init() {
	type shiftOp struct {
		base int
		name string
		fn   func(v uint8) (uint8, bool)
	}
	ops := []shiftOp{
		{0x20, "SLA", shiftLeftArithmetic},
		{0x28, "SRA", shiftRightArithmetic},
		{0x30, "SWAP", func(v uint8) (uint8, bool) { return swapNibbles(v), false }},
		{0x38, "SRL", shiftRightLogical},
	}

	for _, op := range ops {
		op := op
		for i := uint8(0); i < 8; i++ {
			i := i
			opcode := uint8(op.base) + i
			if i == 6 {
				defineInstructionCB(opcode, op.name+" (HL)", func(c *Cpu, _ []byte) {
					result, cy := op.fn(c.readByte(c.HL.Uint16()))
					c.writeByte(c.HL.Uint16(), result)
					c.setFlags(result == 0, false, false, cy)
				})
				continue
			}
			defineInstructionCB(opcode, op.name+" r", func(c *Cpu, _ []byte) {
				reg := c.registerIndex(i)
				result, cy := op.fn(*reg)
				*reg = result
				c.setFlags(result == 0, false, false, cy)
			})
		}
	}
}
