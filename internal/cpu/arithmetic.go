package cpu

// add8 adds value to a, setting all four flags, and returns the sum.
func add8(a, value uint8) (result uint8, z, n, h, cy bool) {
	sum := uint16(a) + uint16(value)
	result = uint8(sum)
	z = result == 0
	n = false
	h = (a&0xF)+(value&0xF) > 0xF
	cy = sum > 0xFF
	return
}

// adc8 adds value and the current carry flag to a.
func (c *Cpu) adc8(a, value uint8) (result uint8, z, n, h, cy bool) {
	carry := uint16(0)
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(a) + uint16(value) + carry
	result = uint8(sum)
	z = result == 0
	n = false
	h = (a&0xF)+(value&0xF)+uint8(carry) > 0xF
	cy = sum > 0xFF
	return
}

// sub8 subtracts value from a, setting all four flags, and returns the
// difference.
func sub8(a, value uint8) (result uint8, z, n, h, cy bool) {
	result = a - value
	z = result == 0
	n = true
	h = a&0xF < value&0xF
	cy = a < value
	return
}

// sbc8 subtracts value and the current carry flag from a.
func (c *Cpu) sbc8(a, value uint8) (result uint8, z, n, h, cy bool) {
	carry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	full := int16(a) - int16(value) - int16(carry)
	result = uint8(full)
	z = result == 0
	n = true
	h = int16(a&0xF)-int16(value&0xF)-int16(carry) < 0
	cy = full < 0
	return
}

// increment8 adds one to value, leaving the carry flag untouched.
func (c *Cpu) increment8(value uint8) uint8 {
	result := value + 1
	c.assignFlag(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.assignFlag(FlagHalfCarry, value&0xF == 0xF)
	return result
}

// decrement8 subtracts one from value, leaving the carry flag untouched.
func (c *Cpu) decrement8(value uint8) uint8 {
	result := value - 1
	c.assignFlag(FlagZero, result == 0)
	c.setFlag(FlagSubtract)
	c.assignFlag(FlagHalfCarry, value&0xF == 0)
	return result
}

// addHL16 adds value to HL, setting N=0, H/C from the 16-bit addition,
// and leaving Z untouched.
func (c *Cpu) addHL16(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.clearFlag(FlagSubtract)
	c.assignFlag(FlagHalfCarry, (hl&0xFFF)+(value&0xFFF) > 0xFFF)
	c.assignFlag(FlagCarry, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned adds a signed 8-bit displacement to base, the shared helper
// behind ADD SP,e8 and LD HL,SP+e8. Flags are computed as unsigned 8-bit
// arithmetic on the low byte of base, per the LR35902's quirky convention.
func (c *Cpu) addSPSigned(base uint16, e int8) uint16 {
	result := uint16(int32(base) + int32(e))
	low := uint8(base)
	var add uint8
	if e >= 0 {
		add = uint8(e)
	} else {
		add = uint8(256 + int(e))
	}
	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.assignFlag(FlagHalfCarry, (low&0xF)+(add&0xF) > 0xF)
	c.assignFlag(FlagCarry, uint16(low)+uint16(add) > 0xFF)
	return result
}

// daa re-biases A into valid packed-BCD after an 8-bit add or subtract,
// consulting N/H/C from the instruction that produced A's current value.
func (c *Cpu) daa() {
	a := c.A
	adjust := uint8(0)
	carry := false

	if c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) {
			adjust += 0x06
		}
		if c.isFlagSet(FlagCarry) {
			adjust += 0x60
		}
		a -= adjust
		carry = c.isFlagSet(FlagCarry)
	} else {
		if c.isFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
			adjust += 0x06
		}
		if c.isFlagSet(FlagCarry) || a > 0x99 {
			adjust += 0x60
		}
		a += adjust
		carry = adjust >= 0x60
	}

	c.A = a
	c.assignFlag(FlagZero, a == 0)
	c.clearFlag(FlagHalfCarry)
	c.assignFlag(FlagCarry, carry)
}

func init() {
	for i := uint8(0); i < 8; i++ {
		idx := i
		if idx == 6 {
			defineInstruction(0x04+idx<<3, "INC (HL)", 0, func(c *Cpu, _ []byte) {
				c.writeByte(c.HL.Uint16(), c.increment8(c.readByte(c.HL.Uint16())))
			})
			defineInstruction(0x05+idx<<3, "DEC (HL)", 0, func(c *Cpu, _ []byte) {
				c.writeByte(c.HL.Uint16(), c.decrement8(c.readByte(c.HL.Uint16())))
			})
			continue
		}
		defineInstruction(0x04+idx<<3, "INC r", 0, func(c *Cpu, _ []byte) {
			reg := c.registerIndex(idx)
			*reg = c.increment8(*reg)
		})
		defineInstruction(0x05+idx<<3, "DEC r", 0, func(c *Cpu, _ []byte) {
			reg := c.registerIndex(idx)
			*reg = c.decrement8(*reg)
		})
	}

	defineInstruction(0x03, "INC BC", 0, func(c *Cpu, _ []byte) { c.BC.SetUint16(c.BC.Uint16() + 1) })
	defineInstruction(0x13, "INC DE", 0, func(c *Cpu, _ []byte) { c.DE.SetUint16(c.DE.Uint16() + 1) })
	defineInstruction(0x23, "INC HL", 0, func(c *Cpu, _ []byte) { c.HL.SetUint16(c.HL.Uint16() + 1) })
	defineInstruction(0x33, "INC SP", 0, func(c *Cpu, _ []byte) { c.SP++ })

	defineInstruction(0x0B, "DEC BC", 0, func(c *Cpu, _ []byte) { c.BC.SetUint16(c.BC.Uint16() - 1) })
	defineInstruction(0x1B, "DEC DE", 0, func(c *Cpu, _ []byte) { c.DE.SetUint16(c.DE.Uint16() - 1) })
	defineInstruction(0x2B, "DEC HL", 0, func(c *Cpu, _ []byte) { c.HL.SetUint16(c.HL.Uint16() - 1) })
	defineInstruction(0x3B, "DEC SP", 0, func(c *Cpu, _ []byte) { c.SP-- })

	defineInstruction(0x09, "ADD HL,BC", 0, func(c *Cpu, _ []byte) { c.addHL16(c.BC.Uint16()) })
	defineInstruction(0x19, "ADD HL,DE", 0, func(c *Cpu, _ []byte) { c.addHL16(c.DE.Uint16()) })
	defineInstruction(0x29, "ADD HL,HL", 0, func(c *Cpu, _ []byte) { c.addHL16(c.HL.Uint16()) })
	defineInstruction(0x39, "ADD HL,SP", 0, func(c *Cpu, _ []byte) { c.addHL16(c.SP) })

	defineInstruction(0xE8, "ADD SP,e8", 1, func(c *Cpu, operands []byte) {
		c.SP = c.addSPSigned(c.SP, int8(operands[0]))
	})

	defineInstruction(0xF8, "LD HL,SP+e8", 1, func(c *Cpu, operands []byte) {
		c.HL.SetUint16(c.addSPSigned(c.SP, int8(operands[0])))
	})

	defineInstruction(0x80, "ADD A,B", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdd(v) }, 0))
	defineInstruction(0x81, "ADD A,C", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdd(v) }, 1))
	defineInstruction(0x82, "ADD A,D", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdd(v) }, 2))
	defineInstruction(0x83, "ADD A,E", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdd(v) }, 3))
	defineInstruction(0x84, "ADD A,H", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdd(v) }, 4))
	defineInstruction(0x85, "ADD A,L", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdd(v) }, 5))
	defineInstruction(0x86, "ADD A,(HL)", 0, func(c *Cpu, _ []byte) { c.aluAdd(c.readByte(c.HL.Uint16())) })
	defineInstruction(0x87, "ADD A,A", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdd(v) }, 7))
	defineInstruction(0xC6, "ADD A,n8", 1, func(c *Cpu, operands []byte) { c.aluAdd(operands[0]) })

	defineInstruction(0x88, "ADC A,B", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdc(v) }, 0))
	defineInstruction(0x89, "ADC A,C", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdc(v) }, 1))
	defineInstruction(0x8A, "ADC A,D", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdc(v) }, 2))
	defineInstruction(0x8B, "ADC A,E", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdc(v) }, 3))
	defineInstruction(0x8C, "ADC A,H", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdc(v) }, 4))
	defineInstruction(0x8D, "ADC A,L", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdc(v) }, 5))
	defineInstruction(0x8E, "ADC A,(HL)", 0, func(c *Cpu, _ []byte) { c.aluAdc(c.readByte(c.HL.Uint16())) })
	defineInstruction(0x8F, "ADC A,A", 0, aluReg(func(c *Cpu, v uint8) { c.aluAdc(v) }, 7))
	defineInstruction(0xCE, "ADC A,n8", 1, func(c *Cpu, operands []byte) { c.aluAdc(operands[0]) })

	defineInstruction(0x90, "SUB A,B", 0, aluReg(func(c *Cpu, v uint8) { c.aluSub(v) }, 0))
	defineInstruction(0x91, "SUB A,C", 0, aluReg(func(c *Cpu, v uint8) { c.aluSub(v) }, 1))
	defineInstruction(0x92, "SUB A,D", 0, aluReg(func(c *Cpu, v uint8) { c.aluSub(v) }, 2))
	defineInstruction(0x93, "SUB A,E", 0, aluReg(func(c *Cpu, v uint8) { c.aluSub(v) }, 3))
	defineInstruction(0x94, "SUB A,H", 0, aluReg(func(c *Cpu, v uint8) { c.aluSub(v) }, 4))
	defineInstruction(0x95, "SUB A,L", 0, aluReg(func(c *Cpu, v uint8) { c.aluSub(v) }, 5))
	defineInstruction(0x96, "SUB A,(HL)", 0, func(c *Cpu, _ []byte) { c.aluSub(c.readByte(c.HL.Uint16())) })
	defineInstruction(0x97, "SUB A,A", 0, aluReg(func(c *Cpu, v uint8) { c.aluSub(v) }, 7))
	defineInstruction(0xD6, "SUB A,n8", 1, func(c *Cpu, operands []byte) { c.aluSub(operands[0]) })

	defineInstruction(0x98, "SBC A,B", 0, aluReg(func(c *Cpu, v uint8) { c.aluSbc(v) }, 0))
	defineInstruction(0x99, "SBC A,C", 0, aluReg(func(c *Cpu, v uint8) { c.aluSbc(v) }, 1))
	defineInstruction(0x9A, "SBC A,D", 0, aluReg(func(c *Cpu, v uint8) { c.aluSbc(v) }, 2))
	defineInstruction(0x9B, "SBC A,E", 0, aluReg(func(c *Cpu, v uint8) { c.aluSbc(v) }, 3))
	defineInstruction(0x9C, "SBC A,H", 0, aluReg(func(c *Cpu, v uint8) { c.aluSbc(v) }, 4))
	defineInstruction(0x9D, "SBC A,L", 0, aluReg(func(c *Cpu, v uint8) { c.aluSbc(v) }, 5))
	defineInstruction(0x9E, "SBC A,(HL)", 0, func(c *Cpu, _ []byte) { c.aluSbc(c.readByte(c.HL.Uint16())) })
	defineInstruction(0x9F, "SBC A,A", 0, aluReg(func(c *Cpu, v uint8) { c.aluSbc(v) }, 7))
	defineInstruction(0xDE, "SBC A,n8", 1, func(c *Cpu, operands []byte) { c.aluSbc(operands[0]) })
}

// aluAdd, aluAdc, aluSub, aluSbc apply the corresponding helper to A and
// write the result and flags back.
func (c *Cpu) aluAdd(value uint8) {
	result, z, n, h, cy := add8(c.A, value)
	c.A = result
	c.setFlags(z, n, h, cy)
}

func (c *Cpu) aluAdc(value uint8) {
	result, z, n, h, cy := c.adc8(c.A, value)
	c.A = result
	c.setFlags(z, n, h, cy)
}

func (c *Cpu) aluSub(value uint8) {
	result, z, n, h, cy := sub8(c.A, value)
	c.A = result
	c.setFlags(z, n, h, cy)
}

func (c *Cpu) aluSbc(value uint8) {
	result, z, n, h, cy := c.sbc8(c.A, value)
	c.A = result
	c.setFlags(z, n, h, cy)
}

// aluReg adapts an ALU operation to a fixed register-index operand, for
// use with defineInstruction's uniform handler signature.
func aluReg(op func(c *Cpu, v uint8), index uint8) func(c *Cpu, operands []byte) {
	return func(c *Cpu, _ []byte) {
		op(c, *c.registerIndex(index))
	}
}
