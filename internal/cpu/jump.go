package cpu

// flagCondition evaluates one of the four branch conditions used by the
// conditional JP/JR/CALL/RET opcodes: 0=NZ 1=Z 2=NC 3=C.
func (c *Cpu) flagCondition(cc uint8) bool {
	switch cc {
	case 0:
		return c.isFlagsNotSet(FlagZero)
	case 1:
		return c.isFlagsSet(FlagZero)
	case 2:
		return c.isFlagsNotSet(FlagCarry)
	case 3:
		return c.isFlagsSet(FlagCarry)
	}
	panic("cpu: invalid condition code")
}

// pushStack pushes a 16-bit value onto the stack, high byte first, and
// decrements SP by two.
func (c *Cpu) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16-bit value off the stack, low byte first, and
// increments SP by two.
func (c *Cpu) popStack() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

func operand16(operands []byte) uint16 {
	return uint16(operands[1])<<8 | uint16(operands[0])
}

func init() {
	defineInstruction(0xC3, "JP nn", 2, func(c *Cpu, operands []byte) {
		c.PC = operand16(operands)
	})

	// JP (HL) jumps to the address held in HL, not through a dereference
	// of it: the source this core learned from once wrote PC =
	// memory[HL], which is wrong.
	defineInstruction(0xE9, "JP (HL)", 0, func(c *Cpu, _ []byte) {
		c.PC = c.HL.Uint16()
	})

	defineInstruction(0x18, "JR e8", 1, func(c *Cpu, operands []byte) {
		c.PC = uint16(int32(c.PC) + int32(int8(operands[0])))
	})

	ccJP := []uint8{0xC2, 0xCA, 0xD2, 0xDA}
	for cc, opcode := range ccJP {
		cc := uint8(cc)
		defineInstruction(opcode, "JP cc,nn", 2, func(c *Cpu, operands []byte) {
			if c.flagCondition(cc) {
				c.PC = operand16(operands)
			}
		})
	}

	ccJR := []uint8{0x20, 0x28, 0x30, 0x38}
	for cc, opcode := range ccJR {
		cc := uint8(cc)
		defineInstruction(opcode, "JR cc,e8", 1, func(c *Cpu, operands []byte) {
			if c.flagCondition(cc) {
				c.PC = uint16(int32(c.PC) + int32(int8(operands[0])))
			}
		})
	}

	defineInstruction(0xCD, "CALL nn", 2, func(c *Cpu, operands []byte) {
		c.pushStack(c.PC)
		c.PC = operand16(operands)
	})

	ccCALL := []uint8{0xC4, 0xCC, 0xD4, 0xDC}
	for cc, opcode := range ccCALL {
		cc := uint8(cc)
		defineInstruction(opcode, "CALL cc,nn", 2, func(c *Cpu, operands []byte) {
			if c.flagCondition(cc) {
				c.pushStack(c.PC)
				c.PC = operand16(operands)
			}
		})
	}

	defineInstruction(0xC9, "RET", 0, func(c *Cpu, _ []byte) {
		c.PC = c.popStack()
	})

	defineInstruction(0xD9, "RETI", 0, func(c *Cpu, _ []byte) {
		c.PC = c.popStack()
		c.ime = true
	})

	ccRET := []uint8{0xC0, 0xC8, 0xD0, 0xD8}
	for cc, opcode := range ccRET {
		cc := uint8(cc)
		defineInstruction(opcode, "RET cc", 0, func(c *Cpu, _ []byte) {
			if c.flagCondition(cc) {
				c.PC = c.popStack()
			}
		})
	}

	for i := uint8(0); i < 8; i++ {
		target := uint16(i) * 8
		opcode := 0xC7 + i*8
		defineInstruction(opcode, "RST", 0, func(c *Cpu, _ []byte) {
			c.pushStack(c.PC)
			c.PC = target
		})
	}

	defineInstruction(0xC5, "PUSH BC", 0, func(c *Cpu, _ []byte) { c.pushStack(c.BC.Uint16()) })
	defineInstruction(0xD5, "PUSH DE", 0, func(c *Cpu, _ []byte) { c.pushStack(c.DE.Uint16()) })
	defineInstruction(0xE5, "PUSH HL", 0, func(c *Cpu, _ []byte) { c.pushStack(c.HL.Uint16()) })
	defineInstruction(0xF5, "PUSH AF", 0, func(c *Cpu, _ []byte) { c.pushStack(c.AF.Uint16()) })

	defineInstruction(0xC1, "POP BC", 0, func(c *Cpu, _ []byte) { c.BC.SetUint16(c.popStack()) })
	defineInstruction(0xD1, "POP DE", 0, func(c *Cpu, _ []byte) { c.DE.SetUint16(c.popStack()) })
	defineInstruction(0xE1, "POP HL", 0, func(c *Cpu, _ []byte) { c.HL.SetUint16(c.popStack()) })
	defineInstruction(0xF1, "POP AF", 0, func(c *Cpu, _ []byte) {
		// The low nibble of F is always zero: the four unused bits never
		// read back set, even after a raw pop.
		c.AF.SetUint16(c.popStack() & 0xFFF0)
	})
}
