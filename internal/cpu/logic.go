package cpu

// and8, or8, xor8 combine a with value bitwise and report the resulting
// flags. Carry is always cleared; half-carry is set only by AND.
func and8(a, value uint8) (result uint8, z, n, h, cy bool) {
	result = a & value
	return result, result == 0, false, true, false
}

func or8(a, value uint8) (result uint8, z, n, h, cy bool) {
	result = a | value
	return result, result == 0, false, false, false
}

func xor8(a, value uint8) (result uint8, z, n, h, cy bool) {
	result = a ^ value
	return result, result == 0, false, false, false
}

// cp8 computes a-value for flags only, discarding the difference: CP is a
// non-destructive SUB.
func cp8(a, value uint8) (z, n, h, cy bool) {
	_, z, n, h, cy = sub8(a, value)
	return
}

func (c *Cpu) aluAnd(value uint8) {
	result, z, n, h, cy := and8(c.A, value)
	c.A = result
	c.setFlags(z, n, h, cy)
}

func (c *Cpu) aluOr(value uint8) {
	result, z, n, h, cy := or8(c.A, value)
	c.A = result
	c.setFlags(z, n, h, cy)
}

func (c *Cpu) aluXor(value uint8) {
	result, z, n, h, cy := xor8(c.A, value)
	c.A = result
	c.setFlags(z, n, h, cy)
}

func (c *Cpu) aluCp(value uint8) {
	z, n, h, cy := cp8(c.A, value)
	c.setFlags(z, n, h, cy)
}

func init() {
	defineInstruction(0xA0, "AND A,B", 0, aluReg(func(c *Cpu, v uint8) { c.aluAnd(v) }, 0))
	defineInstruction(0xA1, "AND A,C", 0, aluReg(func(c *Cpu, v uint8) { c.aluAnd(v) }, 1))
	defineInstruction(0xA2, "AND A,D", 0, aluReg(func(c *Cpu, v uint8) { c.aluAnd(v) }, 2))
	defineInstruction(0xA3, "AND A,E", 0, aluReg(func(c *Cpu, v uint8) { c.aluAnd(v) }, 3))
	defineInstruction(0xA4, "AND A,H", 0, aluReg(func(c *Cpu, v uint8) { c.aluAnd(v) }, 4))
	defineInstruction(0xA5, "AND A,L", 0, aluReg(func(c *Cpu, v uint8) { c.aluAnd(v) }, 5))
	defineInstruction(0xA6, "AND A,(HL)", 0, func(c *Cpu, _ []byte) { c.aluAnd(c.readByte(c.HL.Uint16())) })
	defineInstruction(0xA7, "AND A,A", 0, aluReg(func(c *Cpu, v uint8) { c.aluAnd(v) }, 7))
	defineInstruction(0xE6, "AND A,n8", 1, func(c *Cpu, operands []byte) { c.aluAnd(operands[0]) })

	defineInstruction(0xA8, "XOR A,B", 0, aluReg(func(c *Cpu, v uint8) { c.aluXor(v) }, 0))
	defineInstruction(0xA9, "XOR A,C", 0, aluReg(func(c *Cpu, v uint8) { c.aluXor(v) }, 1))
	defineInstruction(0xAA, "XOR A,D", 0, aluReg(func(c *Cpu, v uint8) { c.aluXor(v) }, 2))
	defineInstruction(0xAB, "XOR A,E", 0, aluReg(func(c *Cpu, v uint8) { c.aluXor(v) }, 3))
	defineInstruction(0xAC, "XOR A,H", 0, aluReg(func(c *Cpu, v uint8) { c.aluXor(v) }, 4))
	defineInstruction(0xAD, "XOR A,L", 0, aluReg(func(c *Cpu, v uint8) { c.aluXor(v) }, 5))
	defineInstruction(0xAE, "XOR A,(HL)", 0, func(c *Cpu, _ []byte) { c.aluXor(c.readByte(c.HL.Uint16())) })
	defineInstruction(0xAF, "XOR A,A", 0, aluReg(func(c *Cpu, v uint8) { c.aluXor(v) }, 7))
	defineInstruction(0xEE, "XOR A,n8", 1, func(c *Cpu, operands []byte) { c.aluXor(operands[0]) })

	defineInstruction(0xB0, "OR A,B", 0, aluReg(func(c *Cpu, v uint8) { c.aluOr(v) }, 0))
	defineInstruction(0xB1, "OR A,C", 0, aluReg(func(c *Cpu, v uint8) { c.aluOr(v) }, 1))
	defineInstruction(0xB2, "OR A,D", 0, aluReg(func(c *Cpu, v uint8) { c.aluOr(v) }, 2))
	defineInstruction(0xB3, "OR A,E", 0, aluReg(func(c *Cpu, v uint8) { c.aluOr(v) }, 3))
	defineInstruction(0xB4, "OR A,H", 0, aluReg(func(c *Cpu, v uint8) { c.aluOr(v) }, 4))
	defineInstruction(0xB5, "OR A,L", 0, aluReg(func(c *Cpu, v uint8) { c.aluOr(v) }, 5))
	defineInstruction(0xB6, "OR A,(HL)", 0, func(c *Cpu, _ []byte) { c.aluOr(c.readByte(c.HL.Uint16())) })
	defineInstruction(0xB7, "OR A,A", 0, aluReg(func(c *Cpu, v uint8) { c.aluOr(v) }, 7))
	defineInstruction(0xF6, "OR A,n8", 1, func(c *Cpu, operands []byte) { c.aluOr(operands[0]) })

	defineInstruction(0xB8, "CP A,B", 0, aluReg(func(c *Cpu, v uint8) { c.aluCp(v) }, 0))
	defineInstruction(0xB9, "CP A,C", 0, aluReg(func(c *Cpu, v uint8) { c.aluCp(v) }, 1))
	defineInstruction(0xBA, "CP A,D", 0, aluReg(func(c *Cpu, v uint8) { c.aluCp(v) }, 2))
	defineInstruction(0xBB, "CP A,E", 0, aluReg(func(c *Cpu, v uint8) { c.aluCp(v) }, 3))
	defineInstruction(0xBC, "CP A,H", 0, aluReg(func(c *Cpu, v uint8) { c.aluCp(v) }, 4))
	defineInstruction(0xBD, "CP A,L", 0, aluReg(func(c *Cpu, v uint8) { c.aluCp(v) }, 5))
	defineInstruction(0xBE, "CP A,(HL)", 0, func(c *Cpu, _ []byte) { c.aluCp(c.readByte(c.HL.Uint16())) })
	defineInstruction(0xBF, "CP A,A", 0, aluReg(func(c *Cpu, v uint8) { c.aluCp(v) }, 7))
	defineInstruction(0xFE, "CP A,n8", 1, func(c *Cpu, operands []byte) { c.aluCp(operands[0]) })
}
