package cpu

import "fmt"

// operandName names a three-bit register-or-memory field for generated
// instruction mnemonics: B C D E H L (HL) A.
func operandName(index uint8) string {
	names := [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	return names[index&0x7]
}

func init() {
	// LD r,r' / LD r,(HL) / LD (HL),r: 0x40-0x7F, minus 0x76 (HALT). Named
	// per-opcode (not just "LD r,r'") so the LD B,B debug breakpoint
	// convention can recognize its one opcode by name, the way the
	// teacher's instruction table does.
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			dst, src := dst, src
			opcode := 0x40 + dst*8 + src
			if opcode == 0x76 {
				continue
			}
			name := fmt.Sprintf("LD %s,%s", operandName(dst), operandName(src))
			defineInstruction(opcode, name, 0, func(c *Cpu, _ []byte) {
				c.set8(dst, c.get8(src))
			})
		}
	}

	// LD r,n8: 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36 ((HL)), 0x3E.
	ldImm := []uint8{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for i, opcode := range ldImm {
		dst := uint8(i)
		if dst == 6 {
			defineInstruction(opcode, "LD (HL),n8", 1, func(c *Cpu, operands []byte) {
				c.writeByte(c.HL.Uint16(), operands[0])
			})
			continue
		}
		defineInstruction(opcode, "LD r,n8", 1, func(c *Cpu, operands []byte) {
			c.set8(dst, operands[0])
		})
	}

	defineInstruction(0x01, "LD BC,n16", 2, func(c *Cpu, operands []byte) { c.BC.SetUint16(operand16(operands)) })
	defineInstruction(0x11, "LD DE,n16", 2, func(c *Cpu, operands []byte) { c.DE.SetUint16(operand16(operands)) })
	defineInstruction(0x21, "LD HL,n16", 2, func(c *Cpu, operands []byte) { c.HL.SetUint16(operand16(operands)) })
	defineInstruction(0x31, "LD SP,n16", 2, func(c *Cpu, operands []byte) { c.SP = operand16(operands) })

	defineInstruction(0x02, "LD (BC),A", 0, func(c *Cpu, _ []byte) { c.writeByte(c.BC.Uint16(), c.A) })
	defineInstruction(0x12, "LD (DE),A", 0, func(c *Cpu, _ []byte) { c.writeByte(c.DE.Uint16(), c.A) })
	defineInstruction(0x0A, "LD A,(BC)", 0, func(c *Cpu, _ []byte) { c.A = c.readByte(c.BC.Uint16()) })
	defineInstruction(0x1A, "LD A,(DE)", 0, func(c *Cpu, _ []byte) { c.A = c.readByte(c.DE.Uint16()) })

	defineInstruction(0x22, "LD (HL+),A", 0, func(c *Cpu, _ []byte) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	defineInstruction(0x2A, "LD A,(HL+)", 0, func(c *Cpu, _ []byte) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	defineInstruction(0x32, "LD (HL-),A", 0, func(c *Cpu, _ []byte) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	defineInstruction(0x3A, "LD A,(HL-)", 0, func(c *Cpu, _ []byte) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	// LD (nn),SP stores the full 16-bit stack pointer, low byte at nn,
	// high byte at nn+1. A prior version of this core stored the high
	// byte unshifted (val & 0xFF00 straight into a byte write); fixed here.
	defineInstruction(0x08, "LD (nn),SP", 2, func(c *Cpu, operands []byte) {
		addr := operand16(operands)
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})

	defineInstruction(0xF9, "LD SP,HL", 0, func(c *Cpu, _ []byte) { c.SP = c.HL.Uint16() })

	defineInstruction(0xE0, "LDH (n8),A", 1, func(c *Cpu, operands []byte) {
		c.writeByte(0xFF00+uint16(operands[0]), c.A)
	})
	defineInstruction(0xF0, "LDH A,(n8)", 1, func(c *Cpu, operands []byte) {
		c.A = c.readByte(0xFF00 + uint16(operands[0]))
	})
	defineInstruction(0xE2, "LD (C),A", 0, func(c *Cpu, _ []byte) {
		c.writeByte(0xFF00+uint16(c.C), c.A)
	})
	defineInstruction(0xF2, "LD A,(C)", 0, func(c *Cpu, _ []byte) {
		c.A = c.readByte(0xFF00 + uint16(c.C))
	})

	defineInstruction(0xEA, "LD (nn),A", 2, func(c *Cpu, operands []byte) {
		c.writeByte(operand16(operands), c.A)
	})
	defineInstruction(0xFA, "LD A,(nn)", 2, func(c *Cpu, operands []byte) {
		c.A = c.readByte(operand16(operands))
	})
}
