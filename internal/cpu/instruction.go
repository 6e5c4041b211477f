package cpu

// Instruction is a single decoded opcode: its mnemonic (for debug output),
// how many operand bytes follow the opcode byte in memory, and the
// function that carries out its effect.
type Instruction struct {
	name     string
	operands uint8
	fn       func(c *Cpu, operands []byte)
}

// Name returns the instruction's mnemonic.
func (i Instruction) Name() string {
	return i.name
}

// InstructionSet holds the 256 main-page opcodes.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 CB-prefixed opcodes.
var InstructionSetCB [256]Instruction

// defineInstruction registers a main-page instruction.
func defineInstruction(opcode uint8, name string, operands uint8, fn func(c *Cpu, operands []byte)) {
	InstructionSet[opcode] = Instruction{name: name, operands: operands, fn: fn}
}

// defineInstructionCB registers a CB-prefixed instruction. CB instructions
// never carry operand bytes of their own beyond the already-consumed
// prefix and opcode bytes.
func defineInstructionCB(opcode uint8, name string, fn func(c *Cpu, operands []byte)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// disallowedOpcodes are unused on the LR35902. This core treats them as
// fatal: executing one panics with ErrUnknownOpcode, documenting the
// choice spec.md §4.3.1 leaves open.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func disallowedOpcode(c *Cpu, _ []byte) {
	opcode := c.mem.Read(c.PC - 1)
	c.log.Errorf("disallowed opcode %#02x at pc %#04x", opcode, c.PC-1)
	panic(ErrUnknownOpcode{Opcode: opcode, PC: c.PC - 1})
}

func init() {
	defineInstruction(0x00, "NOP", 0, func(c *Cpu, _ []byte) {})

	defineInstruction(0x10, "STOP", 0, func(c *Cpu, _ []byte) {
		c.mode = modeStopped
		c.log.Debugf("STOP at pc=%#04x", c.PC-1)
	})

	defineInstruction(0x27, "DAA", 0, func(c *Cpu, _ []byte) { c.daa() })

	defineInstruction(0x2F, "CPL", 0, func(c *Cpu, _ []byte) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})

	defineInstruction(0x37, "SCF", 0, func(c *Cpu, _ []byte) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	defineInstruction(0x3F, "CCF", 0, func(c *Cpu, _ []byte) {
		c.assignFlag(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	defineInstruction(0x76, "HALT", 0, func(c *Cpu, _ []byte) {
		c.mode = modeHalted
		c.log.Debugf("HALT at pc=%#04x ime=%t", c.PC-1, c.ime)
		if !c.ime {
			// The well-known HALT bug, reproduced as an extra PC
			// increment: with IME disabled, the byte after HALT is
			// skipped.
			c.PC++
		}
	})

	defineInstruction(0xF3, "DI", 0, func(c *Cpu, _ []byte) {
		c.ime = false
		c.log.Debugf("DI at pc=%#04x", c.PC-1)
	})

	defineInstruction(0xFB, "EI", 0, func(c *Cpu, _ []byte) {
		c.ime = true
		c.log.Debugf("EI at pc=%#04x", c.PC-1)
	})

	for _, opcode := range disallowedOpcodes {
		defineInstruction(opcode, "disallowed", 0, disallowedOpcode)
	}
}
