// Package cpu implements the LR35902 instruction interpreter: the register
// file, flag logic, and the fetch-decode-execute loop that drives it
// against an attached, byte-addressable memory.
package cpu

import (
	"fmt"

	"github.com/ryanbujnowicz/gbemu/internal/memory"
	"github.com/ryanbujnowicz/gbemu/internal/register"
	"github.com/ryanbujnowicz/gbemu/pkg/log"
)

// mode names the CPU's three visible states (spec §4.3.4).
type mode uint8

const (
	modeRunning mode = iota
	modeHalted
	modeStopped
)

// ErrUnknownOpcode is panicked by Step when the decoded opcode has no
// defined instruction: either one of the eleven opcodes the LR35902
// doesn't implement, or (should it ever happen) a hole in the tables.
type ErrUnknownOpcode struct {
	Opcode uint8
	PC     uint16
}

func (e ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("cpu: unknown opcode %#02x at pc %#04x", e.Opcode, e.PC)
}

// Cpu is the LR35902 instruction interpreter. It owns a register file and
// flag byte, and executes instructions against a Memory attached with
// Attach. The zero value is not ready for use; construct with NewCpu.
type Cpu struct {
	register.Registers

	SP uint16
	PC uint16

	mode mode
	ime  bool

	// Debug, when set, arms the LD B,B breakpoint convention: executing
	// that opcode sets DebugBreakpoint so a host's debugger can poll it.
	Debug           bool
	DebugBreakpoint bool

	mem memory.Memory
	log log.Logger
}

// NewCpu returns a Cpu in its reset state, with no memory attached and a
// logger that discards everything until SetLogger is called.
func NewCpu() *Cpu {
	c := &Cpu{log: log.NewNullLogger()}
	c.Reset()
	return c
}

// SetLogger installs the logger the Cpu reports state transitions through.
func (c *Cpu) SetLogger(l log.Logger) {
	c.log = l
}

// Attach installs the byte-addressable store the Cpu will fetch, load,
// store, and use as its stack through. The Cpu holds a non-owning
// reference for as long as it's attached.
func (c *Cpu) Attach(mem memory.Memory) {
	c.mem = mem
}

// Reset returns the Cpu to its construction-time state: every register,
// SP, and PC zero, IME enabled, and Running.
func (c *Cpu) Reset() {
	c.Registers.Reset()
	c.SP = 0
	c.PC = 0
	c.ime = true
	c.mode = modeRunning
	c.DebugBreakpoint = false
}

// IME reports whether the interrupt master enable flag is set.
func (c *Cpu) IME() bool {
	return c.ime
}

// SetIME sets the interrupt master enable flag.
func (c *Cpu) SetIME(enabled bool) {
	c.ime = enabled
}

// IsHalted reports whether the Cpu has executed a HALT.
func (c *Cpu) IsHalted() bool {
	return c.mode == modeHalted
}

// IsStopped reports whether the Cpu has executed a STOP.
func (c *Cpu) IsStopped() bool {
	return c.mode == modeStopped
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *Cpu) fetchByte() uint8 {
	v := c.mem.Read(c.PC)
	c.PC++
	return v
}

// readByte reads a byte from memory without touching PC.
func (c *Cpu) readByte(addr uint16) uint8 {
	return c.mem.Read(addr)
}

// writeByte writes a byte to memory without touching PC.
func (c *Cpu) writeByte(addr uint16, value uint8) {
	c.mem.Write(addr, value)
}

// Step fetches, decodes, and executes exactly one instruction from the
// attached memory at PC. Memory must be attached and contain valid bytes
// at PC and whatever operand bytes the decoded instruction consumes.
//
// Step does not refuse to run while Halted or Stopped: it keeps decoding
// and executing whatever byte sits at PC. Bounding a run loop by
// IsStopped (or IsHalted) is the host's responsibility.
func (c *Cpu) Step() {
	opcode := c.fetchByte()

	if opcode == 0xCB {
		sub := c.fetchByte()
		instr := InstructionSetCB[sub]
		if instr.fn == nil {
			c.log.Errorf("unknown CB opcode %#02x at pc %#04x", sub, c.PC-1)
			panic(ErrUnknownOpcode{Opcode: sub, PC: c.PC - 1})
		}
		instr.fn(c, nil)
		return
	}

	instr := InstructionSet[opcode]
	if instr.fn == nil {
		c.log.Errorf("unknown opcode %#02x at pc %#04x", opcode, c.PC-1)
		panic(ErrUnknownOpcode{Opcode: opcode, PC: c.PC - 1})
	}

	var operands []byte
	for i := uint8(0); i < instr.operands; i++ {
		operands = append(operands, c.fetchByte())
	}
	instr.fn(c, operands)

	if c.Debug && instr.name == "LD B,B" {
		c.DebugBreakpoint = true
	}
}

// registerIndex returns a pointer to the 8-bit register named by the
// three-bit field used throughout the opcode table: 0=B 1=C 2=D 3=E 4=H
// 5=L 7=A. Index 6 names (HL), a memory access, and has no register
// pointer; callers must special-case it before calling registerIndex.
func (c *Cpu) registerIndex(index uint8) *register.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("cpu: invalid register index %d", index))
}

// registerName returns the conventional name of a register given a
// pointer into this Cpu's register file, for debug output. It backs
// RegisterName.
func (c *Cpu) registerName(reg *register.Register) string {
	switch reg {
	case &c.A:
		return "A"
	case &c.B:
		return "B"
	case &c.C:
		return "C"
	case &c.D:
		return "D"
	case &c.E:
		return "E"
	case &c.H:
		return "H"
	case &c.L:
		return "L"
	}
	return ""
}

// RegisterIndex exposes registerIndex to hosts building a register-dump
// formatter (an external collaborator per the core's scope) against the
// same opcode bit-field convention the decoder itself uses.
func (c *Cpu) RegisterIndex(index uint8) *register.Register {
	return c.registerIndex(index)
}

// RegisterName exposes registerName to hosts building a register-dump
// formatter.
func (c *Cpu) RegisterName(reg *register.Register) string {
	return c.registerName(reg)
}

// operand8 resolves the three-bit register-or-memory field used by the
// LD r,r' and LD r,n8 handlers. When index is 6 ((HL)), isMem is
// true and the caller must read/write through HL instead of reg.
func (c *Cpu) operand8(index uint8) (reg *register.Register, isMem bool) {
	if index&0x7 == 6 {
		return nil, true
	}
	return c.registerIndex(index & 0x7), false
}

// get8 reads the value named by a three-bit register-or-memory field.
func (c *Cpu) get8(index uint8) uint8 {
	reg, isMem := c.operand8(index)
	if isMem {
		return c.readByte(c.HL.Uint16())
	}
	return *reg
}

// set8 writes the value named by a three-bit register-or-memory field.
func (c *Cpu) set8(index uint8, value uint8) {
	reg, isMem := c.operand8(index)
	if isMem {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*reg = value
}
