// Package register provides the GB register primitives: a plain 8-bit
// Register, a RegisterPair view combining two of them into a 16-bit value,
// and the Registers struct holding the whole register file.
package register

// Register holds an 8-bit value. The CPU has eight of them: A, B, C, D, E,
// F, H, and L. F is special in that only its top nibble is meaningful (it
// holds the flags).
type Register = uint8

// RegisterPair is a 16-bit view over two Registers. High is the most
// significant byte, Low the least significant, matching the GB convention
// that AF/BC/DE/HL all name their high half first.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair's current value.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 writes value into the pair, updating both halves.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers is the GB CPU's register file: eight 8-bit registers plus four
// 16-bit paired views over them. SP and PC are not part of this struct;
// they live directly on the CPU.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// Wire points the four register pairs at this struct's own fields. It must
// be called once after a Registers value is created, since RegisterPair
// holds pointers into the struct it belongs to.
func (r *Registers) Wire() {
	r.AF = &RegisterPair{&r.A, &r.F}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
}

// Reset zeroes every register and re-wires the pairs.
func (r *Registers) Reset() {
	*r = Registers{}
	r.Wire()
}
