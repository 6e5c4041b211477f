// Package memory provides the byte-addressable store abstractions the CPU
// core executes against: a flat MemoryStore and an AddressRouter that
// composes several stores behind non-overlapping address ranges.
package memory

import (
	"fmt"

	"github.com/ryanbujnowicz/gbemu/pkg/log"
)

// Memory is the capability surface the CPU (and the AddressRouter itself)
// demands from anything it reads and writes.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	IsValid(addr uint16) bool
}

// ErrInvalidAddress is panicked when a read or write targets an address
// outside a store's valid range.
type ErrInvalidAddress struct {
	Address uint16
	Size    int
}

func (e ErrInvalidAddress) Error() string {
	return fmt.Sprintf("memory: address %#04x out of range [0, %#04x)", e.Address, e.Size)
}

// MemoryStore is a fixed-size, flat block of bytes.
type MemoryStore struct {
	data []byte
	log  log.Logger
}

// NewMemoryStore allocates a zeroed store of the given size, with a logger
// that discards everything until SetLogger is called.
func NewMemoryStore(size int) *MemoryStore {
	return &MemoryStore{data: make([]byte, size), log: log.NewNullLogger()}
}

// SetLogger installs the logger the store reports fatal conditions through.
func (m *MemoryStore) SetLogger(l log.Logger) {
	m.log = l
}

// Size returns the number of bytes the store holds.
func (m *MemoryStore) Size() int {
	return len(m.data)
}

// IsValid reports whether addr names a byte within the store.
func (m *MemoryStore) IsValid(addr uint16) bool {
	return int(addr) < len(m.data)
}

// Read returns the byte at addr. Reading outside the store is a fatal
// programming error.
func (m *MemoryStore) Read(addr uint16) uint8 {
	if !m.IsValid(addr) {
		m.log.Errorf("read at invalid address %#04x (size %#04x)", addr, len(m.data))
		panic(ErrInvalidAddress{Address: addr, Size: len(m.data)})
	}
	return m.data[addr]
}

// Write stores value at addr. Writing outside the store is a fatal
// programming error.
func (m *MemoryStore) Write(addr uint16, value uint8) {
	if !m.IsValid(addr) {
		m.log.Errorf("write at invalid address %#04x (size %#04x)", addr, len(m.data))
		panic(ErrInvalidAddress{Address: addr, Size: len(m.data)})
	}
	m.data[addr] = value
}

// Load copies data into the store starting at offset. It is the plain
// byte-copy a ROM loader (an external collaborator) would call into; it
// carries no cartridge or header semantics of its own. Data that would run
// past the end of the store is a fatal programming error.
func (m *MemoryStore) Load(offset uint16, data []byte) {
	if int(offset)+len(data) > len(m.data) {
		m.log.Errorf("load of %d bytes at %#04x overruns size %#04x", len(data), offset, len(m.data))
		panic(fmt.Errorf("memory: load of %d bytes at %#04x overruns store of size %#04x", len(data), offset, len(m.data)))
	}
	for i, b := range data {
		m.Write(offset+uint16(i), b)
	}
}

var _ Memory = (*MemoryStore)(nil)
