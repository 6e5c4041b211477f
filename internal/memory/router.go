package memory

import (
	"fmt"

	"github.com/ryanbujnowicz/gbemu/pkg/log"
)

// Range is an inclusive-low, exclusive-high span of addresses, [Lo, Hi).
type Range struct {
	Lo uint16
	Hi uint16
}

// Size returns the number of addresses the range covers.
func (r Range) Size() int {
	return int(r.Hi) - int(r.Lo)
}

// Contains reports whether addr falls within the range.
func (r Range) Contains(addr uint16) bool {
	return addr >= r.Lo && addr < r.Hi
}

// ErrMismatchedRangeSize is returned by Map when the target and local
// ranges don't cover the same number of addresses.
type ErrMismatchedRangeSize struct {
	Target Range
	Local  Range
}

func (e ErrMismatchedRangeSize) Error() string {
	return fmt.Sprintf("router: target range %v (size %d) does not match local range %v (size %d)",
		e.Target, e.Target.Size(), e.Local, e.Local.Size())
}

// ErrOverlappingMap is returned by Map when the new local range overlaps
// one already registered.
type ErrOverlappingMap struct {
	New      Range
	Existing Range
}

func (e ErrOverlappingMap) Error() string {
	return fmt.Sprintf("router: local range %v overlaps existing mapping %v", e.New, e.Existing)
}

// ErrUnmappedAddress is panicked when a read or write targets an address
// not covered by any registered mapping.
type ErrUnmappedAddress struct {
	Address uint16
}

func (e ErrUnmappedAddress) Error() string {
	return fmt.Sprintf("router: address %#04x is not mapped", e.Address)
}

type mapEntry struct {
	backing Memory
	target  Range
	local   Range
}

// AddressRouter is a static address-decoding layer that composes several
// backing stores behind non-overlapping local ranges. It is not a general
// virtual-memory engine: the number of regions is small (single digits),
// so lookup is a linear scan in registration order.
type AddressRouter struct {
	entries []mapEntry
	log     log.Logger
}

// NewAddressRouter returns an empty router with no mappings, and a logger
// that discards everything until SetLogger is called.
func NewAddressRouter() *AddressRouter {
	return &AddressRouter{log: log.NewNullLogger()}
}

// SetLogger installs the logger the router reports fatal conditions
// through.
func (r *AddressRouter) SetLogger(l log.Logger) {
	r.log = l
}

// Map registers a mapping from localRange (the router's own address space)
// to targetRange (the backing store's address space). The two ranges must
// be the same size, and localRange must not overlap any range already
// registered. The caller retains ownership of backing.
func (r *AddressRouter) Map(backing Memory, targetRange, localRange Range) error {
	if targetRange.Size() != localRange.Size() {
		r.log.Warnf("mismatched range size: target %v local %v", targetRange, localRange)
		return ErrMismatchedRangeSize{Target: targetRange, Local: localRange}
	}
	for _, e := range r.entries {
		if e.local.Contains(localRange.Lo) || e.local.Contains(localRange.Hi-1) ||
			localRange.Contains(e.local.Lo) {
			r.log.Warnf("overlapping map: new %v existing %v", localRange, e.local)
			return ErrOverlappingMap{New: localRange, Existing: e.local}
		}
	}
	r.entries = append(r.entries, mapEntry{backing: backing, target: targetRange, local: localRange})
	return nil
}

// lookup returns the mapping entry covering addr, or nil if none does.
func (r *AddressRouter) lookup(addr uint16) *mapEntry {
	for i := range r.entries {
		if r.entries[i].local.Contains(addr) {
			return &r.entries[i]
		}
	}
	return nil
}

// IsValid reports whether addr is covered by some registered mapping.
func (r *AddressRouter) IsValid(addr uint16) bool {
	return r.lookup(addr) != nil
}

// Read delegates to the backing store covering addr. An access to an
// unmapped address is a fatal programming error.
func (r *AddressRouter) Read(addr uint16) uint8 {
	e := r.lookup(addr)
	if e == nil {
		r.log.Errorf("read at unmapped address %#04x", addr)
		panic(ErrUnmappedAddress{Address: addr})
	}
	return e.backing.Read(e.target.Lo + (addr - e.local.Lo))
}

// Write delegates to the backing store covering addr. An access to an
// unmapped address is a fatal programming error.
func (r *AddressRouter) Write(addr uint16, value uint8) {
	e := r.lookup(addr)
	if e == nil {
		r.log.Errorf("write at unmapped address %#04x", addr)
		panic(ErrUnmappedAddress{Address: addr})
	}
	e.backing.Write(e.target.Lo+(addr-e.local.Lo), value)
}

var _ Memory = (*AddressRouter)(nil)
