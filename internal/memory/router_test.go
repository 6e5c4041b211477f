package memory

import "testing"

func TestAddressRouter_MapAndAccess(t *testing.T) {
	r := NewAddressRouter()
	rom := NewMemoryStore(0x100)
	ram := NewMemoryStore(0x80)

	if err := r.Map(rom, Range{0, 0x100}, Range{0, 0x100}); err != nil {
		t.Fatalf("unexpected error mapping rom: %v", err)
	}
	if err := r.Map(ram, Range{0, 0x80}, Range{0x100, 0x180}); err != nil {
		t.Fatalf("unexpected error mapping ram: %v", err)
	}

	r.Write(0x10, 0x42)
	if got := rom.Read(0x10); got != 0x42 {
		t.Errorf("expected write through the router to land on the rom store, got %#02x", got)
	}

	r.Write(0x110, 0x99)
	if got := ram.Read(0x10); got != 0x99 {
		t.Errorf("expected write at local 0x110 to land at ram offset 0x10, got %#02x", got)
	}
}

func TestAddressRouter_MismatchedRangeSize(t *testing.T) {
	r := NewAddressRouter()
	store := NewMemoryStore(0x100)
	err := r.Map(store, Range{0, 0x80}, Range{0, 0x100})
	if _, ok := err.(ErrMismatchedRangeSize); !ok {
		t.Errorf("expected ErrMismatchedRangeSize, got %v", err)
	}
}

func TestAddressRouter_OverlappingMap(t *testing.T) {
	r := NewAddressRouter()
	a := NewMemoryStore(0x100)
	b := NewMemoryStore(0x100)

	if err := r.Map(a, Range{0, 0x100}, Range{0, 0x100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Map(b, Range{0, 0x100}, Range{0x80, 0x180})
	if _, ok := err.(ErrOverlappingMap); !ok {
		t.Errorf("expected ErrOverlappingMap, got %v", err)
	}
}

func TestAddressRouter_UnmappedAddressPanics(t *testing.T) {
	r := NewAddressRouter()
	defer func() {
		if rec := recover(); rec == nil {
			t.Errorf("expected Read of an unmapped address to panic")
		}
	}()
	r.Read(0x10)
}

func TestAddressRouter_UnmappedAddressLogsError(t *testing.T) {
	r := NewAddressRouter()
	spy := &spyLogger{}
	r.SetLogger(spy)
	defer func() {
		if rec := recover(); rec == nil {
			t.Errorf("expected Read of an unmapped address to panic")
		}
		if spy.errors != 1 {
			t.Errorf("expected 1 logged error, got %d", spy.errors)
		}
	}()
	r.Read(0x10)
}

func TestAddressRouter_OverlappingMapLogsWarn(t *testing.T) {
	r := NewAddressRouter()
	spy := &spyLogger{}
	r.SetLogger(spy)
	a := NewMemoryStore(0x100)
	b := NewMemoryStore(0x100)

	if err := r.Map(a, Range{0, 0x100}, Range{0, 0x100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = r.Map(b, Range{0, 0x100}, Range{0x80, 0x180})
	if spy.warns != 1 {
		t.Errorf("expected 1 logged warning, got %d", spy.warns)
	}
}

func TestAddressRouter_IsValid(t *testing.T) {
	r := NewAddressRouter()
	store := NewMemoryStore(0x10)
	_ = r.Map(store, Range{0, 0x10}, Range{0x1000, 0x1010})

	if !r.IsValid(0x1005) {
		t.Errorf("expected 0x1005 to be valid")
	}
	if r.IsValid(0x2000) {
		t.Errorf("expected 0x2000 to be invalid")
	}
}
