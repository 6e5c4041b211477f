// Command gbcore is a minimal front-end for the core: it loads a ROM
// image into a flat 64KiB address space, attaches a Cpu to it, and runs
// Step in a loop until the Cpu stops. It exists to exercise the core
// from the command line, not to emulate a real Game Boy's memory map.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ryanbujnowicz/gbemu/internal/cpu"
	"github.com/ryanbujnowicz/gbemu/internal/memory"
	"github.com/ryanbujnowicz/gbemu/pkg/log"
)

const addressSpaceSize = 1 << 16

var (
	verbose       = flag.Bool("verbose", false, "log instruction-level debug output")
	dumpRegisters = flag.Bool("dump-registers", false, "print register state on exit")
	dumpMemory    = flag.Bool("dump-memory", false, "print the full address space on exit")
)

func init() {
	flag.BoolVar(verbose, "v", false, "log instruction-level debug output (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input-rom>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	rom, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gbcore: %v\n", err)
		os.Exit(1)
	}

	logger := log.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	store := memory.NewMemoryStore(addressSpaceSize)
	store.SetLogger(logger)
	if err := loadROM(store, rom); err != nil {
		fmt.Fprintf(os.Stderr, "gbcore: %v\n", err)
		os.Exit(1)
	}

	c := cpu.NewCpu()
	c.SetLogger(logger)
	c.Attach(store)

	run(c)

	if *dumpRegisters {
		dumpRegisterState(c)
	}
	if *dumpMemory {
		dumpMemoryState(store)
	}
}

// loadROM installs rom at address 0, recovering the panic MemoryStore
// raises if the image doesn't fit the address space.
func loadROM(store *memory.MemoryStore, rom []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loading rom: %v", r)
		}
	}()
	store.Load(0, rom)
	return nil
}

// run steps the Cpu until it stops, recovering a fatal panic (an unknown
// opcode, an out-of-range access) into a reported exit rather than a
// crash.
func run(c *cpu.Cpu) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "gbcore: %v\n", r)
			os.Exit(1)
		}
	}()
	for !c.IsStopped() {
		c.Step()
	}
}

// dumpRegisterState prints a one-line register snapshot. Formatting
// belongs to a front-end, not the core; this is the simplest rendering
// that satisfies it.
func dumpRegisterState(c *cpu.Cpu) {
	fmt.Printf("AF=%04x BC=%04x DE=%04x HL=%04x SP=%04x PC=%04x IME=%t\n",
		c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP, c.PC, c.IME())
}

// dumpMemoryState prints the full address space as sixteen-byte rows.
func dumpMemoryState(store *memory.MemoryStore) {
	for addr := 0; addr < store.Size(); addr += 16 {
		fmt.Printf("%04x:", addr)
		for i := 0; i < 16 && addr+i < store.Size(); i++ {
			fmt.Printf(" %02x", store.Read(uint16(addr+i)))
		}
		fmt.Println()
	}
}
