package cpu

import "testing"

func TestFlag(t *testing.T) {
	c = NewCpu()

	t.Run("clear", func(t *testing.T) {
		for f := FlagCarry; f <= FlagZero; f++ {
			c.clearFlag(f)
			if c.isFlagSet(f) {
				t.Errorf("expected flag %d to be unset, got set", f)
			}
		}
	})
	t.Run("set", func(t *testing.T) {
		for f := FlagCarry; f <= FlagZero; f++ {
			c.setFlag(f)
			if !c.isFlagSet(f) {
				t.Errorf("expected flag %d to be set, got unset", f)
			}
		}
	})
	t.Run("setFlags", func(t *testing.T) {
		c.setFlags(true, false, true, false)
		if c.Flag(FlagZero) != 1 || c.Flag(FlagSubtract) != 0 || c.Flag(FlagHalfCarry) != 1 || c.Flag(FlagCarry) != 0 {
			t.Errorf("expected Z=1 N=0 H=1 C=0, got F=%#02x", c.F)
		}
	})
	t.Run("isFlagsSet requires all", func(t *testing.T) {
		c.clearFlag(FlagZero)
		c.setFlag(FlagCarry)
		if c.isFlagsSet(FlagZero, FlagCarry) {
			t.Errorf("expected isFlagsSet to require every flag set")
		}
		c.setFlag(FlagZero)
		if !c.isFlagsSet(FlagZero, FlagCarry) {
			t.Errorf("expected isFlagsSet to report true once every flag is set")
		}
	})
}
