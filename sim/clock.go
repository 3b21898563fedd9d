package sim

// clockReplacer is the second-chance policy: a reference bit per slot and a
// single hand that sweeps the slots circularly.
//
// The hand only moves during an eviction scan. Filling empty slots at start-up
// leaves it at slot 0, so the first scan always begins there regardless of
// which slot was filled last. Some textbook variants advance the hand on every
// load; this one does not.
type clockReplacer struct {
	referenced []bool
	hand       int
}

func newClockReplacer(frames *frameSet, _ []PageID) replacer {
	return &clockReplacer{referenced: make([]bool, len(frames.slots))}
}

func (c *clockReplacer) touch(slot int) {
	c.referenced[slot] = true
}

func (c *clockReplacer) admit(slot int) {
	c.referenced[slot] = true
}

// victim clears set bits until it finds a clear one, which it evicts.
// Terminates within two sweeps since every inspected bit is cleared.
func (c *clockReplacer) victim(int) (int, string) {
	n := len(c.referenced)
	for {
		slot := c.hand
		c.hand = (c.hand + 1) % n
		if !c.referenced[slot] {
			return slot, "reference bit clear"
		}
		c.referenced[slot] = false
	}
}
