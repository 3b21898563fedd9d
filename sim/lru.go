package sim

// lruReplacer keeps slots in recency order, most recently used at the tail.
type lruReplacer struct {
	order []int
}

func newLRUReplacer(frames *frameSet, _ []PageID) replacer {
	return &lruReplacer{order: make([]int, 0, len(frames.slots))}
}

func (l *lruReplacer) touch(slot int) {
	for i, s := range l.order {
		if s == slot {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.order = append(l.order, slot)
}

func (l *lruReplacer) admit(slot int) {
	l.order = append(l.order, slot)
}

func (l *lruReplacer) victim(int) (int, string) {
	slot := l.order[0]
	l.order = l.order[1:]
	return slot, "least recently used"
}
