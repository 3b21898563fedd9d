package sim

// fifoReplacer evicts in admission order. Hits do not reorder the queue.
type fifoReplacer struct {
	queue []int // slots, oldest admission first
}

func newFIFOReplacer(frames *frameSet, _ []PageID) replacer {
	return &fifoReplacer{queue: make([]int, 0, len(frames.slots))}
}

func (f *fifoReplacer) touch(int) {}

func (f *fifoReplacer) admit(slot int) {
	f.queue = append(f.queue, slot)
}

func (f *fifoReplacer) victim(int) (int, string) {
	slot := f.queue[0]
	f.queue = f.queue[1:]
	return slot, "oldest admitted"
}
