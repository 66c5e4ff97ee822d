package greenrt

import "math"

// Select polls multiple channels and returns a value from whichever is
// ready and has the fewest cumulative reads so far — the same
// least-recently-served fairness rule as the teacher's own Select
// (selector.go): no single channel is starved by always favoring the
// first-listed ready one.
//
// Unlike the teacher's version, which busy-polls via runtime.Gosched()
// because it arbitrates real goroutines, this Select yields through this
// package's own scheduler: when nothing is ready it calls Yield so other
// tasks in this runtime get their turn, the same way every other blocking
// operation here suspends.
//
// Select returns ErrClosed only once every supplied channel is both
// closed and drained; a single exhausted channel among several live ones
// is simply skipped.
func Select(channels ...Selectable) (any, int, error) {
	for {
		leastReads := uint64(math.MaxUint64)
		winner := -1
		allExhausted := true

		for i, ch := range channels {
			reads, ready, exhausted := ch.check()
			if !exhausted {
				allExhausted = false
			}
			if ready && reads < leastReads {
				leastReads = reads
				winner = i
			}
		}

		if winner >= 0 {
			return channels[winner].poll(), winner, nil
		}
		if allExhausted {
			return nil, -1, ErrClosed
		}
		Yield()
	}
}
