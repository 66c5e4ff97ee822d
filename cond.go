package greenrt

// Cond is a condition variable: a bare FIFO wait list with no internal
// predicate state of its own. Callers hold an associated Mutex while
// testing their predicate and while calling Wait; Mesa semantics apply —
// a woken waiter must re-test its predicate after Wait returns, since
// Signal does not hand off m and a racing non-waiter may seize it first.
type Cond struct {
	waiters waitQueue
}

// NewCond returns an empty condition variable.
func NewCond() *Cond {
	return &Cond{}
}

// Wait atomically (with respect to other tasks, by the no-preemption
// invariant) enqueues the caller, releases m, and suspends it. The
// sequence "enqueue, unlock m, mark sleeping, schedule" runs without any
// other task executing between its steps — that is what makes "atomic
// unlock-and-suspend" true here despite being three separate statements.
// The caller must hold m; Wait re-locks m before returning.
func (c *Cond) Wait(m *Mutex) {
	self := rt.current
	c.waiters.enqueue(self.tid)
	m.Unlock()
	self.state = Sleeping
	scheduleStep()
	m.Lock()
}

// Signal wakes the single longest-waiting task, if any. The woken task
// re-enters m's lock loop on its own; Signal does not transfer ownership
// of any mutex.
func (c *Cond) Signal() {
	if tid, ok := c.waiters.dequeue(); ok {
		wake(tid)
	}
}

// Broadcast wakes every currently waiting task. After it returns, the
// wait list is empty.
func (c *Cond) Broadcast() {
	for {
		if tid, ok := c.waiters.dequeue(); ok {
			wake(tid)
			continue
		}
		break
	}
}
