package greenrt

// Semaphore is a counting semaphore whose count follows the convention
// "resources + (-1)*waiters": Wait decrements unconditionally and, when
// that drives count negative, parks until woken — being woken is itself
// the grant, count is never re-tested on resume. Post increments
// unconditionally and, when waiters exist, wakes exactly one. The two
// operations are internally consistent as long as every wake corresponds
// to exactly one prior "made negative" decrement, which FIFO ordering of
// wait/post guarantees.
//
// Grounded on the teacher's ThreadParker semaCount/CAS-retry shape
// (thread_parker.go), adapted from its lock-free park/ready pair to this
// package's scheduler-mediated sleep/wake.
type Semaphore struct {
	count   int64
	waiters waitQueue
}

// NewSemaphore returns a semaphore initialized to the given count.
func NewSemaphore(initial int64) *Semaphore {
	return &Semaphore{count: initial}
}

// Wait decrements count. If the result is negative, the caller parks and
// is granted the resource purely by being woken — it does not re-check
// count on resume.
func (s *Semaphore) Wait() {
	s.count--
	if s.count < 0 {
		self := rt.current
		s.waiters.enqueue(self.tid)
		self.state = Sleeping
		scheduleStep()
	}
}

// Post increments count and, if any task is waiting, wakes the head of
// the FIFO. Incrementing unconditionally and waking separately keeps the
// (count, waiters) pair consistent whether or not a waiter exists.
func (s *Semaphore) Post() {
	s.count++
	if tid, ok := s.waiters.dequeue(); ok {
		wake(tid)
	}
}
