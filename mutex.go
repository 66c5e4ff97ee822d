package greenrt

import "log"

// Mutex is a non-reentrant lock whose blocking path is built entirely on
// the scheduler's block/wake discipline — there is no spinning, no OS
// futex, nothing outside this package's own state machine.
//
// Grounded on the teacher's ThreadParker: a single owner, a FIFO of
// parked waiters, "append self then sleep" on the blocking path, "dequeue
// head then wake" on the releasing path.
type Mutex struct {
	locked bool
	owner  int64
	waiters waitQueue
}

// NewMutex returns an unlocked mutex.
func NewMutex() *Mutex {
	return &Mutex{owner: noTid}
}

// Lock blocks until the mutex is free, then takes it. Blocked callers
// queue in FIFO arrival order and Unlock wakes the head of the queue. The
// wake is not a handoff: the woken task re-tests locked when it next runs,
// and if another task (including the one that just unlocked) has taken the
// mutex in the meantime, it queues again at the tail, so acquisition order
// can differ from arrival order.
func (m *Mutex) Lock() {
	self := rt.current
	for m.locked {
		m.waiters.enqueue(self.tid)
		self.state = Sleeping
		scheduleStep()
	}
	m.locked = true
	m.owner = self.tid
}

// Unlock releases the mutex. A caller that does not hold the mutex is a
// programming error; per spec this is silently ignored (after a log line)
// rather than aborting the process.
func (m *Mutex) Unlock() {
	self := rt.current
	if m.owner != self.tid {
		log.Printf("greenrt: mutex unlock by non-owner tid=%d owner=%d", self.tid, m.owner)
		return
	}
	if tid, ok := m.waiters.dequeue(); ok {
		wake(tid)
	}
	m.locked = false
	m.owner = noTid
}
