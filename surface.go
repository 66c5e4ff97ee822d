package greenrt

// Create locates the lowest-index Unused slot, assigns it the next
// monotonic tid, primes its stack so the trampoline runs entry(arg), and
// marks it Runnable. No context switch occurs; the new task does not run
// until the scheduler picks it.
func Create(entry func(arg any) any, arg any) (int64, error) {
	var slot *Task
	for i := range rt.table {
		if rt.table[i].state == Unused {
			slot = &rt.table[i]
			break
		}
	}
	if slot == nil {
		return -1, ErrOutOfSlots
	}

	slot.tid = issueTid()
	slot.state = Runnable
	slot.joinedTid = noTid
	slot.retval = nil
	slot.hasExit = false
	slot.entry = entry
	slot.arg = arg

	primeTaskStack(slot)

	return slot.tid, nil
}

// Exit stores retval into the current task's record, marks it Zombie,
// wakes every task that had joined it, and hands control to the
// scheduler. It never returns to its caller.
func Exit(retval any) {
	self := rt.current
	self.retval = retval
	self.hasExit = true
	self.state = Zombie

	myTid := self.tid
	for i := range rt.table {
		candidate := &rt.table[i]
		if candidate.state == Sleeping && candidate.joinedTid == myTid {
			candidate.joinedTid = noTid
			candidate.state = Runnable
		}
	}

	scheduleStep()

	// scheduleStep only returns here if no runnable task was found, which
	// means every task is Sleeping or Zombie: the process has deadlocked.
	// The spec leaves this undefined; we simply never return, honoring
	// "exit does not return".
	select {}
}

// Join blocks the caller until the task named by tid reaches Zombie, then
// returns its retval and frees the slot. Joining a task that already has
// a joiner, or a tid that was never issued or has already been joined, is
// undefined per spec save for the one reportable case: no slot at all
// matches tid.
func Join(tid int64) (any, error) {
	target := findTask(tid)
	if target == nil {
		return nil, ErrNoSuchTask
	}

	self := rt.current
	for target.state != Zombie {
		self.joinedTid = tid
		self.state = Sleeping
		scheduleStep()
	}

	retval := target.retval
	target.reset()
	return retval, nil
}

// Self returns the current task's tid.
func Self() int64 {
	return rt.current.tid
}

// Yield voluntarily gives up the remainder of the current task's turn.
// After it returns, zero or more other runnable tasks have each run until
// their own next scheduling point; the caller never observes a partial
// critical section of another task, because no task's critical sections
// span a scheduling point.
func Yield() {
	rt.current.state = Runnable
	scheduleStep()
}
