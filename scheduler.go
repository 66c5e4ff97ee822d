package greenrt

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

// runtimeState is the process-wide singleton the entire package operates
// against: the thread table, the current-task pointer, and the tid
// counter. It has a strict lifecycle — Init() then arbitrary use, no
// teardown — and, per the non-preemptive model, needs no locking of its
// own: every mutation happens between suspension points, exactly like the
// teacher's lock-free structures need no locking *because* of atomics,
// just a different reason (ours is cooperative scheduling, not atomics).
type runtimeState struct {
	table   [MaxThreads]Task
	current *Task
	nextTid int64 // atomic; issues 1, 2, 3, ... never reused
	once    sync.Once
}

var rt = &runtimeState{}

// Init adopts the host's current execution context as task 0 (the
// bootstrap task) and marks it Running. It must precede every other call
// into this package; behavior otherwise is undefined. Init is idempotent.
//
// It additionally pins the calling goroutine to its OS thread for the
// remaining lifetime of the process. The package's "single execution
// context" model requires that the physical stack being manually swapped
// by switchTo stays on one OS thread throughout — if the Go scheduler ever
// migrated this goroutine to a different thread between two switchTo
// calls, the hand-primed stacks would be swapped in on the wrong thread.
func Init() {
	rt.once.Do(func() {
		runtime.LockOSThread()
		for i := range rt.table {
			rt.table[i].reset()
		}
		boot := &rt.table[0]
		boot.tid = 0
		boot.state = Running
		boot.joinedTid = noTid
		rt.current = boot
		atomic.StoreInt64(&rt.nextTid, 1)
	})
}

func issueTid() int64 {
	return atomic.AddInt64(&rt.nextTid, 1) - 1
}

// slotIndex returns the index of t's slot. Task pointers handed out by
// this package always point into rt.table, so pointer arithmetic is
// sound.
func slotIndex(t *Task) int {
	base := uintptr(unsafe.Pointer(&rt.table[0]))
	p := uintptr(unsafe.Pointer(t))
	return int((p - base) / unsafe.Sizeof(rt.table[0]))
}

// pick implements the round-robin picker: starting just after the current
// slot, scan forward (wrapping) through every slot and return the first
// Runnable one. If none but the current slot is Runnable, return it. If
// nothing is runnable at all, return nil — the caller's schedule step
// handles that (it occurs only transiently during wake sequences).
func pick() *Task {
	cur := slotIndex(rt.current)
	for step := 1; step <= MaxThreads; step++ {
		i := (cur + step) % MaxThreads
		if i == cur {
			if rt.table[i].state == Runnable {
				return &rt.table[i]
			}
			continue
		}
		if rt.table[i].state == Runnable {
			return &rt.table[i]
		}
	}
	return nil
}

// scheduleStep selects the next task to run and, if it differs from the
// current one, performs the context switch. This is the only function in
// the package that ever calls switchTo. It is invoked from exactly the
// scheduling points named in spec: explicit Yield, the retry loop of a
// blocking primitive after the caller has marked itself Sleeping, Exit
// after publishing its Zombie state, and Join's wait loop.
func scheduleStep() {
	old := rt.current
	next := pick()
	if next == nil {
		// Every task is Sleeping or Zombie with the current task not
		// Runnable either; there is nothing to hand control to. This can
		// only happen transiently inside a wake sequence (the waker
		// hasn't reached its own scheduling point yet) — the spec
		// reserves this as "return to caller without switching".
		return
	}
	if old.state == Running {
		old.state = Runnable
	}
	next.state = Running
	rt.current = next
	if old != next {
		switchTo(&old.sp, &next.sp)
	}
}

// wake transitions the single Sleeping slot whose tid equals tid to
// Runnable. It does not invoke the scheduler: the caller (the "waker")
// keeps running until it reaches its own next scheduling point. This
// bounds context switches per primitive operation and is what lets a
// primitive's entire critical section finish before any woken task can
// observe it.
func wake(tid int64) {
	for i := range rt.table {
		if rt.table[i].tid == tid && rt.table[i].state == Sleeping {
			rt.table[i].state = Runnable
			return
		}
	}
}

func findTask(tid int64) *Task {
	for i := range rt.table {
		if rt.table[i].tid == tid && rt.table[i].state != Unused {
			return &rt.table[i]
		}
	}
	return nil
}
