package greenrt

import "errors"

// Sentinel errors for the kinds enumerated in the runtime's error taxonomy.
// ProgrammerError conditions (unlock of an unowned mutex, cond.Wait without
// holding the mutex, double-join, yielding before Init) are, per spec, not
// reportable: the first is logged and ignored, the rest are undefined
// behavior and have no sentinel.
var (
	// ErrOutOfSlots is returned by Create when the thread table is full.
	ErrOutOfSlots = errors.New("greenrt: task table full")

	// ErrNoSuchTask is returned by Join when tid names no live task.
	ErrNoSuchTask = errors.New("greenrt: no such task")

	// ErrClosed is returned by Send on a closed channel, by Recv on a
	// closed-and-drained channel, and by Select once every channel it polls
	// is closed and drained.
	ErrClosed = errors.New("greenrt: channel closed")

	// ErrOutOfMemory is returned by NewChannel on allocation failure, or on
	// a non-positive capacity, since a capacityless channel cannot buffer
	// anything the spec requires it to.
	ErrOutOfMemory = errors.New("greenrt: channel allocation failed")
)
