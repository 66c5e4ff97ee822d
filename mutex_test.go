package greenrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRaceFreeCounter implements spec §8 scenario 1: three tasks each run
// 1000 iterations of {lock; t := shared; yield; shared = t+1; unlock}.
// Final shared must equal 3000 — yield genuinely interleaves inside the
// critical section, and the lock is the only thing preventing a lost
// update.
func TestRaceFreeCounter(t *testing.T) {
	const iterations = 1000
	const workers = 3

	m := NewMutex()
	shared := 0
	done := NewSemaphore(0)

	var tids []int64
	for w := 0; w < workers; w++ {
		tid, err := Create(func(arg any) any {
			for i := 0; i < iterations; i++ {
				m.Lock()
				v := shared
				Yield()
				shared = v + 1
				m.Unlock()
			}
			done.Post()
			return nil
		}, nil)
		require.NoError(t, err)
		tids = append(tids, tid)
	}

	for w := 0; w < workers; w++ {
		done.Wait()
	}
	for _, tid := range tids {
		_, _ = Join(tid)
	}

	assert.Equal(t, iterations*workers, shared)
}

// TestMutexFIFO implements the Mutex FIFO law: if A then B then C block on
// a locked mutex, they acquire it in that order when no other task takes
// the mutex between their wakeups.
func TestMutexFIFO(t *testing.T) {
	m := NewMutex()
	m.Lock()

	var order []string
	release := NewSemaphore(0)

	spawn := func(name string) int64 {
		tid, err := Create(func(arg any) any {
			m.Lock()
			order = append(order, name)
			m.Unlock()
			release.Post()
			return nil
		}, nil)
		require.NoError(t, err)
		return tid
	}

	tidA := spawn("A")
	Yield() // let A run up to its blocking Lock() and enqueue
	tidB := spawn("B")
	Yield()
	tidC := spawn("C")
	Yield()

	m.Unlock()

	release.Wait()
	release.Wait()
	release.Wait()

	_, _ = Join(tidA)
	_, _ = Join(tidB)
	_, _ = Join(tidC)

	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestUnlockByNonOwnerIsIgnored(t *testing.T) {
	m := NewMutex()
	m.Lock()

	tid, err := Create(func(arg any) any {
		m.Unlock() // not the owner; must be a silent no-op
		return nil
	}, nil)
	require.NoError(t, err)
	_, _ = Join(tid)

	assert.True(t, m.locked)
	m.Unlock()
	assert.False(t, m.locked)
}
