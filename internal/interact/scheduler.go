package interact

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs fn once after d. The returned func cancels it if it has
// not fired yet.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// RealScheduler schedules on the wall clock.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ManualScheduler fires tasks only when the clock is advanced. Tasks run
// on the goroutine calling Advance, in due order.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	due      time.Duration
	seq      int
	fn       func()
	canceled bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return func() {
		m.mu.Lock()
		t.canceled = true
		m.mu.Unlock()
	}
}

// Advance moves the clock forward by d and runs every task that came due,
// including tasks scheduled by those tasks.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.nextDue(target)
		if t == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = t.due
		m.mu.Unlock()
		t.fn()
	}
}

// Pending reports how many tasks are waiting.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

func (m *ManualScheduler) nextDue(target time.Duration) *manualTask {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.canceled {
			live = append(live, t)
		}
	}
	m.tasks = live
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	if len(m.tasks) == 0 || m.tasks[0].due > target {
		return nil
	}
	t := m.tasks[0]
	m.tasks = m.tasks[1:]
	return t
}
