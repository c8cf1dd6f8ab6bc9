package store

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs deferred work. Implementations must not block the caller.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// RealScheduler uses the runtime timers.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// ManualScheduler holds deferred work until Advance moves its clock forward.
// It lets tests observe the state between scheduling and completion.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []manualTask
}

type manualTask struct {
	at  time.Duration
	seq int
	f   func()
}

func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = append(m.tasks, manualTask{at: m.now + d, seq: m.seq, f: f})
	m.seq++
}

// Pending returns the number of tasks that have not run yet.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves the clock by d and runs every task that became due, earliest
// first. Tasks scheduled while advancing run too if they fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		sort.SliceStable(m.tasks, func(i, j int) bool {
			if m.tasks[i].at == m.tasks[j].at {
				return m.tasks[i].seq < m.tasks[j].seq
			}
			return m.tasks[i].at < m.tasks[j].at
		})
		if len(m.tasks) == 0 || m.tasks[0].at > target {
			m.now = target
			m.mu.Unlock()
			return ran
		}
		task := m.tasks[0]
		m.tasks = m.tasks[1:]
		m.now = task.at
		m.mu.Unlock()

		task.f()
		ran++
	}
}
