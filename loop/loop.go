// Package loop provides the per-frame work queue used by the scenes.
//
// Everything that touches three.js objects runs from Tick, which the
// animation loop calls once per frame. Work produced elsewhere (for example
// a finished font download) is handed over with Schedule.
package loop

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mokiat/lacking/util/async"
)

// Capacity is the number of callbacks the loop can hold between ticks.
// Schedule blocks once it is reached, so it must stay well above the
// work a single frame produces.
const Capacity = 1024

type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

type Loop struct {
	now    func() time.Time
	worker *async.Worker

	// queued counts callbacks handed to the worker and not yet run.
	queued atomic.Int64

	mu     sync.Mutex
	timers []timer
	seq    uint64
}

// New creates a Loop that reads time from now. A nil now uses time.Now.
func New(now func() time.Time) *Loop {
	if now == nil {
		now = time.Now
	}
	return &Loop{
		now:    now,
		worker: async.NewWorker(Capacity),
	}
}

// Schedule queues fn to run on the next Tick. Safe to call from any goroutine.
func (l *Loop) Schedule(fn func()) {
	l.queued.Add(1)
	l.worker.Schedule(func() {
		l.queued.Add(-1)
		fn()
	})
}

// After runs fn on the first Tick at or after d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.timers = append(l.timers, timer{
		due: l.now().Add(d),
		seq: l.seq,
		fn:  fn,
	})
}

// Pending reports the number of queued callbacks and timers.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.queued.Load()) + len(l.timers)
}

// Tick runs queued work first, then every due timer ordered by due time.
// Work queued or timers registered during Tick wait for the next one.
func (l *Loop) Tick() {
	for _, t := range l.takeDue() {
		l.Schedule(t.fn)
	}
	if count := l.queued.Load(); count > 0 {
		l.worker.ProcessCount(int(count))
	}
}

func (l *Loop) takeDue() []timer {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	var due []timer
	remaining := l.timers[:0]
	for _, t := range l.timers {
		if t.due.After(now) {
			remaining = append(remaining, t)
		} else {
			due = append(due, t)
		}
	}
	l.timers = slices.Clone(remaining)

	slices.SortFunc(due, func(a, b timer) int {
		if c := a.due.Compare(b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return due
}
