package system

import (
	"container/heap"
	"sort"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// TimerKey identifies a pending timer. Each entity has at most one pending
// timer per tag.
type TimerKey struct {
	Owner entity.EntityID
	Tag   string
}

// Timer is a fired or pending one-shot timer.
type Timer struct {
	TimerKey
	Due float64
}

type timerEntry struct {
	Timer
	seq uint64
}

// timerHeap orders entries by due time, then owner, then tag.
type timerHeap []timerEntry

func (h timerHeap) Len() int            { return len(h) }
func (h timerHeap) Less(i, j int) bool  { return timerLess(h[i].Timer, h[j].Timer) }
func (h timerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x interface{}) { *h = append(*h, x.(timerEntry)) }
func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func timerLess(a, b Timer) bool {
	if a.Due != b.Due {
		return a.Due < b.Due
	}
	if a.Owner != b.Owner {
		return a.Owner < b.Owner
	}
	return a.Tag < b.Tag
}

// Timers is the scene-owned one-shot timer table. Scheduling a key that is
// already pending replaces it; replaced entries stay in the heap and are
// skipped when popped.
type Timers struct {
	queue   timerHeap
	pending map[TimerKey]uint64
	seq     uint64
}

// NewTimers creates an empty timer table.
func NewTimers() *Timers {
	return &Timers{pending: make(map[TimerKey]uint64)}
}

// Schedule arms (owner, tag) to fire at due.
func (t *Timers) Schedule(owner entity.EntityID, tag string, due float64) {
	t.seq++
	key := TimerKey{Owner: owner, Tag: tag}
	t.pending[key] = t.seq
	heap.Push(&t.queue, timerEntry{Timer: Timer{TimerKey: key, Due: due}, seq: t.seq})
}

// Cancel disarms (owner, tag). It reports whether a timer was pending.
func (t *Timers) Cancel(owner entity.EntityID, tag string) bool {
	key := TimerKey{Owner: owner, Tag: tag}
	if _, ok := t.pending[key]; !ok {
		return false
	}
	delete(t.pending, key)
	return true
}

// DropOwner cancels every timer of owner.
func (t *Timers) DropOwner(owner entity.EntityID) {
	for key := range t.pending {
		if key.Owner == owner {
			delete(t.pending, key)
		}
	}
}

// Pending returns the due time of (owner, tag).
func (t *Timers) Pending(owner entity.EntityID, tag string) (float64, bool) {
	seq, ok := t.pending[TimerKey{Owner: owner, Tag: tag}]
	if !ok {
		return 0, false
	}
	for _, e := range t.queue {
		if e.seq == seq {
			return e.Due, true
		}
	}
	return 0, false
}

// Len returns the number of pending timers.
func (t *Timers) Len() int {
	return len(t.pending)
}

// CountFor returns the number of pending timers of owner.
func (t *Timers) CountFor(owner entity.EntityID) int {
	n := 0
	for key := range t.pending {
		if key.Owner == owner {
			n++
		}
	}
	return n
}

// Due removes and returns every timer due at now, sorted by due time,
// owner and tag.
func (t *Timers) Due(now float64) []Timer {
	var fired []Timer
	for t.queue.Len() > 0 && t.queue[0].Due <= now+geom.Epsilon {
		e := heap.Pop(&t.queue).(timerEntry)
		if seq, ok := t.pending[e.TimerKey]; !ok || seq != e.seq {
			continue
		}
		delete(t.pending, e.TimerKey)
		fired = append(fired, e.Timer)
	}
	sort.SliceStable(fired, func(i, j int) bool { return timerLess(fired[i], fired[j]) })
	return fired
}
