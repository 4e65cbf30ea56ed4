// Package frame schedules per-frame callbacks, the desktop counterpart of
// a browser's animation frame requests.
package frame

// ID identifies a pending frame request. The zero ID is never issued.
type ID uint64

// Scheduler hands out at most one invocation per request.
type Scheduler interface {
	Request(cb func()) ID
	Cancel(id ID)
}

type request struct {
	id ID
	cb func()
}

// Queue is a Scheduler driven by explicit ticks. Ebiten's Update calls Tick
// once per frame.
type Queue struct {
	last    ID
	pending []request
	live    map[ID]struct{}
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{live: make(map[ID]struct{})}
}

// Request queues cb for the next tick.
func (q *Queue) Request(cb func()) ID {
	q.last++
	id := q.last
	q.pending = append(q.pending, request{id: id, cb: cb})
	q.live[id] = struct{}{}
	return id
}

// Cancel drops a pending request. Unknown or already-run IDs are ignored.
func (q *Queue) Cancel(id ID) {
	delete(q.live, id)
}

// Tick runs every request that was pending when it was called, in request
// order. Requests made by those callbacks wait for the next tick. It returns
// the number of callbacks run.
func (q *Queue) Tick() int {
	batch := q.pending
	q.pending = nil
	ran := 0
	for _, r := range batch {
		if _, ok := q.live[r.id]; !ok {
			continue
		}
		delete(q.live, r.id)
		r.cb()
		ran++
	}
	return ran
}

// Pending returns the number of live requests.
func (q *Queue) Pending() int {
	return len(q.live)
}
