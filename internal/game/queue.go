package game

// PipeQueue is a FIFO of pipes ordered oldest (leftmost) first.
// Pipes are only appended at the back and removed from the front.
type PipeQueue struct {
	items []Pipe
	head  int
}

// Len returns the number of queued pipes.
func (q *PipeQueue) Len() int {
	return len(q.items) - q.head
}

// PushBack appends the newest pipe.
func (q *PipeQueue) PushBack(p Pipe) {
	q.items = append(q.items, p)
}

// PopFront removes and returns the oldest pipe.
func (q *PipeQueue) PopFront() (Pipe, bool) {
	if q.Len() == 0 {
		return Pipe{}, false
	}
	p := q.items[q.head]
	q.items[q.head] = Pipe{}
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head > len(q.items)/2:
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return p, true
}

// Front returns the oldest pipe.
func (q *PipeQueue) Front() (Pipe, bool) {
	if q.Len() == 0 {
		return Pipe{}, false
	}
	return q.items[q.head], true
}

// Back returns the newest pipe.
func (q *PipeQueue) Back() (Pipe, bool) {
	if q.Len() == 0 {
		return Pipe{}, false
	}
	return q.items[len(q.items)-1], true
}

// Slice returns the queued pipes oldest first. The slice aliases the queue,
// so element writes update the queued pipes. It is invalidated by PushBack
// and PopFront.
func (q *PipeQueue) Slice() []Pipe {
	return q.items[q.head:]
}

// Clear removes all pipes.
func (q *PipeQueue) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}
