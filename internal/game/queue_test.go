package game

import "testing"

func TestPipeQueueFIFO(t *testing.T) {
	var q PipeQueue
	for i := range 5 {
		q.PushBack(Pipe{X: float64(i)})
	}

	if q.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", q.Len())
	}
	if back, _ := q.Back(); back.X != 4 {
		t.Errorf("Back().X = %v, expected 4", back.X)
	}

	for i := range 5 {
		p, ok := q.PopFront()
		if !ok {
			t.Fatalf("PopFront() #%d returned false", i)
		}
		if p.X != float64(i) {
			t.Errorf("PopFront() #%d X = %v, expected %v", i, p.X, float64(i))
		}
	}

	if _, ok := q.PopFront(); ok {
		t.Error("PopFront() on empty queue should return false")
	}
	if _, ok := q.Front(); ok {
		t.Error("Front() on empty queue should return false")
	}
	if _, ok := q.Back(); ok {
		t.Error("Back() on empty queue should return false")
	}
}

func TestPipeQueueCompaction(t *testing.T) {
	var q PipeQueue

	// Interleave pushes and pops like a running game does
	next := 0
	for range 1000 {
		q.PushBack(Pipe{X: float64(next)})
		next++
		q.PushBack(Pipe{X: float64(next)})
		next++
		q.PopFront()
	}

	if q.Len() != 1000 {
		t.Fatalf("Len() = %d, expected 1000", q.Len())
	}
	if q.head > len(q.items)/2 {
		t.Errorf("dead prefix %d exceeds half of backing length %d", q.head, len(q.items))
	}

	front, _ := q.Front()
	if front.X != 1000 {
		t.Errorf("Front().X = %v, expected 1000", front.X)
	}
	live := q.Slice()
	for i := 1; i < len(live); i++ {
		if live[i].X != live[i-1].X+1 {
			t.Fatalf("order broken at %d: %v after %v", i, live[i].X, live[i-1].X)
		}
	}
}

func TestPipeQueueSliceAliases(t *testing.T) {
	var q PipeQueue
	q.PushBack(Pipe{X: 10})
	q.PushBack(Pipe{X: 20})
	q.PopFront()
	q.PushBack(Pipe{X: 30})

	live := q.Slice()
	live[0].X = 99

	if front, _ := q.Front(); front.X != 99 {
		t.Errorf("writes through Slice() should update the queue, Front().X = %v", front.X)
	}
}

func TestPipeQueueClear(t *testing.T) {
	var q PipeQueue
	q.PushBack(Pipe{X: 1})
	q.PushBack(Pipe{X: 2})
	q.PopFront()
	q.Clear()

	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", q.Len())
	}
	q.PushBack(Pipe{X: 3})
	if front, _ := q.Front(); front.X != 3 {
		t.Errorf("Front().X after Clear and push = %v, expected 3", front.X)
	}
}
