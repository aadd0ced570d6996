package linear

import (
	"fmt"
	"testing"
)

// checkQueue verifies the observable state of q.
func checkQueue(t *testing.T, q *CircularQueue[int], front, end, n int) {
	t.Helper()
	if got := q.Len(); got != n {
		t.Fatalf("CircularQueue.Len() = %d, want %d", got, n)
	}
	if got := q.IsEmpty(); got != (n == 0) {
		t.Errorf("CircularQueue.IsEmpty() = %t, want %t", got, n == 0)
	}
	if got := q.IsFull(); got != (n == q.Cap()) {
		t.Errorf("CircularQueue.IsFull() = %t, want %t", got, n == q.Cap())
	}
	if n == 0 {
		if v, ok := q.Front(); ok {
			t.Errorf("CircularQueue.Front() = %d, true, want _, false", v)
		}
		if v, ok := q.End(); ok {
			t.Errorf("CircularQueue.End() = %d, true, want _, false", v)
		}
		return
	}
	if got, ok := q.Front(); !ok || got != front {
		t.Errorf("CircularQueue.Front() = %d, %t, want %d, true", got, ok, front)
	}
	if got, ok := q.End(); !ok || got != end {
		t.Errorf("CircularQueue.End() = %d, %t, want %d, true", got, ok, end)
	}
}

func TestNewCircularQueue_InvalidCapacity(t *testing.T) {
	for _, n := range []int{0, -1} {
		t.Run(fmt.Sprintf("capacity %d", n), func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewCircularQueue(WithCapacityOption(%d)) did not panic", n)
				}
			}()
			NewCircularQueue[int](WithCapacityOption(n))
		})
	}
}

func TestCircularQueue_ZeroValue(t *testing.T) {
	var q CircularQueue[int]
	checkQueue(t, &q, 0, 0, 0)
	if got := q.Cap(); got != DefaultCapacity {
		t.Errorf("CircularQueue.Cap() = %d, want %d", got, DefaultCapacity)
	}
	if q.Dequeue() {
		t.Errorf("CircularQueue.Dequeue() = true, want false")
	}
	if !q.Enqueue(1) {
		t.Fatalf("CircularQueue.Enqueue(1) = false, want true")
	}
	checkQueue(t, &q, 1, 1, 1)
}

func TestCircularQueue_DefaultCapacity(t *testing.T) {
	q := NewCircularQueue[int]()
	if got := q.Cap(); got != DefaultCapacity {
		t.Errorf("CircularQueue.Cap() = %d, want %d", got, DefaultCapacity)
	}
}

func TestCircularQueue_Full(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, DefaultCapacity} {
		t.Run(fmt.Sprintf("capacity %d", n), func(t *testing.T) {
			q := NewCircularQueue[int](WithCapacityOption(n))
			for i := 0; i < n; i++ {
				if q.IsFull() {
					t.Fatalf("CircularQueue.IsFull() = true after %d enqueues, want false", i)
				}
				if !q.Enqueue(i) {
					t.Fatalf("CircularQueue.Enqueue(%d) = false, want true", i)
				}
			}
			if !q.IsFull() {
				t.Fatalf("CircularQueue.IsFull() = false after %d enqueues, want true", n)
			}
			if q.Enqueue(n) {
				t.Errorf("CircularQueue.Enqueue(%d) = true on a full queue, want false", n)
			}
			checkQueue(t, q, 0, n-1, n)
		})
	}
}

func TestCircularQueue_RoundTrip(t *testing.T) {
	const capacity = 5
	for k := 0; k <= capacity; k++ {
		t.Run(fmt.Sprintf("%d items", k), func(t *testing.T) {
			q := NewCircularQueue[int](WithCapacityOption(capacity))
			for i := 0; i < k; i++ {
				q.Enqueue(i)
			}
			for i := 0; i < k; i++ {
				if got, _ := q.Front(); got != i {
					t.Fatalf("CircularQueue.Front() = %d, want %d", got, i)
				}
				if !q.Dequeue() {
					t.Fatalf("CircularQueue.Dequeue() = false, want true")
				}
			}
			checkQueue(t, q, 0, 0, 0)
			if q.Dequeue() {
				t.Errorf("CircularQueue.Dequeue() = true on an empty queue, want false")
			}
		})
	}
}

func TestCircularQueue_Wraparound(t *testing.T) {
	q := NewCircularQueue[int](WithCapacityOption(3))
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	checkQueue(t, q, 1, 3, 3)
	q.Dequeue()
	q.Dequeue()
	checkQueue(t, q, 3, 3, 1)
	if !q.Enqueue(4) || !q.Enqueue(5) {
		t.Fatalf("CircularQueue.Enqueue() = false after wraparound, want true")
	}
	checkQueue(t, q, 3, 5, 3)
	if q.Enqueue(6) {
		t.Errorf("CircularQueue.Enqueue(6) = true on a full queue, want false")
	}
}

func TestCircularQueue_Interleaved(t *testing.T) {
	type step struct {
		enqueue []int
		dequeue int
		front   int
		end     int
		n       int
	}
	tests := []struct {
		name     string
		capacity int
		steps    []step
	}{
		{
			name:     "empty then refill",
			capacity: 3,
			steps: []step{
				{enqueue: []int{1, 2, 3}, front: 1, end: 3, n: 3},
				{dequeue: 1, front: 2, end: 3, n: 2},
				{dequeue: 2, n: 0},
				{enqueue: []int{4, 5}, front: 4, end: 5, n: 2},
				{dequeue: 1, front: 5, end: 5, n: 1},
			},
		},
		{
			name:     "tail wraps to zero",
			capacity: 6,
			steps: []step{
				{enqueue: []int{14}, front: 14, end: 14, n: 1},
				{enqueue: []int{22, 13, -6}, front: 14, end: -6, n: 4},
				{dequeue: 2, front: 13, end: -6, n: 2},
				{enqueue: []int{9, 20}, front: 13, end: 20, n: 4},
				{enqueue: []int{17}, front: 13, end: 17, n: 5},
				{dequeue: 4, front: 17, end: 17, n: 1},
				{enqueue: []int{0, 0}, front: 17, end: 0, n: 3},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewCircularQueue[int](WithCapacityOption(tt.capacity))
			for i, s := range tt.steps {
				for _, v := range s.enqueue {
					if !q.Enqueue(v) {
						t.Fatalf("step %d: CircularQueue.Enqueue(%d) = false, want true", i, v)
					}
				}
				for j := 0; j < s.dequeue; j++ {
					if !q.Dequeue() {
						t.Fatalf("step %d: CircularQueue.Dequeue() = false, want true", i)
					}
				}
				checkQueue(t, q, s.front, s.end, s.n)
			}
		})
	}
}

func TestCircularQueue_String(t *testing.T) {
	q := NewCircularQueue[int](WithCapacityOption(3))
	q.Enqueue(1)
	q.Enqueue(2)
	q.Dequeue()
	want := "queue=[1 2 0], head=1, tail=2"
	if got := q.String(); got != want {
		t.Errorf("CircularQueue.String() = %q, want %q", got, want)
	}
}
