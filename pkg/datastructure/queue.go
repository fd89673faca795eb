package datastructure

// Queue FIFO frontier for breadth-first search. Amortized O(1) push/pop,
// backed by a slice with a moving head index.
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{items: make([]T, 0)}
}

func (q *Queue[T]) PushBack(item T) {
	q.items = append(q.items, item)
}

func (q *Queue[T]) PopFront() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// compact once the dead prefix dominates
	if q.head > len(q.items)/2 && q.head > 32 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item, true
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head >= len(q.items)
}

func (q *Queue[T]) Size() int {
	return len(q.items) - q.head
}
