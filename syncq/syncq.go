package syncq

import (
	"sync"

	"github.com/davidvella/radixq"
)

// Queue wraps a radixq.Queue with a mutex, making every operation safe for
// concurrent use.
type Queue[T any] struct {
	mu sync.Mutex
	q  *radixq.Queue[T]
}

// New creates a guarded queue; the direction and options are those of
// radixq.New.
func New[T any](dir radixq.Direction, opts ...radixq.Option) (*Queue[T], error) {
	q, err := radixq.New[T](dir, opts...)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{q: q}, nil
}

// Wrap takes ownership of an existing queue. The caller must not use q
// directly afterwards.
func Wrap[T any](q *radixq.Queue[T]) *Queue[T] {
	return &Queue[T]{q: q}
}

// Push adds value under the given priority.
func (s *Queue[T]) Push(priority string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.Push(priority, value)
}

// Pop removes and returns the extreme element, or fails with
// radixq.ErrEmptyQueue.
func (s *Queue[T]) Pop() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.Pop()
}

// Peek returns the extreme element without removing it, or fails with
// radixq.ErrEmptyQueue.
func (s *Queue[T]) Peek() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.Peek()
}

// Drain removes and returns every element in direction order.
func (s *Queue[T]) Drain() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.Drain()
}

// Len returns the number of elements in the queue.
func (s *Queue[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.Len()
}

// IsEmpty reports whether the queue holds no elements.
func (s *Queue[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.IsEmpty()
}
