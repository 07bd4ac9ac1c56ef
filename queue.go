package radixq

import (
	"errors"
	"iter"
)

// Errors returned by queue operations.
var (
	ErrEmptyQueue       = errors.New("radixq: queue is empty")
	ErrInvalidDirection = errors.New("radixq: direction must be Min or Max")
	ErrInvalidMaxLength = errors.New("radixq: max priority length must be greater than 0")
	ErrPriorityTooLong  = errors.New("radixq: priority exceeds max priority length")
)

// cursor locates the extreme element: the FIFO head of pe, which lives in lb.
// Both fields are nil exactly when the queue is empty.
type cursor[T any] struct {
	lb *lengthBucket[T]
	pe *entry[T]
}

// Queue is a priority queue over string priorities, ordered by length first
// and lexicographically second, serving the Min or Max end as configured.
// Elements sharing an exact priority come out in push order.
//
// A Queue is not safe for concurrent use and must not be copied after first
// use.
type Queue[T any] struct {
	dir    Direction
	index  lengthIndex[T]
	size   int
	cur    cursor[T]
	maxLen int // 0 when unbounded
}

// New creates a queue serving the given direction. By default the length
// index grows on demand; WithMaxPriorityLength selects the fixed-capacity
// form instead.
func New[T any](dir Direction, opts ...Option) (*Queue[T], error) {
	if !dir.valid() {
		return nil, ErrInvalidDirection
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue[T]{dir: dir}
	if o.fixed {
		if o.maxPriorityLength <= 0 {
			return nil, ErrInvalidMaxLength
		}
		q.maxLen = o.maxPriorityLength
		q.index = newArrayIndex[T](o.maxPriorityLength)
	} else {
		q.index = newTreeIndex[T]()
	}
	return q, nil
}

// Direction returns the direction the queue was constructed with.
func (q *Queue[T]) Direction() Direction {
	return q.dir
}

// Push adds value under the given priority, behind any element already
// holding the same priority. Any string is a valid priority; only the
// fixed-capacity form can fail, with ErrPriorityTooLong, and it does so
// before mutating anything.
func (q *Queue[T]) Push(priority string, value T) error {
	if q.maxLen > 0 && len(priority) > q.maxLen {
		return ErrPriorityTooLong
	}

	lb, ok := q.index.get(len(priority))
	if !ok {
		lb = newLengthBucket[T](len(priority))
		q.index.insert(lb)
	}
	pe := lb.getOrCreate(priority)
	pe.push(value)

	// A tie leaves the cursor alone so the earlier-pushed element stays at
	// the head.
	if q.size == 0 || q.dir.moreExtreme(priority, q.cur.pe.priority) {
		q.cur = cursor[T]{lb: lb, pe: pe}
	}
	q.size++
	return nil
}

// Pop removes and returns the extreme element. It fails with ErrEmptyQueue
// on an empty queue, leaving it unchanged.
func (q *Queue[T]) Pop() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	v := q.cur.pe.pop()
	if q.cur.pe.len() == 0 {
		q.cur.lb.remove(q.cur.pe)
		if q.cur.lb.empty() {
			q.index.remove(q.cur.lb)
		}
	}
	q.size--

	// Pruning guarantees the first bucket on each level is populated, so
	// re-deriving the cursor is a bounded walk down the two levels.
	if q.size == 0 {
		q.cur = cursor[T]{}
	} else {
		lb, _ := q.index.first(q.dir)
		pe, _ := lb.first(q.dir)
		q.cur = cursor[T]{lb: lb, pe: pe}
	}
	return v, nil
}

// Peek returns the element Pop would return next without removing it. It
// fails with ErrEmptyQueue on an empty queue.
func (q *Queue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.cur.pe.peek(), nil
}

// Drain removes and returns every element in the order repeated Pop calls
// would produce, taking whole element lists bucket by bucket. Bucket work is
// proportional to the number of distinct priorities present, not the number
// of elements. The queue is left empty.
func (q *Queue[T]) Drain() []T {
	out := make([]T, 0, q.size)
	var drained []*lengthBucket[T]
	q.index.walk(q.dir, func(lb *lengthBucket[T]) bool {
		lb.walk(q.dir, func(pe *entry[T]) bool {
			out = append(out, pe.take()...)
			return true
		})
		lb.entries.Clear(false)
		drained = append(drained, lb)
		return true
	})
	// Removal happens after the walk; deleting from the index while it is
	// being iterated is not safe in the tree form.
	for _, lb := range drained {
		q.index.remove(lb)
	}
	q.size = 0
	q.cur = cursor[T]{}
	return out
}

// All returns a non-mutating iterator over every element in the order Drain
// would produce them. The queue must not be mutated during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		q.index.walk(q.dir, func(lb *lengthBucket[T]) bool {
			more := true
			lb.walk(q.dir, func(pe *entry[T]) bool {
				for n := pe.head; n < len(pe.elems); n++ {
					if !yield(pe.elems[n]) {
						more = false
						return false
					}
				}
				return true
			})
			return more
		})
	}
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}
