package radixq

import (
	"github.com/google/btree"
)

// btreeDegree matches the small fan-out used elsewhere in the family of
// libraries this one belongs to; bucket counts stay small in practice.
const btreeDegree = 2

// entry holds every element pushed with one exact priority. The slice is
// used as a FIFO: pushes append, pops advance head. The backing array is
// reclaimed as soon as the entry empties because empty entries are removed
// from their bucket immediately.
type entry[T any] struct {
	priority string
	elems    []T
	// head indexes the next element to pop, so removal from the front does
	// not shift the slice.
	head int
}

func (e *entry[T]) push(v T) {
	e.elems = append(e.elems, v)
}

func (e *entry[T]) peek() T {
	return e.elems[e.head]
}

func (e *entry[T]) pop() T {
	v := e.elems[e.head]
	var zero T
	e.elems[e.head] = zero
	e.head++
	return v
}

func (e *entry[T]) len() int {
	return len(e.elems) - e.head
}

// take returns the remaining elements in FIFO order and empties the entry.
func (e *entry[T]) take() []T {
	out := e.elems[e.head:]
	e.elems = nil
	e.head = 0
	return out
}

// lengthBucket groups the priorities of one length, ordered
// lexicographically. Lengths are equal inside a bucket, so plain string
// comparison is exactly the lexicographic order.
type lengthBucket[T any] struct {
	length  int
	entries *btree.BTreeG[*entry[T]]
}

func newLengthBucket[T any](length int) *lengthBucket[T] {
	return &lengthBucket[T]{
		length: length,
		entries: btree.NewG[*entry[T]](btreeDegree, func(a, b *entry[T]) bool {
			return a.priority < b.priority
		}),
	}
}

func (b *lengthBucket[T]) get(priority string) (*entry[T], bool) {
	return b.entries.Get(&entry[T]{priority: priority})
}

func (b *lengthBucket[T]) getOrCreate(priority string) *entry[T] {
	if e, ok := b.get(priority); ok {
		return e
	}
	e := &entry[T]{priority: priority}
	b.entries.ReplaceOrInsert(e)
	return e
}

func (b *lengthBucket[T]) remove(e *entry[T]) {
	b.entries.Delete(e)
}

// first returns the extreme entry of the bucket for the given direction.
func (b *lengthBucket[T]) first(d Direction) (*entry[T], bool) {
	if d == Min {
		return b.entries.Min()
	}
	return b.entries.Max()
}

// walk visits entries in direction order until fn returns false.
func (b *lengthBucket[T]) walk(d Direction, fn func(*entry[T]) bool) {
	if d == Min {
		b.entries.Ascend(fn)
		return
	}
	b.entries.Descend(fn)
}

func (b *lengthBucket[T]) empty() bool {
	return b.entries.Len() == 0
}

// lengthIndex is the first bucket level, mapping priority length to its
// bucket. Two implementations exist: the default dynamic B-tree index, and a
// preallocated array index for queues with a declared maximum priority
// length.
type lengthIndex[T any] interface {
	get(length int) (*lengthBucket[T], bool)
	insert(b *lengthBucket[T])
	remove(b *lengthBucket[T])
	// first returns the extreme populated bucket for the direction.
	first(d Direction) (*lengthBucket[T], bool)
	// walk visits populated buckets in direction order until fn returns
	// false.
	walk(d Direction, fn func(*lengthBucket[T]) bool)
}

// treeIndex keeps length buckets in a B-tree ordered by length.
type treeIndex[T any] struct {
	buckets *btree.BTreeG[*lengthBucket[T]]
}

func newTreeIndex[T any]() *treeIndex[T] {
	return &treeIndex[T]{
		buckets: btree.NewG[*lengthBucket[T]](btreeDegree, func(a, b *lengthBucket[T]) bool {
			return a.length < b.length
		}),
	}
}

func (i *treeIndex[T]) get(length int) (*lengthBucket[T], bool) {
	return i.buckets.Get(&lengthBucket[T]{length: length})
}

func (i *treeIndex[T]) insert(b *lengthBucket[T]) {
	i.buckets.ReplaceOrInsert(b)
}

func (i *treeIndex[T]) remove(b *lengthBucket[T]) {
	i.buckets.Delete(b)
}

func (i *treeIndex[T]) first(d Direction) (*lengthBucket[T], bool) {
	if d == Min {
		return i.buckets.Min()
	}
	return i.buckets.Max()
}

func (i *treeIndex[T]) walk(d Direction, fn func(*lengthBucket[T]) bool) {
	if d == Min {
		i.buckets.Ascend(fn)
		return
	}
	i.buckets.Descend(fn)
}

// arrayIndex keeps length buckets in a slice indexed by length. Slot 0 is
// valid so the empty priority works. Lookup and removal are constant time;
// first and walk scan, bounded by the declared maximum length.
type arrayIndex[T any] struct {
	buckets []*lengthBucket[T]
}

func newArrayIndex[T any](maxLength int) *arrayIndex[T] {
	return &arrayIndex[T]{
		buckets: make([]*lengthBucket[T], maxLength+1),
	}
}

func (i *arrayIndex[T]) get(length int) (*lengthBucket[T], bool) {
	b := i.buckets[length]
	return b, b != nil
}

func (i *arrayIndex[T]) insert(b *lengthBucket[T]) {
	i.buckets[b.length] = b
}

func (i *arrayIndex[T]) remove(b *lengthBucket[T]) {
	i.buckets[b.length] = nil
}

func (i *arrayIndex[T]) first(d Direction) (*lengthBucket[T], bool) {
	var found *lengthBucket[T]
	i.walk(d, func(b *lengthBucket[T]) bool {
		found = b
		return false
	})
	return found, found != nil
}

func (i *arrayIndex[T]) walk(d Direction, fn func(*lengthBucket[T]) bool) {
	if d == Min {
		for _, b := range i.buckets {
			if b != nil && !fn(b) {
				return
			}
		}
		return
	}
	for n := len(i.buckets) - 1; n >= 0; n-- {
		if b := i.buckets[n]; b != nil && !fn(b) {
			return
		}
	}
}
