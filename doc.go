// Package radixq implements a bi-directional priority queue over string
// priorities, organised as a two-level radix bucket structure: priorities are
// grouped first by their length and then lexicographically within each length.
// Keeping both levels ordered and pruning empty buckets eagerly makes the
// extreme element a constant-time lookup, independent of how many elements the
// queue holds.
//
// Key features:
//   - Generic implementation holding any element type
//   - Min or Max direction fixed at construction
//   - Amortized O(1) Pop and Peek, O(log n) Push in distinct priorities
//   - Drain moves whole buckets, costing O(u) in distinct priorities rather
//     than O(n) in elements
//   - FIFO ordering between elements sharing an exact priority
//   - Optional fixed-capacity variant bounding the priority length
//
// Priorities are compared by length first and lexicographically second: under
// Min, "9" precedes "10" because it is shorter, regardless of content. All
// strings are valid priorities, including the empty string and duplicates.
//
// Basic usage:
//
//	q, err := radixq.New[string](radixq.Min)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	q.Push("20", "second")
//	q.Push("1", "first")
//	q.Push("300", "third")
//
//	for !q.IsEmpty() {
//	    v, _ := q.Pop()
//	    fmt.Println(v) // first, second, third
//	}
//
// Implementation details:
// The first level is an ordered index from priority length to a length
// bucket; the second level orders the priorities of one length in a B-tree.
// Elements of one exact priority sit in a slice used as a FIFO. A cached
// cursor points at the bucket pair holding the extreme element; every
// structural mutation either preserves or re-derives it, and because empty
// buckets are removed immediately the re-derivation touches only the first
// bucket on each level.
//
// A Queue is not safe for concurrent use and must not be copied after first
// use; the syncq subpackage provides a mutex-guarded facade for shared
// access.
package radixq
