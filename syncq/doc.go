// Package syncq provides a mutex-guarded facade over a radixq.Queue for use
// from multiple goroutines. The underlying queue has no internal
// synchronization of its own; this wrapper holds one lock across every
// operation, so each call observes and leaves a consistent structure.
//
// Basic usage:
//
//	q, err := syncq.New[string](radixq.Min)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	go q.Push("10", "from one goroutine")
//	go q.Push("2", "from another")
//
// The wrapped queue must not be touched directly once handed to the facade.
// Compound sequences such as Peek-then-Pop are not atomic across calls; use
// Pop and handle radixq.ErrEmptyQueue instead of checking IsEmpty first.
package syncq
