package radixq_test

import (
	"fmt"
	"log"

	"github.com/davidvella/radixq"
)

// ExampleQueue_min demonstrates draining a min queue: shorter priorities come
// first, then lexicographic order within a length, then push order within an
// exact priority.
func ExampleQueue_min() {
	q, err := radixq.New[string](radixq.Min)
	if err != nil {
		log.Fatal(err)
	}

	q.Push("30", "3")
	q.Push("20", "2a")
	q.Push("600", "6c")
	q.Push("1", "1")
	q.Push("20", "2b")
	q.Push("600", "6a")
	q.Push("500", "5")
	q.Push("40", "4")
	q.Push("20", "2c")
	q.Push("600", "6b")

	for _, v := range q.Drain() {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2a
	// 2b
	// 2c
	// 3
	// 4
	// 5
	// 6c
	// 6a
	// 6b
}

// ExampleQueue_max demonstrates popping a max queue one element at a time.
func ExampleQueue_max() {
	q, err := radixq.New[string](radixq.Max)
	if err != nil {
		log.Fatal(err)
	}

	q.Push("30", "3")
	q.Push("20", "2a")
	q.Push("600", "6c")
	q.Push("1", "1")
	q.Push("20", "2b")
	q.Push("600", "6a")
	q.Push("500", "5")
	q.Push("40", "4")
	q.Push("20", "2c")
	q.Push("600", "6b")

	for !q.IsEmpty() {
		v, err := q.Pop()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(v)
	}

	// Output:
	// 6c
	// 6a
	// 6b
	// 5
	// 4
	// 3
	// 2a
	// 2b
	// 2c
	// 1
}

// ExampleQueue_peek shows the read-only view of the extreme element.
func ExampleQueue_peek() {
	q, err := radixq.New[int](radixq.Min)
	if err != nil {
		log.Fatal(err)
	}

	q.Push("7", 7)
	q.Push("3", 3)

	v, _ := q.Peek()
	fmt.Println(v, q.Len())

	v, _ = q.Pop()
	fmt.Println(v, q.Len())

	// Output:
	// 3 2
	// 3 1
}

// ExampleWithMaxPriorityLength shows the fixed-capacity form, which bounds
// priority length and rejects anything longer.
func ExampleWithMaxPriorityLength() {
	q, err := radixq.New[string](radixq.Min, radixq.WithMaxPriorityLength(4))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(q.Push("1000", "fits"))
	fmt.Println(q.Push("10000", "does not"))

	// Output:
	// <nil>
	// radixq: priority exceeds max priority length
}
