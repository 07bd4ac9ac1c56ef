package radixq

import (
	"fmt"
	"io"
)

// Dump writes the bucket hierarchy to w, one line per length, priority and
// element, indented by level. It is a diagnostic aid; the format is not a
// compatibility contract.
func (q *Queue[T]) Dump(w io.Writer) error {
	var err error
	q.index.walk(q.dir, func(lb *lengthBucket[T]) bool {
		if _, err = fmt.Fprintf(w, "%d\n", lb.length); err != nil {
			return false
		}
		lb.walk(q.dir, func(pe *entry[T]) bool {
			if _, err = fmt.Fprintf(w, "\t%s\n", pe.priority); err != nil {
				return false
			}
			for n := pe.head; n < len(pe.elems); n++ {
				if _, err = fmt.Fprintf(w, "\t\t%v\n", pe.elems[n]); err != nil {
					return false
				}
			}
			return true
		})
		return err == nil
	})
	return err
}
