package radixq

// Direction fixes which end of the priority order a queue serves. It bundles
// the comparison rule with the traversal order over the bucket levels and is
// chosen once at construction.
type Direction int

const (
	// Min serves the smallest priority first: shorter lengths before longer
	// ones, lexicographically smaller strings first within a length.
	Min Direction = iota
	// Max serves the largest priority first.
	Max
)

// moreExtreme reports whether a should be served strictly before b. Equal
// priorities are never more extreme than one another, which is what preserves
// FIFO order between ties.
func (d Direction) moreExtreme(a, b string) bool {
	if len(a) != len(b) {
		if d == Min {
			return len(a) < len(b)
		}
		return len(a) > len(b)
	}
	if d == Min {
		return a < b
	}
	return a > b
}

func (d Direction) valid() bool {
	return d == Min || d == Max
}

func (d Direction) String() string {
	switch d {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "unknown"
	}
}
