package radixq

// options defines all configuration options for a queue.
type options struct {
	// fixed selects the preallocated array form of the length index,
	// bounded by maxPriorityLength.
	fixed             bool
	maxPriorityLength int
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithMaxPriorityLength bounds priority length to n and switches the length
// index to a preallocated array keyed by length. New fails with
// ErrInvalidMaxLength when n is not positive, and Push fails with
// ErrPriorityTooLong for priorities longer than n.
func WithMaxPriorityLength(n int) Option {
	return func(o *options) {
		o.fixed = true
		o.maxPriorityLength = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		fixed:             false,
		maxPriorityLength: 0,
	}
}
