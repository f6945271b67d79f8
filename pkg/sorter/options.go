package sorter

import "go-bibsort/pkg/heap"

type Option func(*options)

type options struct {
	stable bool
	heap   *heap.Options
}

// Stable breaks key ties by input position, so records with equal keys keep
// their relative order. Without it the order among equal keys is whatever
// the heap yields.
func Stable() Option {
	return func(o *options) { o.stable = true }
}

// WithStable is Stable when v is true and a no-op otherwise.
func WithStable(v bool) Option {
	return func(o *options) { o.stable = v }
}

// WithHeapOptions passes growth options through to the heap.
func WithHeapOptions(ho *heap.Options) Option {
	return func(o *options) { o.heap = ho }
}
